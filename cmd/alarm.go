package cmd

import (
	"context"

	"spcli/internal/orchestrator"

	"github.com/spf13/cobra"
)

// alarmViewValue is a pflag.Value rejecting unknown views at parse time.
type alarmViewValue orchestrator.AlarmView

func (v *alarmViewValue) String() string { return string(*v) }

func (v *alarmViewValue) Set(s string) error {
	view, err := orchestrator.ParseAlarmView(s)
	if err != nil {
		return err
	}
	*v = alarmViewValue(view)
	return nil
}

func (v *alarmViewValue) Type() string { return "view" }

// alarmTypeValue is a pflag.Value rejecting unknown alarm sources.
type alarmTypeValue orchestrator.AlarmType

func (v *alarmTypeValue) String() string { return string(*v) }

func (v *alarmTypeValue) Set(s string) error {
	t, err := orchestrator.ParseAlarmType(s)
	if err != nil {
		return err
	}
	*v = alarmTypeValue(t)
	return nil
}

func (v *alarmTypeValue) Type() string { return "type" }

func addAlarmCommands(root *cobra.Command) {
	root.AddCommand(
		newAlarmsCmd(),
		newQueryCmd("get_alarm_summary", "Gather the alarm summary", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetAlarmSummary(ctx)
			}),
		newAlarmSummaryTypeCmd(),
	)
}

func newAlarmsCmd() *cobra.Command {
	view := alarmViewValue(orchestrator.AlarmViewAll)
	var severity string

	cmd := newQueryCmd("get_alarms", "Gather orchestrator alarms", cobra.NoArgs,
		func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
			return q.GetAlarms(ctx, orchestrator.AlarmQuery{
				View:     orchestrator.AlarmView(view),
				Severity: severity,
			})
		})
	cmd.Flags().Var(&view, "view", "Alarm view: all, active or closed")
	cmd.Flags().StringVar(&severity, "severity", "", "Only alarms of this severity")
	return cmd
}

func newAlarmSummaryTypeCmd() *cobra.Command {
	alarmType := alarmTypeValue(orchestrator.AlarmTypeGMS)

	cmd := newQueryCmd("get_alarm_summary_type", "Gather the alarm summary for one alarm source", cobra.NoArgs,
		func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
			return q.GetAlarmSummaryType(ctx, orchestrator.AlarmType(alarmType))
		})
	cmd.Flags().Var(&alarmType, "alarm-type", "Alarm source: gms or appliance")
	return cmd
}
