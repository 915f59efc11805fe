package cmd

import (
	"context"

	"spcli/internal/orchestrator"

	"github.com/spf13/cobra"
)

func addApplianceCommands(root *cobra.Command) {
	root.AddCommand(
		newQueryCmd("get_appliances", "Gather all appliance information", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetAppliances(ctx)
			}),
		newQueryCmd("get_appliance <ne-id>", "Gather EdgeConnect information", cobra.ExactArgs(1),
			func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error) {
				return q.GetAppliance(ctx, args[0])
			}),
		newQueryCmd("get_reach_app <ne-id>", "Gather appliance reachability from the appliance", cobra.ExactArgs(1),
			func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error) {
				return q.GetReachApp(ctx, args[0])
			}),
		newQueryCmd("get_reach_gms <ne-id>", "Gather appliance reachability from the orchestrator", cobra.ExactArgs(1),
			func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error) {
				return q.GetReachGMS(ctx, args[0])
			}),
		newQueryCmd("get_discovered", "Gather discovered appliances", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetDiscovered(ctx)
			}),
		newQueryCmd("get_approved", "Gather approved appliances", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetApproved(ctx)
			}),
		newInterfacesCmd(),
	)
}

func newInterfacesCmd() *cobra.Command {
	var (
		cached   bool
		noCached bool
	)

	cmd := newQueryCmd("get_interfaces <ne-id>", "Gather interface state of an appliance", cobra.ExactArgs(1),
		func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error) {
			return q.GetInterfaces(ctx, args[0], cached && !noCached)
		})
	cmd.Flags().BoolVar(&cached, "cached", true, "Use the orchestrator's cached interface state")
	cmd.Flags().BoolVar(&noCached, "no-cached", false, "Fetch live interface state from the appliance")
	cmd.MarkFlagsMutuallyExclusive("cached", "no-cached")
	return cmd
}
