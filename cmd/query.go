package cmd

import (
	"context"

	"spcli/internal/cli"
	"spcli/internal/orchestrator"

	"github.com/spf13/cobra"
)

// invokeFunc binds a command's arguments to one Querier call.
type invokeFunc func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error)

// newQueryCmd creates an orchestrator command that dispatches invoke
// against every registered endpoint.
func newQueryCmd(use, short string, args cobra.PositionalArgs, invoke invokeFunc) *cobra.Command {
	return &cobra.Command{
		Use:         use,
		Short:       short,
		Args:        args,
		Annotations: map[string]string{sessionAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Dispatch(cmd.Context(), cli.Command{
				Name: cmd.Name(),
				Invoke: func(ctx context.Context, q orchestrator.Querier) (*orchestrator.Response, error) {
					return invoke(ctx, q, args)
				},
			})
		},
	}
}
