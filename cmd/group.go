package cmd

import (
	"context"

	"spcli/internal/orchestrator"

	"github.com/spf13/cobra"
)

func addGroupCommands(root *cobra.Command) {
	root.AddCommand(
		newQueryCmd("get_groups", "Gather all appliance groups", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetGroups(ctx)
			}),
		newQueryCmd("get_group <group-id>", "Gather one appliance group", cobra.ExactArgs(1),
			func(ctx context.Context, q orchestrator.Querier, args []string) (*orchestrator.Response, error) {
				return q.GetGroup(ctx, args[0])
			}),
		newQueryCmd("get_group_root", "Gather the root group", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetGroupRoot(ctx)
			}),
		newQueryCmd("get_grnodes", "Gather group topology nodes", cobra.NoArgs,
			func(ctx context.Context, q orchestrator.Querier, _ []string) (*orchestrator.Response, error) {
				return q.GetGRNodes(ctx)
			}),
	)
}
