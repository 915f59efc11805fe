package cli

import (
	"context"

	"spcli/internal/orchestrator"
)

// Command maps one CLI invocation to a single Querier method call.
type Command struct {
	// Name is the CLI command name, e.g. "get_appliances".
	Name string
	// Invoke calls the bound operation with the command's arguments.
	Invoke func(ctx context.Context, q orchestrator.Querier) (*orchestrator.Response, error)
}
