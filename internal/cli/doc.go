// Package cli dispatches orchestrator commands across the registered
// endpoints and wires the command line to the rest of spcli.
//
// # Core Components
//
// Command binds one CLI command to exactly one orchestrator.Querier method.
// Its arguments are captured when the command is built, so the executor
// forwards them verbatim.
//
// Executor runs a Command against every endpoint of a device.Registry, in
// registry order and strictly one at a time:
//   - a fresh, logged-in Querier is created for every endpoint
//   - the command's operation is invoked once
//   - the payload is rendered as a table or JSON depending on the endpoint
//   - "Task Completed" is printed
//
// The first failure stops the run. Endpoints after the failing one are never
// contacted and produce no output.
//
// Session carries the registry and executor built at startup. It is attached
// to the command context by the root command and retrieved by each command
// before dispatching.
//
// GlobalFlags and RegisterGlobalFlags hold the persistent flags shared by all
// commands. Missing credentials are read interactively through a Prompter.
package cli
