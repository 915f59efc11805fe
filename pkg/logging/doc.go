// Package logging provides the structured logger used across spcli.
//
// It is a thin layer over Go's log/slog that tags every entry with the
// subsystem that produced it, so diagnostics from the registry, the executor
// and the orchestrator client can be told apart on stderr.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelDebug, os.Stderr)
//
//	logging.Info("Registry", "Registered %d endpoints", n)
//	logging.Debug("Orchestrator", "GET %s -> %d", url, status)
//	logging.Warn("Executor", "Logout from %s failed", addr)
//
// Log output never goes to stdout: stdout carries rendered results and the
// progress notices only.
//
// # Subsystems
//
//   - Config: configuration file loading
//   - Registry: target endpoint registration
//   - Executor: command dispatch across endpoints
//   - Orchestrator: HTTP calls against a management endpoint
//   - Renderer: table and JSON output
package logging
