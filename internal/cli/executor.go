package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"spcli/internal/device"
	"spcli/internal/formatting"
	"spcli/internal/orchestrator"
	"spcli/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
)

// ExecutorOptions contains configuration options for command execution.
type ExecutorOptions struct {
	// Quiet suppresses the "Task Completed" notices and the spinner.
	Quiet bool
	// Spinner shows a progress spinner while a remote call is in flight.
	Spinner bool
	// SpinnerOutput receives the spinner animation, normally os.Stderr.
	// The spinner stays hidden when it is not a terminal.
	SpinnerOutput *os.File
}

// Executor runs commands against every endpoint of a registry.
type Executor struct {
	factory  orchestrator.Factory
	renderer *formatting.Renderer
	out      io.Writer
	options  ExecutorOptions
}

// NewExecutor creates an executor that obtains a Querier per endpoint from
// factory and writes rendered results and notices to out.
func NewExecutor(factory orchestrator.Factory, out io.Writer, options ExecutorOptions) *Executor {
	return &Executor{
		factory:  factory,
		renderer: formatting.NewRenderer(out),
		out:      out,
		options:  options,
	}
}

// Run invokes command once per endpoint, in registry order and one endpoint
// at a time. The first error aborts the run: later endpoints are skipped and
// nothing more is written. An empty registry is a successful no-op.
func (e *Executor) Run(ctx context.Context, registry *device.Registry, command Command) error {
	if registry.Len() == 0 {
		logging.Debug("Executor", "%s: no endpoints registered, nothing to do", command.Name)
		return nil
	}

	runID := uuid.NewString()
	endpoints := registry.Endpoints()
	logging.Debug("Executor", "Run %s: %s against %d endpoints", runID, command.Name, len(endpoints))

	for i, ep := range endpoints {
		if err := e.runOne(ctx, ep, command); err != nil {
			logging.Debug("Executor", "Run %s: aborting after endpoint %d of %d", runID, i+1, len(endpoints))
			return fmt.Errorf("%s on %s: %w", command.Name, ep, err)
		}
	}

	logging.Debug("Executor", "Run %s: completed", runID)
	return nil
}

func (e *Executor) runOne(ctx context.Context, ep device.Endpoint, command Command) error {
	stop := e.startSpinner(fmt.Sprintf(" Querying %s...", ep))

	q, err := e.factory(ctx, ep)
	if err != nil {
		stop()
		return err
	}
	defer closeQuerier(q, ep)

	resp, err := command.Invoke(ctx, q)
	stop()
	if err != nil {
		return err
	}
	logging.Debug("Executor", "%s %s -> %d in %s", resp.Metadata.Method, resp.Metadata.URL, resp.Metadata.StatusCode, resp.Metadata.Elapsed.Round(time.Millisecond))

	if err := e.renderer.Render(ep.TableMode, resp.Payload); err != nil {
		return err
	}

	if !e.options.Quiet {
		fmt.Fprintln(e.out, "Task Completed")
	}
	return nil
}

// startSpinner starts the progress spinner when enabled and returns the
// function stopping it.
func (e *Executor) startSpinner(suffix string) func() {
	if e.options.Quiet || !e.options.Spinner || e.options.SpinnerOutput == nil {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(e.options.SpinnerOutput))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}

// closeQuerier ends the endpoint session when the Querier supports it.
func closeQuerier(q orchestrator.Querier, ep device.Endpoint) {
	closer, ok := q.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn("Executor", "Failed to close session with %s: %v", ep, err)
	}
}
