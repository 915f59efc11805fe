package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"spcli/internal/device"
	"spcli/internal/orchestrator"

	"golang.org/x/term"
)

// ErrNoSession is returned when a command runs without a session attached
// to its context.
var ErrNoSession = errors.New("no session: registry was not built")

// Session is the per-invocation state shared by every command: the
// registry built once from the global flags and the executor that
// dispatches against it.
type Session struct {
	Registry *device.Registry
	Executor *Executor
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session attached to ctx, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// Dispatch runs command with the session attached to ctx.
func Dispatch(ctx context.Context, command Command) error {
	s, ok := SessionFromContext(ctx)
	if !ok {
		return ErrNoSession
	}
	return s.Executor.Run(ctx, s.Registry, command)
}

// BuildSession builds the registry from the resolved flags and an executor
// writing to out. --ip wins over --file. Registry notices go to out unless
// the run is quiet.
func BuildSession(flags *GlobalFlags, factory orchestrator.Factory, out io.Writer) (*Session, error) {
	notices := out
	if flags.Quiet {
		notices = io.Discard
	}

	var registry *device.Registry
	if flags.IP != "" {
		registry = device.FromAddress(device.SingleTarget{
			Address:     flags.IP,
			Port:        flags.Port,
			Credentials: flags.Credentials(),
			TableMode:   flags.Table,
		}, notices)
	} else {
		var err error
		registry, err = device.FromFile(flags.File, flags.Port, flags.Credentials(), notices)
		if err != nil {
			return nil, err
		}
	}

	options := flags.ToExecutorOptions()
	if options.Spinner && term.IsTerminal(int(os.Stderr.Fd())) {
		options.SpinnerOutput = os.Stderr
	}

	return &Session{
		Registry: registry,
		Executor: NewExecutor(factory, out, options),
	}, nil
}
