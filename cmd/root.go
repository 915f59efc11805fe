package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spcli/internal/cli"
	"spcli/internal/config"
	"spcli/internal/device"
	"spcli/internal/orchestrator"
	"spcli/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (transport failure, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfig indicates the target selection or device file is unusable.
	ExitCodeConfig = 2
	// ExitCodeAuthFailed indicates an orchestrator rejected the credentials.
	ExitCodeAuthFailed = 3
)

// sessionAnnotation marks commands that talk to orchestrators and so need
// credentials and a registry before they run.
const sessionAnnotation = "spcli/session"

// rootDeps are the collaborators the root command wires together.
type rootDeps struct {
	newFactory func(orchestrator.Options) orchestrator.Factory
	prompter   cli.Prompter
}

func defaultDeps() rootDeps {
	return rootDeps{
		newFactory: orchestrator.NewFactory,
		prompter:   cli.NewTerminalPrompter(),
	}
}

// rootCmd represents the base command for the spcli application.
var rootCmd *cobra.Command

// init builds the command tree. It cannot be a variable initializer because
// the session setup reads the version back from rootCmd.
func init() {
	rootCmd = newRootCmd(defaultDeps())
}

func newRootCmd(deps rootDeps) *cobra.Command {
	var flags cli.GlobalFlags

	cmd := &cobra.Command{
		Use:   "spcli",
		Short: "Gather Silver Peak Orchestrator information using the REST API",
		Long: `spcli queries one or more Silver Peak Orchestrators through their
read-only REST API and prints the results as JSON or as a table.

Target a single orchestrator with --ip, or every orchestrator listed in a
JSON device file with --file:

  {"east": {"IP": "10.0.0.1"}, "west": {"IP": "10.0.0.2"}}`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		// Errors are printed by Execute so they can be colored.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareSession(cmd, &flags, deps)
		},
	}

	cli.RegisterGlobalFlags(cmd, &flags)

	cmd.AddCommand(newVersionCmd())
	addApplianceCommands(cmd)
	addGroupCommands(cmd)
	addAlarmCommands(cmd)
	return cmd
}

// prepareSession initializes logging and, for orchestrator commands, loads
// the config file, resolves credentials and attaches a session to the
// command context.
func prepareSession(cmd *cobra.Command, flags *cli.GlobalFlags, deps rootDeps) error {
	level := logging.LevelWarn
	if flags.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	if cmd.Annotations[sessionAnnotation] == "" {
		return nil
	}

	cfg, err := config.LoadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.ApplyConfig(cmd.Flags(), cfg)

	if err := flags.ValidateTarget(); err != nil {
		return err
	}
	if err := cli.ResolveCredentials(flags, deps.prompter); err != nil {
		return err
	}

	factory := deps.newFactory(orchestrator.Options{
		TLSVerify: cfg.TLSVerify,
		UserAgent: "spcli/" + GetVersion(),
	})
	session, err := cli.BuildSession(flags, factory, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cmd.SetContext(cli.WithSession(cmd.Context(), session))
	return nil
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "spcli version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var configErr *device.ConfigError
	if errors.As(err, &configErr) {
		return ExitCodeConfig
	}

	var authErr *orchestrator.AuthenticationError
	if errors.As(err, &authErr) {
		return ExitCodeAuthFailed
	}

	// Default to general error
	return ExitCodeError
}
