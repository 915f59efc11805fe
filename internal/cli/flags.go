package cli

import (
	"os"

	"spcli/internal/config"
	"spcli/internal/device"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalFlags holds the persistent flag values shared by every command.
type GlobalFlags struct {
	// IP is a single orchestrator address; when set File is ignored.
	IP string
	// File is the path of a JSON device map.
	File string
	// Port is the HTTPS port used for every endpoint.
	Port int
	// Table renders the single --ip endpoint as a table.
	Table bool
	// Username and Password are shared by every endpoint.
	Username string
	Password string
	// ConfigPath specifies a custom configuration directory path
	ConfigPath string
	// Quiet suppresses progress notices and the spinner
	Quiet bool
	// Debug enables debug logging on stderr
	Debug bool
}

// RegisterGlobalFlags registers the persistent flags on the root command.
//
// The registered flags are:
//   - --ip: Orchestrator address
//   - --file: JSON file of orchestrator addresses
//   - --port: Orchestrator port, default 443
//   - --table: Table output (single --ip endpoint only)
//   - --username / --password: Credentials (env: SPCLI_USERNAME / SPCLI_PASSWORD)
//   - --config-path: Configuration directory
//   - --quiet/-q: Suppress progress output
//   - --debug: Enable debug logging
func RegisterGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.IP, "ip", "", "IP or DNS address of the orchestrator")
	cmd.PersistentFlags().StringVar(&flags.File, "file", "", "JSON file of orchestrator addresses")
	cmd.PersistentFlags().IntVar(&flags.Port, "port", device.DefaultPort, "Orchestrator port")
	cmd.PersistentFlags().BoolVar(&flags.Table, "table", false, "Output in table format")
	cmd.PersistentFlags().StringVar(&flags.Username, "username", "", "Orchestrator username (env: "+UsernameEnvVar+", then config file)")
	cmd.PersistentFlags().StringVar(&flags.Password, "password", "", "Orchestrator password (env: "+PasswordEnvVar+")")
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", config.GetDefaultConfigPath(), "Configuration directory")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress output")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
}

// ApplyConfig fills the flags the user did not set from the config file.
// Precedence is flag, then environment, then config file.
func (f *GlobalFlags) ApplyConfig(set *pflag.FlagSet, cfg config.Config) {
	if !set.Changed("port") && cfg.Port != 0 {
		f.Port = cfg.Port
	}
	// SPCLI_USERNAME outranks the config file.
	if !set.Changed("username") && os.Getenv(UsernameEnvVar) == "" && cfg.Username != "" {
		f.Username = cfg.Username
	}
	if !set.Changed("ip") && !set.Changed("file") && cfg.DeviceFile != "" {
		f.File = cfg.DeviceFile
	}
}

// Credentials returns the shared credential set.
func (f *GlobalFlags) Credentials() device.Credentials {
	return device.Credentials{Username: f.Username, Password: f.Password}
}

// ToExecutorOptions converts GlobalFlags to ExecutorOptions.
func (f *GlobalFlags) ToExecutorOptions() ExecutorOptions {
	return ExecutorOptions{
		Quiet:   f.Quiet,
		Spinner: !f.Quiet && !f.Debug,
	}
}

// ValidateTarget reports a missing target before anything is prompted.
func (f *GlobalFlags) ValidateTarget() error {
	if f.IP == "" && f.File == "" {
		return &device.ConfigError{Reason: "no target given: use --ip or --file"}
	}
	return nil
}
