package config

// DefaultPort is the orchestrator HTTPS port.
const DefaultPort = 443

// GetDefaultConfig returns the configuration used when no config.yaml exists.
func GetDefaultConfig() Config {
	return Config{
		Port: DefaultPort,
	}
}
