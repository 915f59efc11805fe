package config

// Config holds the defaults read from config.yaml.
type Config struct {
	// Port is used for every endpoint when --port is not given.
	Port int `yaml:"port,omitempty"`
	// Username is used when neither --username nor SPCLI_USERNAME is set.
	Username string `yaml:"username,omitempty"`
	// DeviceFile is used when neither --ip nor --file is given.
	DeviceFile string `yaml:"deviceFile,omitempty"`
	// TLSVerify enables certificate verification against the orchestrator.
	TLSVerify bool `yaml:"tlsVerify,omitempty"`
}
