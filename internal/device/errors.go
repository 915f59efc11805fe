package device

import "fmt"

// ConfigError reports a device file or target selection that cannot be used.
// No endpoint is registered when it is returned.
type ConfigError struct {
	// Path is the device file, empty when no target was given at all.
	Path string
	// Reason is a human-readable description.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

// Error returns a user-friendly message.
func (e *ConfigError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("could not read the devices file %s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}
