package device

import (
	"fmt"
	"io"
	"os"

	"spcli/internal/formatting"
	"spcli/pkg/logging"
)

// addressField is the device file field holding the endpoint address.
const addressField = "IP"

// SingleTarget describes an endpoint given directly on the command line.
type SingleTarget struct {
	Address     string
	Port        int
	Credentials Credentials
	TableMode   bool
}

// Registry is the ordered, immutable list of endpoints for one run.
type Registry struct {
	endpoints []Endpoint
}

// FromAddress registers exactly one endpoint, keeping the table flag.
// A "Working...." notice is written to notices.
func FromAddress(target SingleTarget, notices io.Writer) *Registry {
	ep := Endpoint{
		Address:     target.Address,
		Port:        portOrDefault(target.Port),
		Credentials: target.Credentials,
		TableMode:   target.TableMode,
	}
	fmt.Fprintln(notices, "Working....")
	logging.Debug("Registry", "Registered endpoint %s (table=%t)", ep, ep.TableMode)
	return &Registry{endpoints: []Endpoint{ep}}
}

// FromFile registers one endpoint per entry of a JSON device file, in the
// file's key order. Every endpoint shares port and credentials and renders
// JSON. A "Working....<ip>" notice is written per endpoint.
func FromFile(path string, port int, creds Credentials, notices io.Writer) (*Registry, error) {
	if path == "" {
		return nil, &ConfigError{Reason: "no target given: use --ip or --file"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "cannot read file", Err: err}
	}

	devices, err := formatting.DecodeRecord(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "not a JSON object", Err: err}
	}

	// Validate every entry before announcing any of them.
	endpoints := make([]Endpoint, 0, devices.Len())
	for pair := devices.Oldest(); pair != nil; pair = pair.Next() {
		address, err := entryAddress(pair.Key, pair.Value)
		if err != nil {
			return nil, &ConfigError{Path: path, Reason: err.Error()}
		}
		endpoints = append(endpoints, Endpoint{
			Name:        pair.Key,
			Address:     address,
			Port:        portOrDefault(port),
			Credentials: creds,
		})
	}

	for _, ep := range endpoints {
		fmt.Fprintf(notices, "Working....%s\n", ep.Address)
		logging.Debug("Registry", "Registered endpoint %s", ep)
	}
	logging.Info("Registry", "Registered %d endpoints from %s", len(endpoints), path)

	return &Registry{endpoints: endpoints}, nil
}

func entryAddress(name string, value any) (string, error) {
	entry, ok := value.(formatting.Record)
	if !ok {
		return "", fmt.Errorf("entry %q is not an object", name)
	}
	raw, ok := entry.Get(addressField)
	if !ok {
		return "", fmt.Errorf("entry %q has no %q field", name, addressField)
	}
	address, ok := raw.(string)
	if !ok || address == "" {
		return "", fmt.Errorf("entry %q: %q must be a non-empty string", name, addressField)
	}
	return address, nil
}

func portOrDefault(port int) int {
	if port <= 0 {
		return DefaultPort
	}
	return port
}

// Endpoints returns a copy of the registered endpoints in order.
func (r *Registry) Endpoints() []Endpoint {
	if r == nil {
		return nil
	}
	out := make([]Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.endpoints)
}
