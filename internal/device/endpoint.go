package device

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultPort is the HTTPS port orchestrators listen on.
const DefaultPort = 443

// Credentials is the username/password pair used to log in to an endpoint.
type Credentials struct {
	Username string
	Password string
}

// Endpoint is one orchestrator the tool talks to. Each endpoint carries its
// own copy of the credentials and gets its own session.
type Endpoint struct {
	// Name is the device file key, empty for endpoints given with --ip.
	Name string
	// Address is the host name or IP address.
	Address string
	// Port is the HTTPS port.
	Port int
	// Credentials is used to log in.
	Credentials Credentials
	// TableMode selects table output instead of JSON.
	TableMode bool
}

// HostPort returns address:port, bracketing IPv6 addresses.
func (e Endpoint) HostPort() string {
	port := e.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(e.Address, strconv.Itoa(port))
}

// BaseURL returns the root of the orchestrator REST API.
func (e Endpoint) BaseURL() string {
	return fmt.Sprintf("https://%s/gms/rest", e.HostPort())
}

// String returns a label for logs and error messages.
func (e Endpoint) String() string {
	if e.Name != "" {
		return fmt.Sprintf("%s (%s)", e.Name, e.HostPort())
	}
	return e.HostPort()
}
