package orchestrator

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// TransportErrorKind categorizes a TransportError.
type TransportErrorKind int

const (
	// KindUnknown indicates an unclassified failure.
	KindUnknown TransportErrorKind = iota
	// KindTLS indicates a TLS/certificate verification error.
	KindTLS
	// KindNetwork indicates a network connectivity error (refused, unreachable).
	KindNetwork
	// KindTimeout indicates a timeout.
	KindTimeout
	// KindDNS indicates a DNS resolution failure.
	KindDNS
	// KindCanceled indicates the request was canceled by the caller.
	KindCanceled
	// KindHTTPStatus indicates a non-success HTTP status.
	KindHTTPStatus
	// KindMalformedResponse indicates a body that could not be decoded.
	KindMalformedResponse
)

// String returns a human-readable name for the error kind.
func (k TransportErrorKind) String() string {
	switch k {
	case KindTLS:
		return "TLS certificate error"
	case KindNetwork:
		return "Network error"
	case KindTimeout:
		return "Connection timeout"
	case KindDNS:
		return "DNS resolution error"
	case KindCanceled:
		return "Request canceled"
	case KindHTTPStatus:
		return "HTTP error"
	case KindMalformedResponse:
		return "Malformed response"
	default:
		return "Connection error"
	}
}

// TransportError indicates that an operation could not be completed against
// an endpoint for reasons other than rejected credentials.
type TransportError struct {
	// Endpoint labels the orchestrator.
	Endpoint string
	// Op is the operation or URL path that failed.
	Op string
	// Kind categorizes the failure.
	Kind TransportErrorKind
	// StatusCode is set for KindHTTPStatus.
	StatusCode int
	// Err is the underlying error.
	Err error
}

// Error returns a user-friendly error message.
func (e *TransportError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s calling %s on %s", e.Kind, e.Op, e.Endpoint)
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to work with wrapped errors.
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// AuthenticationError indicates the endpoint rejected the credentials.
type AuthenticationError struct {
	// Endpoint labels the orchestrator.
	Endpoint string
	// Username is the rejected user.
	Username string
	// StatusCode is the HTTP status returned.
	StatusCode int
}

// Error returns a user-friendly error message.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for user %q on %s (status %d)", e.Username, e.Endpoint, e.StatusCode)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *AuthenticationError) Is(target error) bool {
	_, ok := target.(*AuthenticationError)
	return ok
}

// classifyTransportError wraps a failed HTTP round trip into a TransportError
// with the appropriate kind.
func classifyTransportError(err error, endpoint, op string) *TransportError {
	if err == nil {
		return nil
	}

	te := &TransportError{Endpoint: endpoint, Op: op, Err: err}

	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.Canceled):
		te.Kind = KindCanceled
	case isTLSError(err):
		te.Kind = KindTLS
	case errors.As(err, &dnsErr):
		te.Kind = KindDNS
	case isTimeoutError(err):
		te.Kind = KindTimeout
	case isNetworkError(err.Error()):
		te.Kind = KindNetwork
	default:
		te.Kind = KindUnknown
	}
	return te
}

// isTLSError checks if the error is related to TLS/certificate issues.
func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	var systemRootsErr *x509.SystemRootsError

	if errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		errors.As(err, &unknownAuthErr) || errors.As(err, &systemRootsErr) {
		return true
	}

	errStr := err.Error()
	for _, keyword := range []string{"x509:", "certificate", "tls:", "TLS handshake"} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// isTimeoutError checks if the error is a timeout.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

// isNetworkError checks if the error string indicates a network connectivity issue.
func isNetworkError(errStr string) bool {
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
		"EOF",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}
