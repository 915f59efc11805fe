// Package device builds the list of orchestrator endpoints a command runs
// against.
//
// A Registry is built once at startup, either from a single address given on
// the command line (FromAddress) or from a JSON device file mapping names to
// objects with an "IP" field (FromFile). Endpoints are kept in the order they
// were registered, which for device files is the key order of the file.
//
// Only single-address registration honors the table output flag. Endpoints
// read from a device file always render JSON.
package device
