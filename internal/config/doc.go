// Package config loads the optional spcli defaults file.
//
// The file lives at <config-path>/config.yaml (by default
// ~/.config/spcli/config.yaml) and supplies fallback values for the global
// flags:
//
//	port: 443
//	username: admin
//	deviceFile: /path/to/devices.json
//	tlsVerify: false
//
// A missing file is not an error; LoadConfig returns the defaults. Values
// from the file are only applied to flags the user did not set explicitly.
package config
