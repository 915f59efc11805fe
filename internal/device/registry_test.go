package device

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{Username: "admin", Password: "secret"}

func writeDeviceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromAddress(t *testing.T) {
	for _, tableMode := range []bool{true, false} {
		var notices bytes.Buffer
		reg := FromAddress(SingleTarget{
			Address:     "orch.example.com",
			Port:        8443,
			Credentials: testCreds,
			TableMode:   tableMode,
		}, &notices)

		require.Equal(t, 1, reg.Len())
		ep := reg.Endpoints()[0]
		assert.Equal(t, "orch.example.com", ep.Address)
		assert.Equal(t, 8443, ep.Port)
		assert.Equal(t, testCreds, ep.Credentials)
		assert.Equal(t, tableMode, ep.TableMode)
		assert.Equal(t, "Working....\n", notices.String())
	}
}

func TestFromAddress_DefaultPort(t *testing.T) {
	reg := FromAddress(SingleTarget{Address: "10.0.0.1", Credentials: testCreds}, &bytes.Buffer{})
	assert.Equal(t, DefaultPort, reg.Endpoints()[0].Port)
}

func TestFromFile_KeepsKeyOrderAndIgnoresTableFlag(t *testing.T) {
	path := writeDeviceFile(t, `{
		"zulu":  {"IP": "10.0.0.3", "site": "hq"},
		"alpha": {"IP": "10.0.0.1"},
		"mike":  {"IP": "10.0.0.2", "IPv6": "::1"}
	}`)

	var notices bytes.Buffer
	reg, err := FromFile(path, 443, testCreds, &notices)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	var addresses, names []string
	for _, ep := range reg.Endpoints() {
		addresses = append(addresses, ep.Address)
		names = append(names, ep.Name)
		assert.False(t, ep.TableMode, "device file endpoints always render JSON")
		assert.Equal(t, 443, ep.Port)
		assert.Equal(t, testCreds, ep.Credentials)
	}
	assert.Equal(t, []string{"10.0.0.3", "10.0.0.1", "10.0.0.2"}, addresses)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, names)
	assert.Equal(t, "Working....10.0.0.3\nWorking....10.0.0.1\nWorking....10.0.0.2\n", notices.String())
}

func TestFromFile_SharedPort(t *testing.T) {
	path := writeDeviceFile(t, `{"a": {"IP": "10.0.0.1"}, "b": {"IP": "10.0.0.2"}}`)

	reg, err := FromFile(path, 9443, testCreds, &bytes.Buffer{})
	require.NoError(t, err)
	for _, ep := range reg.Endpoints() {
		assert.Equal(t, 9443, ep.Port)
	}
}

func TestFromFile_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		noPath  bool
	}{
		{name: "missing file", missing: true},
		{name: "no path", noPath: true},
		{name: "malformed json", content: `{"a": {"IP": "10.0.0.1"}`},
		{name: "top-level array", content: `[{"IP": "10.0.0.1"}]`},
		{name: "entry without IP", content: `{"a": {"ip": "10.0.0.1"}}`},
		{name: "entry not an object", content: `{"a": "10.0.0.1"}`},
		{name: "IP not a string", content: `{"a": {"IP": 10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			switch {
			case tt.noPath:
				path = ""
			case tt.missing:
				path = filepath.Join(t.TempDir(), "does-not-exist.json")
			default:
				path = writeDeviceFile(t, tt.content)
			}

			var notices bytes.Buffer
			reg, err := FromFile(path, 443, testCreds, &notices)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.Equal(t, 0, reg.Len())
			assert.Empty(t, reg.Endpoints())
			assert.Empty(t, notices.String())

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, path, cfgErr.Path)
		})
	}
}

func TestFromFile_MissingFileWrapsCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := FromFile(path, 443, testCreds, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestRegistry_EndpointsReturnsCopy(t *testing.T) {
	reg := FromAddress(SingleTarget{Address: "10.0.0.1", Credentials: testCreds}, &bytes.Buffer{})
	eps := reg.Endpoints()
	eps[0].Address = "changed"
	assert.Equal(t, "10.0.0.1", reg.Endpoints()[0].Address)
}

func TestEndpoint_Addressing(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		hostPort string
		baseURL  string
		label    string
	}{
		{
			name:     "ipv4",
			endpoint: Endpoint{Address: "10.0.0.1", Port: 443},
			hostPort: "10.0.0.1:443",
			baseURL:  "https://10.0.0.1:443/gms/rest",
			label:    "10.0.0.1:443",
		},
		{
			name:     "ipv6 with name",
			endpoint: Endpoint{Name: "lab", Address: "fd00::1", Port: 8443},
			hostPort: "[fd00::1]:8443",
			baseURL:  "https://[fd00::1]:8443/gms/rest",
			label:    "lab ([fd00::1]:8443)",
		},
		{
			name:     "zero port falls back to default",
			endpoint: Endpoint{Address: "orch"},
			hostPort: "orch:443",
			baseURL:  "https://orch:443/gms/rest",
			label:    "orch:443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hostPort, tt.endpoint.HostPort())
			assert.Equal(t, tt.baseURL, tt.endpoint.BaseURL())
			assert.Equal(t, tt.label, tt.endpoint.String())
		})
	}
}
