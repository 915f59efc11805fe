package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `port: 8443
username: admin
deviceFile: /tmp/devices.json
tlsVerify: true
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:       8443,
		Username:   "admin",
		DeviceFile: "/tmp/devices.json",
		TLSVerify:  true,
	}, cfg)
}

func TestLoadConfig_PartialFileKeepsDefaultPort(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "username: ops\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "ops", cfg.Username)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "port: [1, 2\n",
			wantErr: "error loading config from",
		},
		{
			name:    "port out of range",
			content: "port: 70000\n",
			wantErr: "field 'port'",
		},
		{
			name:    "padded username",
			content: "username: ' admin'\n",
			wantErr: "field 'username'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := LoadConfig(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), filepath.Join(dir, configFileName))
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("port", "bad", 0)
	assert.Equal(t, "field 'port': bad", errs.Error())

	errs.Add("", "other", nil)
	assert.Equal(t, "validation failed: field 'port': bad; other", errs.Error())
}
