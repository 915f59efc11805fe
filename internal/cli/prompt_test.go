package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	line     string
	password string
	err      error
	prompts  []string
}

func (p *fakePrompter) ReadLine(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.line, p.err
}

func (p *fakePrompter) ReadPassword(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.password, p.err
}

func TestResolveCredentials(t *testing.T) {
	tests := []struct {
		name        string
		flags       GlobalFlags
		env         map[string]string
		wantUser    string
		wantPass    string
		wantPrompts []string
	}{
		{
			name:     "flags set",
			flags:    GlobalFlags{Username: "admin", Password: "secret"},
			wantUser: "admin",
			wantPass: "secret",
		},
		{
			name:     "environment fills missing values",
			flags:    GlobalFlags{Username: "admin"},
			env:      map[string]string{UsernameEnvVar: "ignored", PasswordEnvVar: "fromenv"},
			wantUser: "admin",
			wantPass: "fromenv",
		},
		{
			name:        "prompts for both",
			wantUser:    "typed",
			wantPass:    "hidden",
			wantPrompts: []string{"Username: ", "Password: "},
		},
		{
			name:        "prompts only for password",
			env:         map[string]string{UsernameEnvVar: "envuser"},
			wantUser:    "envuser",
			wantPass:    "hidden",
			wantPrompts: []string{"Password: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(UsernameEnvVar, "")
			t.Setenv(PasswordEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			prompter := &fakePrompter{line: "typed", password: "hidden"}
			flags := tt.flags
			require.NoError(t, ResolveCredentials(&flags, prompter))

			assert.Equal(t, tt.wantUser, flags.Username)
			assert.Equal(t, tt.wantPass, flags.Password)
			assert.Equal(t, tt.wantPrompts, prompter.prompts)
		})
	}
}

func TestResolveCredentials_PromptError(t *testing.T) {
	t.Setenv(UsernameEnvVar, "")
	t.Setenv(PasswordEnvVar, "")

	flags := GlobalFlags{Username: "admin"}
	err := ResolveCredentials(&flags, &fakePrompter{err: ErrNoTerminal})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTerminal))
	assert.Contains(t, err.Error(), "failed to read password")
}
