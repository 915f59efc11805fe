package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

const (
	// UsernameEnvVar overrides the username when --username is not given.
	UsernameEnvVar = "SPCLI_USERNAME"
	// PasswordEnvVar overrides the password when --password is not given.
	PasswordEnvVar = "SPCLI_PASSWORD"
)

// ErrNoTerminal is returned when credentials are missing and stdin cannot
// be used to prompt for them.
var ErrNoTerminal = errors.New("credentials missing and stdin is not a terminal")

// Prompter asks the operator for input.
type Prompter interface {
	// ReadLine reads one line with echo.
	ReadLine(prompt string) (string, error)
	// ReadPassword reads one line without echo.
	ReadPassword(prompt string) (string, error)
}

// TerminalPrompter prompts on the controlling terminal. Prompts are written
// to Output so stdout carries only command results. The username line is
// read through readline from the process stdin; Input is only checked for
// being a terminal and used for the password.
type TerminalPrompter struct {
	Input  *os.File
	Output io.Writer
}

// NewTerminalPrompter returns a prompter reading stdin and prompting on stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{Input: os.Stdin, Output: os.Stderr}
}

func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	if !term.IsTerminal(int(p.Input.Fd())) {
		return "", ErrNoTerminal
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		Stdout:          p.Output,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err == readline.ErrInterrupt {
		return "", errors.New("interrupted")
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) ReadPassword(prompt string) (string, error) {
	fd := int(p.Input.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprint(p.Output, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(p.Output)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// ResolveCredentials fills missing credentials from the environment and then
// from the prompter. Values already set are kept.
func ResolveCredentials(flags *GlobalFlags, prompter Prompter) error {
	if flags.Username == "" {
		flags.Username = os.Getenv(UsernameEnvVar)
	}
	if flags.Password == "" {
		flags.Password = os.Getenv(PasswordEnvVar)
	}

	var err error
	if flags.Username == "" {
		if flags.Username, err = prompter.ReadLine("Username: "); err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}
	if flags.Password == "" {
		if flags.Password, err = prompter.ReadPassword("Password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	return nil
}
