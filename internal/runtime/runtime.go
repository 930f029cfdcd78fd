package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/workspace-labs/create-workspace/internal/logging"
)

// Command describes a single subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the child. It is always set by callers;
	// an empty value means the directory of the current process.
	Dir string
	// Env holds KEY=VALUE overrides applied on top of the inherited environment.
	Env []string
	// Capture collects stdout into Output.Stdout instead of streaming it.
	Capture bool
	// Verbatim hands Args to the child without re-escaping. It only changes
	// anything on Windows, where cmd.exe parses its own command line.
	Verbatim bool
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// Output captures the result of a subprocess.
type Output struct {
	ExitCode int
	// Stdout is only populated for Capture commands.
	Stdout string
}

// Executor runs commands to completion. A non-zero exit is reported through
// Output.ExitCode; the error return is reserved for children that could not
// be started at all.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (*Output, error)
}

// OSExecutor executes commands as real child processes.
type OSExecutor struct {
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's own standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor returns an executor whose children inherit the standard streams.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{}
}

// Execute runs cmd and blocks until it exits. No timeout is applied.
func (e *OSExecutor) Execute(ctx context.Context, c Command) (*Output, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	applyVerbatim(cmd, c)
	if len(c.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), c.Env)
	}

	stdout := e.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	stdin := e.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	var stdoutBuf bytes.Buffer
	if c.Capture {
		cmd.Stdout = &stdoutBuf
	} else {
		cmd.Stdin = stdin
		cmd.Stdout = stdout
	}
	cmd.Stderr = stderr

	logging.Debug("exec", "command", c.String(), "dir", c.Dir, "env", c.Env)
	err = cmd.Run()

	output := &Output{Stdout: stdoutBuf.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", c.Name, err)
	}

	return output, nil
}

// mergeEnv applies KEY=VALUE overrides to a base environment.
func mergeEnv(base, overrides []string) []string {
	env := append([]string(nil), base...)
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env = setEnv(env, key, value)
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
