package scaffold

import (
	"context"
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/logging"
	"github.com/workspace-labs/create-workspace/internal/options"
	"github.com/workspace-labs/create-workspace/internal/platform"
	"github.com/workspace-labs/create-workspace/internal/runtime"
	"github.com/workspace-labs/create-workspace/internal/sandbox"
	"github.com/workspace-labs/create-workspace/internal/tool"
)

// StageGenerate names the generator run in SubprocessFailed errors.
const StageGenerate = "generate"

const (
	// GeneratorBinary is the generator executable inside the sandbox.
	GeneratorBinary = "ng"
	// GeneratorCommand is the generator sub-command that creates a project.
	GeneratorCommand = "new"
)

// Invoker runs the generator.
type Invoker struct {
	Exec runtime.Executor
	// Shell runs the quoted command line; the zero value means the system shell.
	Shell platform.Shell
}

// NewInvoker returns an Invoker using the system shell.
func NewInvoker(exec runtime.Executor) *Invoker {
	return &Invoker{Exec: exec}
}

// GeneratorArgs returns the generator flags after the passthrough arguments:
// skip the generator's own install and use d's collection.
func GeneratorArgs(d tool.Descriptor) []string {
	return []string{"--skip-install", "--collection=" + d.CollectionID}
}

// CommandLine builds the command line sh runs for bin. Each passthrough
// argument is quoted on its own.
func CommandLine(sh platform.Shell, bin string, passthrough []string, d tool.Descriptor) string {
	parts := make([]string, 0, len(passthrough)+4)
	parts = append(parts, sh.Quote(bin), GeneratorCommand)
	for _, arg := range passthrough {
		parts = append(parts, sh.Quote(arg))
	}
	parts = append(parts, GeneratorArgs(d)...)
	return strings.Join(parts, " ")
}

// Invoke runs `ng new` from sb against opts.WorkingDir. The generator creates
// the target directory; a non-zero exit is fatal and its code is propagated.
func (i *Invoker) Invoke(ctx context.Context, sb *sandbox.Sandbox, opts options.Options) error {
	shell := i.Shell
	if shell.Name == "" {
		shell = platform.SystemShell()
	}

	bin, err := sb.BinPath(shell.Executable(GeneratorBinary))
	if err != nil {
		return err
	}

	display := append([]string{GeneratorCommand}, opts.Passthrough...)
	logging.Plain("%s %s --collection=%s", GeneratorBinary, shellquote.Join(display...), sb.Tool.CollectionID)

	line := CommandLine(shell, bin, opts.Passthrough, sb.Tool)
	logging.Debug("running generator", "command", line, "dir", opts.WorkingDir)

	out, err := i.Exec.Execute(ctx, runtime.Command{
		Name:     shell.Name,
		Args:     shell.Args(line),
		Dir:      opts.WorkingDir,
		Verbatim: shell.IsCmd(),
	})
	if err != nil {
		return errors.SubprocessFailed(StageGenerate, 0, fmt.Errorf("starting %s: %w", GeneratorBinary, err))
	}
	if out.ExitCode != 0 {
		return errors.SubprocessFailed(StageGenerate, out.ExitCode, nil)
	}
	return nil
}
