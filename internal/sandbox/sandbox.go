package sandbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/logging"
	"github.com/workspace-labs/create-workspace/internal/manifest"
	"github.com/workspace-labs/create-workspace/internal/runtime"
	"github.com/workspace-labs/create-workspace/internal/tool"
)

// StageInstall names the sandbox install in SubprocessFailed errors.
const StageInstall = "sandbox install"

// Sandbox is a provisioned sandbox directory.
type Sandbox struct {
	Dir  string
	Tool tool.Descriptor
}

// BinPath resolves an executable from the sandbox's node_modules/.bin,
// never escaping the sandbox even through symlinks.
func (s *Sandbox) BinPath(name string) (string, error) {
	path, err := securejoin.SecureJoin(s.Dir, filepath.Join("node_modules", ".bin", name))
	if err != nil {
		return "", fmt.Errorf("resolving %s in sandbox %s: %w", name, s.Dir, err)
	}
	return path, nil
}

// Builder creates sandboxes.
type Builder struct {
	Exec runtime.Executor
	// TempRoot is the parent directory for sandboxes; empty means os.TempDir().
	TempRoot string
}

// NewBuilder returns a Builder using the OS temp directory.
func NewBuilder(exec runtime.Executor) *Builder {
	return &Builder{Exec: exec}
}

// Build creates a new sandbox for d and installs its dependencies with pm.
// A failed install is fatal and leaves the directory in place.
func (b *Builder) Build(ctx context.Context, d tool.Descriptor, pm runtime.PackageManager) (*Sandbox, error) {
	logging.UserInfo("Creating a sandbox with the CLI and %s %s...", branding.DisplayName(), d.DisplayName)

	dir, err := os.MkdirTemp(b.TempRoot, branding.CLIName()+"-")
	if err != nil {
		return nil, fmt.Errorf("creating sandbox directory: %w", err)
	}
	logging.Debug("sandbox created", "dir", dir, "tool", d.Variant.String())

	if _, err := manifest.ForTool(d).Write(dir); err != nil {
		return nil, err
	}

	out, err := b.Exec.Execute(ctx, pm.InstallCommand(dir, true))
	if err != nil {
		return nil, errors.SubprocessFailed(StageInstall, 0, err)
	}
	if out.ExitCode != 0 {
		return nil, errors.SubprocessFailed(StageInstall, out.ExitCode, nil)
	}

	return &Sandbox{Dir: dir, Tool: d}, nil
}
