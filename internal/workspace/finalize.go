package workspace

import (
	"context"
	"path/filepath"

	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/options"
	"github.com/workspace-labs/create-workspace/internal/runtime"
)

// StageFinalize names the project install in SubprocessFailed errors.
const StageFinalize = "finalize install"

// Finalizer installs the dependencies of the generated project.
type Finalizer struct {
	Exec runtime.Executor
}

// TargetPath returns the absolute project directory for opts.
func TargetPath(opts options.Options) string {
	dir := opts.TargetDir()
	if filepath.IsAbs(dir) || opts.WorkingDir == "" {
		return dir
	}
	return filepath.Join(opts.WorkingDir, dir)
}

// Finalize runs a full (non-silent) install in the project directory.
func (f *Finalizer) Finalize(ctx context.Context, opts options.Options, pm runtime.PackageManager) error {
	out, err := f.Exec.Execute(ctx, pm.InstallCommand(TargetPath(opts), false))
	if err != nil {
		return errors.SubprocessFailed(StageFinalize, 0, err)
	}
	if out.ExitCode != 0 {
		return errors.SubprocessFailed(StageFinalize, out.ExitCode, nil)
	}
	return nil
}
