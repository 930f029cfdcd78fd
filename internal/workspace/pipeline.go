package workspace

import (
	"context"

	"github.com/workspace-labs/create-workspace/internal/environment"
	"github.com/workspace-labs/create-workspace/internal/logging"
	"github.com/workspace-labs/create-workspace/internal/options"
	"github.com/workspace-labs/create-workspace/internal/platform"
	"github.com/workspace-labs/create-workspace/internal/runtime"
	"github.com/workspace-labs/create-workspace/internal/sandbox"
	"github.com/workspace-labs/create-workspace/internal/scaffold"
	"github.com/workspace-labs/create-workspace/internal/tool"
)

// Pipeline wires the stages of a run to one executor.
type Pipeline struct {
	Exec runtime.Executor
	// PackagedVersion is the release version of this binary.
	PackagedVersion string
	// Registry is exported to every install as npm_config_registry.
	Registry string
	// SandboxRoot is the parent of the sandbox directory; empty means os.TempDir().
	SandboxRoot string
	// Shell interprets the generator command line; the zero value means the
	// system shell.
	Shell platform.Shell
}

// Run executes every stage for opts and returns the first failure.
func (p *Pipeline) Run(ctx context.Context, opts options.Options) error {
	pm := runtime.SelectPackageManager(opts.UseYarn, p.Registry)

	if err := environment.NewValidator(p.Exec).Validate(ctx, pm); err != nil {
		return err
	}

	d := tool.Select(opts, p.PackagedVersion)
	logging.Debug("tool selected", "tool", d.Variant.String(), "collection", d.CollectionID,
		"version", d.ToolVersion, "cli", d.CLIVersion)

	builder := sandbox.NewBuilder(p.Exec)
	builder.TempRoot = p.SandboxRoot
	sb, err := builder.Build(ctx, d, pm)
	if err != nil {
		return err
	}

	invoker := scaffold.NewInvoker(p.Exec)
	if p.Shell.Name != "" {
		invoker.Shell = p.Shell
	}
	if err := invoker.Invoke(ctx, sb, opts); err != nil {
		return err
	}

	finalizer := &Finalizer{Exec: p.Exec}
	if err := finalizer.Finalize(ctx, opts, pm); err != nil {
		return err
	}

	logging.UserSuccess("Workspace %s created in %s", opts.ProjectName, opts.TargetDir())
	return nil
}
