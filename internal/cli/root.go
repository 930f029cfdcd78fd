package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/config"
	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/logging"
	"github.com/workspace-labs/create-workspace/internal/options"
	"github.com/workspace-labs/create-workspace/internal/runtime"
	"github.com/workspace-labs/create-workspace/internal/workspace"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	// executor runs every subprocess; tests replace it with a mock.
	executor runtime.Executor = runtime.NewOSExecutor()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <projectName> [options] [ng new options]",
	Short: branding.Description(),
	Long: branding.Description() + ` (that is to say a new angular-cli project using @nrwl/schematics).

The workspace is generated by a pinned ng CLI installed into a temporary
sandbox, then its dependencies are installed in place.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runCreate,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()
	settings := config.Current()
	logging.Setup(settings.Debug, cmd.ErrOrStderr())

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	opts, err := options.Resolve(args, options.Defaults{UseYarn: settings.Yarn, WorkingDir: cwd})
	if err != nil {
		return err
	}
	if opts.Help {
		printUsage(cmd.OutOrStdout())
		return nil
	}

	logging.Debug("starting run", "version", buildVersion, "commit", buildCommit,
		"project", opts.ProjectName, "yarn", opts.UseYarn, "bazel", opts.UseBazel)

	p := &workspace.Pipeline{
		Exec:            executor,
		PackagedVersion: buildVersion,
		Registry:        settings.Registry,
		SandboxRoot:     settings.SandboxDir,
	}
	return p.Run(cmd.Context(), opts)
}

// Execute runs the root command with build info injected via ldflags.
// Failures are reported on stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		logging.Debug("run failed", "kind", errors.KindOf(err).String(), "exit", errors.GetExitCode(err))
		logging.UserError("%v", err)
		return err
	}
	return nil
}
