package cli

import (
	"io"
	"text/template"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/config"
)

var usageTemplate = template.Must(template.New("usage").Parse(`
    Usage: {{.CLIName}} <directory> [options] [ng new options]

    {{.Description}} (that is to say a new angular-cli project using @nrwl/schematics)

    Options:

      directory             path to the workspace root directory
      --yarn                use yarn instead of npm (default to false)
      --bazel               use bazel instead of webpack (default to false)

      [ng new options]      any 'ng new' options
                            run 'ng new --help' for more information

    Configuration ({{.ConfigHint}}):

      {{printf "%-28s" .YarnEnv}}use yarn by default
      {{printf "%-28s" .RegistryEnv}}npm registry used by every install
      {{printf "%-28s" .SandboxDirEnv}}parent directory for the temporary sandbox
      {{printf "%-28s" .DebugEnv}}print debug logs to stderr
`))

type usageData struct {
	CLIName       string
	Description   string
	ConfigHint    string
	YarnEnv       string
	RegistryEnv   string
	SandboxDirEnv string
	DebugEnv      string
}

func printUsage(w io.Writer) {
	_ = usageTemplate.Execute(w, usageData{
		CLIName:       branding.CLIName(),
		Description:   branding.Description(),
		ConfigHint:    "~/" + branding.HomeDir() + "/config.yaml or environment",
		YarnEnv:       branding.EnvVar(config.KeyYarn),
		RegistryEnv:   branding.EnvVar(config.KeyRegistry),
		SandboxDirEnv: branding.EnvVar(config.KeySandboxDir),
		DebugEnv:      branding.EnvVar(config.KeyDebug),
	})
}
