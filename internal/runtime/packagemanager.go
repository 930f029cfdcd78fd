package runtime

// Supported package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
)

// PackageManager builds the commands for one package manager binary.
type PackageManager struct {
	Name string
	// Registry, when set, is exported to install commands as npm_config_registry.
	Registry string
}

// SelectPackageManager returns yarn when useYarn is set and npm otherwise.
func SelectPackageManager(useYarn bool, registry string) PackageManager {
	name := ManagerNPM
	if useYarn {
		name = ManagerYarn
	}
	return PackageManager{Name: name, Registry: registry}
}

// IsStandard reports whether this is npm, the only manager whose version is checked.
func (p PackageManager) IsStandard() bool {
	return p.Name == ManagerNPM
}

// VersionCommand returns the version query, e.g. `npm --version`, with stdout captured.
func (p PackageManager) VersionCommand() Command {
	return Command{
		Name:    p.Name,
		Args:    []string{"--version"},
		Capture: true,
	}
}

// InstallCommand returns `<pm> install` run in dir. silent adds --silent,
// which is used for the sandbox but not for the final project.
func (p PackageManager) InstallCommand(dir string, silent bool) Command {
	args := []string{"install"}
	if silent {
		args = append(args, "--silent")
	}
	cmd := Command{
		Name: p.Name,
		Args: args,
		Dir:  dir,
	}
	if p.Registry != "" {
		cmd.Env = []string{"npm_config_registry=" + p.Registry}
	}
	return cmd
}
