package options

import (
	"io"
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/workspace-labs/create-workspace/internal/branding"
	"github.com/workspace-labs/create-workspace/internal/errors"
)

// Control flag names.
const (
	FlagYarn      = "yarn"
	FlagBazel     = "bazel"
	FlagHelp      = "help"
	FlagDirectory = "directory"
)

// bazelNamePattern restricts project names for the bazel variant.
var bazelNamePattern = regexp.MustCompile(`^\w+$`)

// Options is the resolved invocation. It is built once at startup and passed
// by value to every stage; nothing modifies it afterwards.
type Options struct {
	ProjectName string
	// TargetDirectory is the --directory value, empty when the flag is absent.
	TargetDirectory string
	UseYarn         bool
	UseBazel        bool
	Help            bool
	// Passthrough holds the arguments forwarded to the generator, in their
	// original order and spelling, without the control flags.
	Passthrough []string
	// WorkingDir is the directory the run was started from.
	WorkingDir string
}

// Defaults are configuration-supplied values applied before the arguments.
type Defaults struct {
	UseYarn    bool
	WorkingDir string
}

// Resolve parses args (the process arguments after the program name).
// The first positional argument is the project name.
func Resolve(args []string, defaults Defaults) (Options, error) {
	fs := pflag.NewFlagSet(branding.CLIName(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	useYarn := fs.Bool(FlagYarn, false, "use yarn instead of npm")
	useBazel := fs.Bool(FlagBazel, false, "use bazel instead of webpack")
	help := fs.BoolP(FlagHelp, "h", false, "show usage")
	directory := fs.String(FlagDirectory, "", "path to the workspace root directory")

	if err := fs.Parse(args); err != nil {
		return Options{}, errors.InvalidArguments(err)
	}

	opts := Options{
		TargetDirectory: *directory,
		UseYarn:         defaults.UseYarn || *useYarn,
		UseBazel:        *useBazel,
		Help:            *help,
		Passthrough:     Passthrough(args),
		WorkingDir:      defaults.WorkingDir,
	}
	if positional := fs.Args(); len(positional) > 0 {
		opts.ProjectName = positional[0]
	}

	if opts.Help {
		return opts, nil
	}

	if opts.ProjectName == "" {
		return Options{}, errors.MissingProjectName(branding.CLIName())
	}
	if opts.UseBazel && !bazelNamePattern.MatchString(opts.ProjectName) {
		return Options{}, errors.InvalidProjectName(opts.ProjectName)
	}

	return opts, nil
}

// Passthrough returns args without the control flags that are consumed here.
// --directory is kept because the generator understands it too. Everything
// from a "--" terminator on is forwarded untouched, matching the flag parser.
func Passthrough(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if isControlFlag(a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func isControlFlag(arg string) bool {
	if arg == "-h" || strings.HasPrefix(arg, "-h=") {
		return true
	}
	name, ok := strings.CutPrefix(arg, "--")
	if !ok {
		return false
	}
	name, _, _ = strings.Cut(name, "=")
	switch name {
	case FlagYarn, FlagBazel, FlagHelp:
		return true
	}
	return false
}

// TargetDir returns the directory the generator creates and the finalizer
// installs into: the --directory value, or the project name when absent.
func (o Options) TargetDir() string {
	if o.TargetDirectory != "" {
		return o.TargetDirectory
	}
	return o.ProjectName
}
