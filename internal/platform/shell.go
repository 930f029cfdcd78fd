package platform

import (
	"runtime"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Shell is a command interpreter and the flag that makes it run one line.
type Shell struct {
	Name string
	Flag string
}

// IsCmd reports whether s is the Windows command interpreter.
func (s Shell) IsCmd() bool {
	return strings.EqualFold(s.Name, "cmd")
}

// Args returns the interpreter arguments for line. Under cmd the line is
// wrapped for /S so its own quotes are kept; the result must reach cmd as a
// verbatim command line.
func (s Shell) Args(line string) []string {
	if s.IsCmd() {
		return []string{"/S", s.Flag, `"` + line + `"`}
	}
	return []string{s.Flag, line}
}

// Quote quotes arg as a single word for s. POSIX shells get single quotes;
// cmd gets double quotes with embedded quotes doubled.
func (s Shell) Quote(arg string) string {
	if s.IsCmd() {
		return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
	}
	return shellquote.Join(arg)
}

// Executable returns the file name a package manager gives the launcher of
// a locally installed binary: name.cmd under cmd, name elsewhere.
func (s Shell) Executable(name string) string {
	if s.IsCmd() {
		return name + ".cmd"
	}
	return name
}

// SystemShell returns the shell for the running operating system.
func SystemShell() Shell {
	return ShellFor(runtime.GOOS)
}

// ShellFor returns the shell used on goos.
func ShellFor(goos string) Shell {
	if goos == "windows" {
		return Shell{Name: "cmd", Flag: "/C"}
	}
	return Shell{Name: "sh", Flag: "-c"}
}
