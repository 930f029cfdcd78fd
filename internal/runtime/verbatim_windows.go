//go:build windows

package runtime

import (
	"os/exec"
	"strings"
	"syscall"
)

func applyVerbatim(cmd *exec.Cmd, c Command) {
	if !c.Verbatim {
		return
	}
	line := append([]string{syscall.EscapeArg(cmd.Path)}, c.Args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: strings.Join(line, " ")}
}
