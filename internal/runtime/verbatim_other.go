//go:build !windows

package runtime

import "os/exec"

// applyVerbatim is a no-op: argv is passed to the child unchanged.
func applyVerbatim(*exec.Cmd, Command) {}
