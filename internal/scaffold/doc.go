// Package scaffold delegates project generation to the `ng new` binary
// installed in a sandbox. The binary is always taken from the sandbox so the
// generator matches the pinned collection regardless of what is installed on
// the host.
package scaffold
