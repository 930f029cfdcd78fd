// Package environment checks that the host package manager can run a
// workspace install before anything is written to disk.
package environment
