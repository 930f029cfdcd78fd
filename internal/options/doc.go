// Package options turns the raw command-line arguments of a run into an
// Options value. Only the control flags (--yarn, --bazel, --help and
// --directory) are interpreted; every other argument is kept verbatim for the
// generator.
package options
