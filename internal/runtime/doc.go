// Package runtime runs the external programs a workspace run depends on.
// Every subprocess is described by an explicit Command (binary, arguments,
// working directory, environment overrides) and yields an Output carrying its
// exit code. PackageManager builds the npm or yarn commands used by the
// pipeline stages.
package runtime
