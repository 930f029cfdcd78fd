// Package manifest builds the dependency manifest (package.json) written into
// a sandbox and validates it against an embedded JSON Schema before it is
// handed to the package manager.
package manifest
