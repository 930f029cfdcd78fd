// Package sandbox provisions the throwaway directory that holds the pinned
// generator and collection packages for a single run.
//
// A sandbox is created fresh under the temp directory, receives a two-entry
// package.json, and is populated by a silent package manager install. It is
// never reused and never removed; the directory is left behind when the
// process exits.
package sandbox
