// Package errors defines the failure taxonomy of a workspace run and maps each
// failure to a process exit code. Every error in this package is terminal:
// the pipeline never retries or recovers from one.
package errors
