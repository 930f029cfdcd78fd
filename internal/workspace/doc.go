// Package workspace runs the create-workspace pipeline:
//
//	validate environment → select tool → build sandbox → invoke generator → finalize install
//
// Stages run strictly in order and every failure is terminal. Nothing is
// rolled back: a failed run may leave the sandbox and a partially installed
// project directory behind.
package workspace
