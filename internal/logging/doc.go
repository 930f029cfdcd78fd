// Package logging provides console output for create-workspace.
//
// Two categories of output exist:
//   - User output: human-readable status lines (UserInfo, UserSuccess,
//     UserWarning, UserError). Info and success go to stdout, warnings and
//     errors to stderr.
//   - Debug logging: slog records written to stderr only when debug is
//     enabled through config (CREATE_WORKSPACE_DEBUG=true).
//
// Subprocess output never passes through this package; child processes
// inherit the terminal directly.
package logging
