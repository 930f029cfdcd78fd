// Package platform hides the operating-system differences of running a
// command line through the system shell. On Unix systems the line is given to
// sh -c with single-quoted words; on Windows it goes to cmd /S /C with
// double-quoted words, and locally installed binaries carry a .cmd suffix.
package platform
