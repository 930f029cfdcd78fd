// Package cli defines the Cobra root command of create-workspace. The command
// takes over argument handling itself: flag parsing is disabled in Cobra so
// that unknown generator options reach the options resolver untouched.
package cli
