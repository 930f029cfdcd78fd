package errors

import (
	"errors"
	"fmt"
)

// Exit codes for create-workspace
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
)

// Kind classifies a WorkspaceError.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingProjectName
	KindInvalidProjectName
	KindInvalidArguments
	KindPackageManagerNotFound
	KindPackageManagerTooOld
	KindSubprocessFailed
)

func (k Kind) String() string {
	switch k {
	case KindMissingProjectName:
		return "MissingProjectName"
	case KindInvalidProjectName:
		return "InvalidProjectName"
	case KindInvalidArguments:
		return "InvalidArguments"
	case KindPackageManagerNotFound:
		return "PackageManagerNotFound"
	case KindPackageManagerTooOld:
		return "PackageManagerTooOld"
	case KindSubprocessFailed:
		return "SubprocessFailed"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is; they match any WorkspaceError of the same kind.
var (
	ErrMissingProjectName     = &WorkspaceError{Kind: KindMissingProjectName}
	ErrInvalidProjectName     = &WorkspaceError{Kind: KindInvalidProjectName}
	ErrInvalidArguments       = &WorkspaceError{Kind: KindInvalidArguments}
	ErrPackageManagerNotFound = &WorkspaceError{Kind: KindPackageManagerNotFound}
	ErrPackageManagerTooOld   = &WorkspaceError{Kind: KindPackageManagerTooOld}
	ErrSubprocessFailed       = &WorkspaceError{Kind: KindSubprocessFailed}
)

// WorkspaceError is the base error type for create-workspace
type WorkspaceError struct {
	Kind    Kind
	Code    int
	Message string
	// Stage names the pipeline stage for SubprocessFailed errors.
	Stage string
	Cause error
}

func (e *WorkspaceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WorkspaceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a WorkspaceError of the same kind.
func (e *WorkspaceError) Is(target error) bool {
	t, ok := target.(*WorkspaceError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ExitCode returns the exit code for this error
func (e *WorkspaceError) ExitCode() int {
	if e.Code <= 0 {
		return ExitGeneralError
	}
	return e.Code
}

// New creates a new WorkspaceError
func New(kind Kind, message string) *WorkspaceError {
	return &WorkspaceError{
		Kind:    kind,
		Code:    ExitGeneralError,
		Message: message,
	}
}

// Wrap wraps an existing error with a WorkspaceError
func Wrap(kind Kind, message string, cause error) *WorkspaceError {
	return &WorkspaceError{
		Kind:    kind,
		Code:    ExitGeneralError,
		Message: message,
		Cause:   cause,
	}
}

// MissingProjectName returns an error for an invocation without a project name.
func MissingProjectName(cliName string) *WorkspaceError {
	return New(KindMissingProjectName,
		fmt.Sprintf("Please provide a project name (e.g., %s nrwl-proj)", cliName))
}

// InvalidProjectName returns an error for a name the bazel variant cannot use.
func InvalidProjectName(name string) *WorkspaceError {
	return New(KindInvalidProjectName, fmt.Sprintf(
		"%s is invalid for a bazel workspace.\n"+
			"Your workspace name must contain only alphanumeric characters and underscores.", name))
}

// InvalidArguments returns an error for control flags that could not be parsed.
func InvalidArguments(cause error) *WorkspaceError {
	return Wrap(KindInvalidArguments, "invalid arguments", cause)
}

// PackageManagerNotFound returns an error when the package manager cannot run
// or reports something that is not a version.
func PackageManagerNotFound(name string, cause error) *WorkspaceError {
	return Wrap(KindPackageManagerNotFound,
		fmt.Sprintf("Cannot find %s. If you want to use yarn to create a project, pass the --yarn flag.", name),
		cause)
}

// PackageManagerTooOld returns an error when the reported version is below minimum.
func PackageManagerTooOld(name, reported, minimum string) *WorkspaceError {
	return New(KindPackageManagerTooOld, fmt.Sprintf(
		"To create a workspace you must have %s >= %s installed (found %s).", name, minimum, reported))
}

// SubprocessFailed returns an error for a stage whose child process failed.
// A positive exitCode is propagated as the process exit code.
func SubprocessFailed(stage string, exitCode int, cause error) *WorkspaceError {
	msg := fmt.Sprintf("%s failed", stage)
	if cause == nil {
		msg = fmt.Sprintf("%s failed with exit code %d", stage, exitCode)
	}
	e := Wrap(KindSubprocessFailed, msg, cause)
	e.Stage = stage
	if exitCode > 0 {
		e.Code = exitCode
	}
	return e
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var wsErr *WorkspaceError
	if errors.As(err, &wsErr) {
		return wsErr.ExitCode()
	}
	return ExitGeneralError
}

// KindOf returns the kind of the first WorkspaceError in err's chain.
func KindOf(err error) Kind {
	var wsErr *WorkspaceError
	if errors.As(err, &wsErr) {
		return wsErr.Kind
	}
	return KindUnknown
}
