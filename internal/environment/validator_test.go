package environment

import (
	"context"
	stderrors "errors"
	"os/exec"
	"testing"

	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/runtime"
)

func TestValidate_VersionReports(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		wantErr error
	}{
		{"below minimum", "4.9.9\n", errors.ErrPackageManagerTooOld},
		{"exactly minimum", "5.0.0\n", nil},
		{"newer", "6.2.1\n", nil},
		{"malformed output fails closed", "command not recognized\n", errors.ErrPackageManagerNotFound},
		{"empty output fails closed", "", errors.ErrPackageManagerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := runtime.NewMockExecutor().QueueExit(0, tt.stdout)
			v := NewValidator(mock)

			err := v.Validate(context.Background(), runtime.SelectPackageManager(false, ""))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}

			calls := mock.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected exactly one subprocess, got %d", len(calls))
			}
			if calls[0].String() != "npm --version" {
				t.Errorf("version query = %q, want %q", calls[0].String(), "npm --version")
			}
		})
	}
}

func TestValidate_BinaryMissing(t *testing.T) {
	mock := runtime.NewMockExecutor().Queue(nil, exec.ErrNotFound)
	err := NewValidator(mock).Validate(context.Background(), runtime.SelectPackageManager(false, ""))

	if !stderrors.Is(err, errors.ErrPackageManagerNotFound) {
		t.Fatalf("expected PackageManagerNotFound, got %v", err)
	}
	if errors.GetExitCode(err) == 0 {
		t.Error("missing package manager must exit non-zero")
	}
}

func TestValidate_NonZeroVersionQuery(t *testing.T) {
	mock := runtime.NewMockExecutor().QueueExit(127, "")
	err := NewValidator(mock).Validate(context.Background(), runtime.SelectPackageManager(false, ""))

	if !stderrors.Is(err, errors.ErrPackageManagerNotFound) {
		t.Fatalf("expected PackageManagerNotFound, got %v", err)
	}
}

func TestValidate_YarnSkipsCheck(t *testing.T) {
	mock := runtime.NewMockExecutor()
	err := NewValidator(mock).Validate(context.Background(), runtime.SelectPackageManager(true, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("yarn must not be version-checked, got %d calls", mock.CallCount())
	}
}

func TestValidate_CustomMinimum(t *testing.T) {
	mock := runtime.NewMockExecutor().QueueExit(0, "6.0.0")
	v := &Validator{Exec: mock, Minimum: "7.0.0"}

	err := v.Validate(context.Background(), runtime.SelectPackageManager(false, ""))
	if !stderrors.Is(err, errors.ErrPackageManagerTooOld) {
		t.Fatalf("expected PackageManagerTooOld, got %v", err)
	}
}
