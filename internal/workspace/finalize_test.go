package workspace

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/workspace-labs/create-workspace/internal/errors"
	"github.com/workspace-labs/create-workspace/internal/options"
	"github.com/workspace-labs/create-workspace/internal/runtime"
)

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name string
		opts options.Options
		want string
	}{
		{"project name", options.Options{ProjectName: "demo", WorkingDir: "/work"}, filepath.Join("/work", "demo")},
		{"directory option", options.Options{ProjectName: "demo", TargetDirectory: "custom", WorkingDir: "/work"}, filepath.Join("/work", "custom")},
		{"absolute directory", options.Options{ProjectName: "demo", TargetDirectory: "/srv/ws", WorkingDir: "/work"}, "/srv/ws"},
		{"no working dir", options.Options{ProjectName: "demo"}, "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetPath(tt.opts); got != tt.want {
				t.Errorf("TargetPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFinalize_FullInstall(t *testing.T) {
	mock := runtime.NewMockExecutor()
	f := &Finalizer{Exec: mock}
	opts := options.Options{ProjectName: "demo", WorkingDir: "/work"}

	if err := f.Finalize(context.Background(), opts, runtime.SelectPackageManager(true, "")); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "yarn" || !reflect.DeepEqual(calls[0].Args, []string{"install"}) {
		t.Errorf("finalize command = %q, want %q", calls[0].String(), "yarn install")
	}
	if calls[0].Dir != filepath.Join("/work", "demo") {
		t.Errorf("finalize ran in %q", calls[0].Dir)
	}
}

func TestFinalize_Failure(t *testing.T) {
	mock := runtime.NewMockExecutor().QueueExit(9, "")
	f := &Finalizer{Exec: mock}

	err := f.Finalize(context.Background(), options.Options{ProjectName: "demo"}, runtime.SelectPackageManager(false, ""))
	if !stderrors.Is(err, errors.ErrSubprocessFailed) {
		t.Fatalf("expected SubprocessFailed, got %v", err)
	}
	if errors.GetExitCode(err) != 9 {
		t.Errorf("exit code = %d, want 9", errors.GetExitCode(err))
	}
}
