package runtime

import (
	"context"
	"errors"
	"testing"
)

func TestMockExecutor_QueueOrder(t *testing.T) {
	m := NewMockExecutor().QueueExit(0, "6.0.0\n").QueueExit(1, "")

	out, err := m.Execute(context.Background(), Command{Name: "npm", Args: []string{"--version"}})
	if err != nil || out.Stdout != "6.0.0\n" {
		t.Fatalf("first call = %+v, %v", out, err)
	}
	out, err = m.Execute(context.Background(), Command{Name: "npm", Args: []string{"install"}})
	if err != nil || out.ExitCode != 1 {
		t.Fatalf("second call = %+v, %v", out, err)
	}
	out, err = m.Execute(context.Background(), Command{Name: "ng"})
	if err != nil || out.ExitCode != 0 {
		t.Fatalf("exhausted queue should succeed, got %+v, %v", out, err)
	}

	if m.CallCount() != 3 {
		t.Errorf("CallCount() = %d, want 3", m.CallCount())
	}
	if calls := m.Calls(); calls[2].Name != "ng" {
		t.Errorf("Calls()[2] = %+v", calls[2])
	}
}

func TestMockExecutor_Handler(t *testing.T) {
	startErr := errors.New("not found")
	m := NewMockExecutor()
	m.Handler = func(c Command) (*Output, error) {
		if c.Name == "npm" {
			return nil, startErr
		}
		return &Output{ExitCode: 5}, nil
	}

	if _, err := m.Execute(context.Background(), Command{Name: "npm"}); !errors.Is(err, startErr) {
		t.Errorf("expected handler error, got %v", err)
	}
	if out, _ := m.Execute(context.Background(), Command{Name: "yarn"}); out.ExitCode != 5 {
		t.Errorf("ExitCode = %d, want 5", out.ExitCode)
	}
}

func TestMockExecutor_EmptyQueuedResult(t *testing.T) {
	m := NewMockExecutor().Queue(nil, nil)
	out, err := m.Execute(context.Background(), Command{Name: "npm"})
	if err != nil || out == nil || out.ExitCode != 0 {
		t.Errorf("nil queued result should read as success, got %+v, %v", out, err)
	}
}
