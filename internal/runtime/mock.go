package runtime

import (
	"context"
	"sync"
)

// MockResult is a canned response for one MockExecutor call.
type MockResult struct {
	Output *Output
	Err    error
}

// MockExecutor implements Executor for testing. It records every command and
// answers from a queue of results in call order; once the queue is empty it
// reports a successful exit.
type MockExecutor struct {
	mu      sync.Mutex
	calls   []Command
	results []MockResult

	// Handler, when set, answers every call instead of the queue.
	Handler func(Command) (*Output, error)
}

// NewMockExecutor creates a MockExecutor with an empty queue.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// Queue appends a result for the next unanswered call.
func (m *MockExecutor) Queue(out *Output, err error) *MockExecutor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, MockResult{Output: out, Err: err})
	return m
}

// QueueExit appends a result with the given exit code and stdout.
func (m *MockExecutor) QueueExit(code int, stdout string) *MockExecutor {
	return m.Queue(&Output{ExitCode: code, Stdout: stdout}, nil)
}

func (m *MockExecutor) Execute(_ context.Context, cmd Command) (*Output, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cmd)
	handler := m.Handler
	var next *MockResult
	if handler == nil && len(m.results) > 0 {
		next = &m.results[0]
		m.results = m.results[1:]
	}
	m.mu.Unlock()

	if handler != nil {
		return handler(cmd)
	}
	if next != nil {
		if next.Output == nil && next.Err == nil {
			return &Output{}, nil
		}
		return next.Output, next.Err
	}
	return &Output{}, nil
}

// Calls returns a copy of the recorded commands.
func (m *MockExecutor) Calls() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Command(nil), m.calls...)
}

// CallCount returns the number of recorded commands.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
