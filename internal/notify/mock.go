package notify

import (
	"context"
	"sync"
)

// MockCall records one delivery handed to the mock notifier.
type MockCall struct {
	Subject string
	Body    string
}

// MockNotifier records deliveries instead of performing them. It is used by
// tests and can be selected via config for local runs without credentials.
type MockNotifier struct {
	mu    sync.Mutex
	calls []MockCall
	err   error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) Name() string {
	return "mock"
}

// Fail makes every subsequent Send return err. Pass nil to restore success.
func (n *MockNotifier) Fail(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = err
}

func (n *MockNotifier) Send(ctx context.Context, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, MockCall{Subject: subject, Body: body})
	return n.err
}

// Calls returns a copy of every recorded delivery.
func (n *MockNotifier) Calls() []MockCall {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]MockCall, len(n.calls))
	copy(out, n.calls)
	return out
}

// Compile-time interface check
var _ Notifier = (*MockNotifier)(nil)
