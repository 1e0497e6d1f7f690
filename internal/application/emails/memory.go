package emails

import (
	"context"
	"errors"
	"sync"
)

// MemorySender records messages instead of sending them. Used in tests across packages.
type MemorySender struct {
	mu   sync.Mutex
	Sent []Message
	Fail bool
}

func (m *MemorySender) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return errors.New("simulated send failure")
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (m *MemorySender) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.Sent))
	copy(out, m.Sent)
	return out
}
