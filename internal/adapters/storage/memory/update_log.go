package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/tcsatheesh/semker/internal/domain"
)

// UpdateLog is an in-memory implementation of domain.UpdateLog: an
// append-only, time-ordered history of processing events per message.
// Growth is unbounded; nothing is ever evicted.
type UpdateLog struct {
	mu      sync.RWMutex
	updates map[domain.MessageID][]domain.Update
	known   map[domain.MessageID]bool
	now     func() time.Time
}

func NewUpdateLog() *UpdateLog {
	return &UpdateLog{
		updates: make(map[domain.MessageID][]domain.Update),
		known:   make(map[domain.MessageID]bool),
		now:     time.Now,
	}
}

// Register marks a message id as submitted, so List can tell "never
// submitted" apart from "submitted but no updates yet".
func (l *UpdateLog) Register(id domain.MessageID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.known[id] = true
}

// Append records one update, stamped with the current time. It always
// succeeds; updates on a single message arrive in call order.
func (l *UpdateLog) Append(id domain.MessageID, status domain.MessageStatus, result, agentName string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.known[id] = true
	l.updates[id] = append(l.updates[id], domain.Update{
		MessageID: id,
		Status:    status,
		Timestamp: l.now(),
		Result:    result,
		AgentName: agentName,
	})
}

// List returns the ordered updates for a message. A message that was never
// submitted yields ErrNotFound; a submitted message with no updates yet
// yields an empty slice.
func (l *UpdateLog) List(id domain.MessageID) ([]domain.Update, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.known[id] {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	stored := l.updates[id]
	out := make([]domain.Update, len(stored))
	copy(out, stored)
	return out, nil
}
