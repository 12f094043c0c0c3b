package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tcsatheesh/semker/internal/domain"
)

// MessageStore is an in-memory implementation of domain.MessageStore.
// It is NOT persistent: messages live only for the process lifetime.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[domain.MessageID]*domain.Message
	order    []domain.MessageID
	now      func() time.Time
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[domain.MessageID]*domain.Message),
		now:      time.Now,
	}
}

// Submit records a new message as received and returns it. The id is a
// fresh random UUID, so it cannot collide within the process lifetime.
// This call never waits on agent processing.
func (s *MessageStore) Submit(content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &domain.Message{
		ID:          domain.MessageID(uuid.NewString()),
		Content:     content,
		Status:      domain.StatusReceived,
		SubmittedAt: s.now(),
	}

	s.messages[msg.ID] = msg
	s.order = append(s.order, msg.ID)

	// Return a copy: the caller may read it while processing mutates
	// the stored record.
	copy := *msg
	return &copy, nil
}

// MarkInProgress moves a message from received to inprogress.
func (s *MessageStore) MarkInProgress(id domain.MessageID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	if !msg.Status.CanTransitionTo(domain.StatusInProgress) {
		return fmt.Errorf("message %s: %s -> %s: %w",
			id, msg.Status, domain.StatusInProgress, domain.ErrInvalidTransition)
	}

	msg.Status = domain.StatusInProgress
	return nil
}

// MarkTerminal moves an inprogress message to completed or failed and
// stamps the processing time. Terminal states cannot be left again.
func (s *MessageStore) MarkTerminal(id domain.MessageID, status domain.MessageStatus, processedAt time.Time) error {
	if !status.Terminal() {
		return fmt.Errorf("status %s is not terminal: %w", status, domain.ErrInvalidTransition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[id]
	if !ok {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	if !msg.Status.CanTransitionTo(status) {
		return fmt.Errorf("message %s: %s -> %s: %w",
			id, msg.Status, status, domain.ErrInvalidTransition)
	}

	msg.Status = status
	t := processedAt
	msg.ProcessedAt = &t
	return nil
}

func (s *MessageStore) Get(id domain.MessageID) (*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	copy := *msg
	return &copy, nil
}

// ListAll returns every message in submission order.
func (s *MessageStore) ListAll() []*domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Message, 0, len(s.order))
	for _, id := range s.order {
		if msg, ok := s.messages[id]; ok {
			copy := *msg
			out = append(out, &copy)
		}
	}
	return out
}
