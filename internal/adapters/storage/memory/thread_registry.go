package memory

import (
	"sync"

	"github.com/tcsatheesh/semker/internal/domain"
)

// ThreadRegistry is an in-memory implementation of domain.ThreadRegistry.
// It is the sole place of truth for conversation threads: at most one
// thread object exists per conversation id at any time.
//
// A bare shared map would make two concurrent messages on the same
// conversation read the same thread snapshot and silently discard one
// write. Lock closes that race: the processor holds the per-conversation
// mutex for the whole processing cycle, so same-conversation messages are
// serialized while different conversations still run concurrently.
type ThreadRegistry struct {
	mu      sync.Mutex
	threads map[domain.ConversationID]*domain.Thread
	locks   map[domain.ConversationID]*sync.Mutex
}

func NewThreadRegistry() *ThreadRegistry {
	return &ThreadRegistry{
		threads: make(map[domain.ConversationID]*domain.Thread),
		locks:   make(map[domain.ConversationID]*sync.Mutex),
	}
}

// GetOrCreate returns the existing thread for a conversation, or a fresh
// empty one. A nil stored value also yields a fresh thread, so corrupt
// state never propagates into an agent call.
func (r *ThreadRegistry) GetOrCreate(id domain.ConversationID) *domain.Thread {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.threads[id]; ok && t != nil {
		return t
	}

	t := &domain.Thread{}
	r.threads[id] = t
	return t
}

// Put stores the thread unconditionally; last writer wins.
func (r *ThreadRegistry) Put(id domain.ConversationID, thread *domain.Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.threads[id] = thread
}

// Lock acquires the per-conversation mutex and returns its release func.
func (r *ThreadRegistry) Lock(id domain.ConversationID) func() {
	r.mu.Lock()
	m, ok := r.locks[id]
	if !ok {
		m = &sync.Mutex{}
		r.locks[id] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Len returns the number of conversations with a stored thread.
func (r *ThreadRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.threads)
}
