package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memory "github.com/tcsatheesh/semker/internal/adapters/storage/memory"
	"github.com/tcsatheesh/semker/internal/domain"
)

func TestSubmitGeneratesUniqueIDs(t *testing.T) {
	store := memory.NewMessageStore()

	seen := make(map[domain.MessageID]bool)
	for i := 0; i < 100; i++ {
		msg, err := store.Submit("hello")
		require.NoError(t, err)
		require.NotEmpty(t, msg.ID)
		require.False(t, seen[msg.ID], "duplicate message id %s", msg.ID)
		seen[msg.ID] = true
		require.Equal(t, domain.StatusReceived, msg.Status)
		require.False(t, msg.SubmittedAt.IsZero())
	}
}

func TestStatusLifecycle(t *testing.T) {
	store := memory.NewMessageStore()

	msg, err := store.Submit("What is my bill?")
	require.NoError(t, err)

	// received -> completed skips inprogress and must be rejected
	err = store.MarkTerminal(msg.ID, domain.StatusCompleted, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, store.MarkInProgress(msg.ID))

	got, err := store.Get(msg.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, got.Status)

	// inprogress -> inprogress is not a transition
	err = store.MarkInProgress(msg.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	processedAt := time.Now()
	require.NoError(t, store.MarkTerminal(msg.ID, domain.StatusCompleted, processedAt))

	got, err = store.Get(msg.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)
	require.NotNil(t, got.ProcessedAt)

	// no transitions out of a terminal state
	err = store.MarkTerminal(msg.ID, domain.StatusFailed, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	err = store.MarkInProgress(msg.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMarkTerminalRejectsNonTerminalStatus(t *testing.T) {
	store := memory.NewMessageStore()

	msg, err := store.Submit("hi")
	require.NoError(t, err)
	require.NoError(t, store.MarkInProgress(msg.ID))

	err = store.MarkTerminal(msg.ID, domain.StatusInProgress, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUnknownMessageID(t *testing.T) {
	store := memory.NewMessageStore()

	_, err := store.Get("nonexistent")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = store.MarkInProgress("nonexistent")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = store.MarkTerminal("nonexistent", domain.StatusFailed, time.Now())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAllKeepsSubmissionOrder(t *testing.T) {
	store := memory.NewMessageStore()

	first, err := store.Submit("first")
	require.NoError(t, err)
	second, err := store.Submit("second")
	require.NoError(t, err)

	all := store.ListAll()
	require.Len(t, all, 2)
	require.Equal(t, first.ID, all[0].ID)
	require.Equal(t, second.ID, all[1].ID)
}
