package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	memory "github.com/tcsatheesh/semker/internal/adapters/storage/memory"
	"github.com/tcsatheesh/semker/internal/domain"
)

func TestListUnknownMessage(t *testing.T) {
	log := memory.NewUpdateLog()

	_, err := log.List("never-submitted")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisteredMessageWithoutUpdates(t *testing.T) {
	log := memory.NewUpdateLog()
	log.Register("msg-1")

	updates, err := log.List("msg-1")
	require.NoError(t, err)
	require.Empty(t, updates)
}

func TestAppendKeepsCallOrder(t *testing.T) {
	log := memory.NewUpdateLog()
	log.Register("msg-1")

	log.Append("msg-1", domain.StatusReceived, "received", "")
	log.Append("msg-1", domain.StatusInProgress, "working", "Billing")
	log.Append("msg-1", domain.StatusCompleted, "done", "Billing")

	updates, err := log.List("msg-1")
	require.NoError(t, err)
	require.Len(t, updates, 3)
	require.Equal(t, "received", updates[0].Result)
	require.Equal(t, "working", updates[1].Result)
	require.Equal(t, "done", updates[2].Result)
	require.Equal(t, "Billing", updates[2].AgentName)

	// timestamps follow append order
	require.False(t, updates[1].Timestamp.Before(updates[0].Timestamp))
	require.False(t, updates[2].Timestamp.Before(updates[1].Timestamp))
}

func TestListIsPrefixStable(t *testing.T) {
	log := memory.NewUpdateLog()
	log.Register("msg-1")
	log.Append("msg-1", domain.StatusReceived, "received", "")

	before, err := log.List("msg-1")
	require.NoError(t, err)

	log.Append("msg-1", domain.StatusInProgress, "working", "Tariff")

	after, err := log.List("msg-1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(after), len(before))
	for i := range before {
		require.Equal(t, before[i], after[i], "earlier elements must not change")
	}
}

func TestListReturnsACopy(t *testing.T) {
	log := memory.NewUpdateLog()
	log.Register("msg-1")
	log.Append("msg-1", domain.StatusReceived, "received", "")

	updates, err := log.List("msg-1")
	require.NoError(t, err)
	updates[0].Result = "mutated"

	fresh, err := log.List("msg-1")
	require.NoError(t, err)
	require.Equal(t, "received", fresh[0].Result)
}
