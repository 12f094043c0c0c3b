package memory_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memory "github.com/tcsatheesh/semker/internal/adapters/storage/memory"
	"github.com/tcsatheesh/semker/internal/domain"
)

func TestGetOrCreateReturnsSameThread(t *testing.T) {
	reg := memory.NewThreadRegistry()

	first := reg.GetOrCreate("conv-1")
	require.NotNil(t, first)

	first.Append(domain.RoleUser, "hello")

	second := reg.GetOrCreate("conv-1")
	require.Equal(t, 1, second.Len(), "same conversation must see the same thread")
	require.Equal(t, 1, reg.Len())
}

func TestPutOverwrites(t *testing.T) {
	reg := memory.NewThreadRegistry()

	old := reg.GetOrCreate("conv-1")
	old.Append(domain.RoleUser, "old")

	replacement := &domain.Thread{}
	replacement.Append(domain.RoleUser, "new")
	reg.Put("conv-1", replacement)

	got := reg.GetOrCreate("conv-1")
	require.Equal(t, 1, got.Len())
	require.Equal(t, "new", got.Turns[0].Text)
	require.Equal(t, 1, reg.Len(), "one thread per conversation")
}

func TestPutNilFallsBackToFreshThread(t *testing.T) {
	reg := memory.NewThreadRegistry()
	reg.Put("conv-1", nil)

	got := reg.GetOrCreate("conv-1")
	require.NotNil(t, got)
	require.Equal(t, 0, got.Len())
}

func TestLockSerializesSameConversation(t *testing.T) {
	reg := memory.NewThreadRegistry()

	var mu sync.Mutex
	var order []int

	release := reg.Lock("conv-1")

	done := make(chan struct{})
	go func() {
		r := reg.Lock("conv-1")
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		r()
		close(done)
	}()

	// The goroutine must block until this holder releases.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	release()

	<-done
	require.Equal(t, []int{1, 2}, order)
}

func TestLockDifferentConversationsDoNotBlock(t *testing.T) {
	reg := memory.NewThreadRegistry()

	release1 := reg.Lock("conv-1")
	defer release1()

	acquired := make(chan struct{})
	go func() {
		release2 := reg.Lock("conv-2")
		release2()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on a different conversation must not block")
	}
}
