package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRouter_DeliverToOpenInbox(t *testing.T) {
	r := newRouter()
	inbox, err := r.open("u1")
	require.NoError(t, err)

	r.deliver("u1", "hello")
	select {
	case got := <-inbox:
		require.Equal(t, "hello", got)
	default:
		t.Fatal("message was not delivered")
	}
}

func TestRouter_SecondOpenRejected(t *testing.T) {
	r := newRouter()
	_, err := r.open("u1")
	require.NoError(t, err)

	_, err = r.open("u1")
	require.Error(t, err)

	// closing frees the slot
	r.close("u1")
	_, err = r.open("u1")
	require.NoError(t, err)
}

func TestRouter_DeliverWithoutInboxIsNoop(t *testing.T) {
	r := newRouter()
	require.NotPanics(t, func() { r.deliver("nobody", "hi") })
}

func TestRouter_DeliverDropsWhenFull(t *testing.T) {
	r := newRouter()
	inbox, err := r.open("u1")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		r.deliver("u1", "spam")
	}
	require.Equal(t, cap(inbox), len(inbox))
}

func TestDMMessenger_AwaitHonorsContext(t *testing.T) {
	inbox := make(chan string)
	m := &dmMessenger{inbox: inbox}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDMMessenger_AwaitReceives(t *testing.T) {
	inbox := make(chan string, 1)
	inbox <- "reply"
	m := &dmMessenger{inbox: inbox}

	got, err := m.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, "reply", got)
}
