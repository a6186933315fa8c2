package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(100 * time.Millisecond):
		require.FailNow(t, "timeout waiting for event")
	}
	return Event[T]{}
}

func TestBroker_FansOut(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx := context.Background()
	a := broker.Subscribe(ctx)
	b := broker.Subscribe(ctx)
	require.Equal(t, 2, broker.SubscriberCount())

	broker.Publish(ChangedEvent, "notes.md")

	for _, ch := range []<-chan Event[string]{a, b} {
		ev := receive(t, ch)
		require.Equal(t, "notes.md", ev.Payload)
		require.Equal(t, ChangedEvent, ev.Type)
		require.False(t, ev.Timestamp.IsZero())
	}
}

func TestBroker_UnsubscribesOnCancel(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 },
		time.Second, 5*time.Millisecond)
	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_DropsWhenFull(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())

	done := make(chan struct{})
	go func() {
		broker.Publish(LoggedEvent, 1)
		broker.Publish(LoggedEvent, 2)
		broker.Publish(LoggedEvent, 3)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		require.FailNow(t, "Publish blocked on a full subscriber")
	}

	require.Equal(t, 1, receive(t, ch).Payload)
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker[string]()
	ctx := context.Background()
	ch := broker.Subscribe(ctx)

	broker.Close()
	broker.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.Equal(t, 0, broker.SubscriberCount())

	late := broker.Subscribe(ctx)
	_, ok = <-late
	require.False(t, ok, "subscribing to a closed broker yields a closed channel")

	broker.Publish(RemovedEvent, "x")
}

func TestListenCmd(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(LoggedEvent, "entry")

	msg := ListenCmd(ctx, ch)()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "entry", ev.Payload)

	closed := make(chan Event[string])
	close(closed)
	require.Nil(t, ListenCmd(ctx, closed)())

	cancel()
	require.Nil(t, ListenCmd(ctx, make(chan Event[string]))())
}

func TestContinuousListener(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewContinuousListener[int](ctx, broker)
	broker.Publish(ChangedEvent, 1)
	broker.Publish(RemovedEvent, 2)

	first := l.Listen()().(Event[int])
	second := l.Listen()().(Event[int])
	require.Equal(t, 1, first.Payload)
	require.Equal(t, RemovedEvent, second.Type)

	var nilListener *ContinuousListener[int]
	require.Nil(t, nilListener.Listen())
}
