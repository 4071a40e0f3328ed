// bus/bus_test.go
package bus

import (
	"testing"
	"time"
)

func recvOne(t *testing.T, sub *Subscription) *Message {
	t.Helper()
	select {
	case got := <-sub.Channel():
		return got
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
		return nil
	}
}

func expectNone(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		t.Fatalf("unexpected message: %v", got.Payload)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("power", "wakeup"))
	conn.Publish(&Message{Topic: T("power", "wakeup"), Payload: "hello"})

	if got := recvOne(t, sub); got.Payload.(string) != "hello" {
		t.Errorf("expected payload 'hello', got %v", got.Payload)
	}
}

func TestExactTopicMatchOnly(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("power", "wakeup"))
	conn.Publish(&Message{Topic: T("power"), Payload: "short"})
	conn.Publish(&Message{Topic: T("power", "wakeup", "extra"), Payload: "long"})
	expectNone(t, sub)
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(&Message{Topic: T("config", "dutycycle"), Payload: "persist", Retained: true})

	sub := conn.Subscribe(T("config", "dutycycle"))
	if got := recvOne(t, sub); got.Payload.(string) != "persist" {
		t.Errorf("expected retained payload 'persist', got %v", got.Payload)
	}
}

func TestRetainedClearedByNilPayload(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(&Message{Topic: T("config", "dutycycle"), Payload: "old", Retained: true})
	conn.Publish(&Message{Topic: T("config", "dutycycle"), Payload: nil, Retained: true})

	sub := conn.Subscribe(T("config", "dutycycle"))
	expectNone(t, sub)
}

func TestFullQueueDropsOldest(t *testing.T) {
	b := NewBus(1)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("power", "wakeup"))
	conn.Publish(&Message{Topic: T("power", "wakeup"), Payload: 1})
	conn.Publish(&Message{Topic: T("power", "wakeup"), Payload: 2})

	if got := recvOne(t, sub); got.Payload.(int) != 2 {
		t.Errorf("expected newest payload 2, got %v", got.Payload)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("power", "wakeup"))
	sub.Unsubscribe()
	// Channel is closed; a closed receive yields nil immediately.
	if got, ok := <-sub.Channel(); ok {
		t.Fatalf("expected closed channel, got %v", got)
	}
	// Publishing after prune must not panic or deliver.
	conn.Publish(&Message{Topic: T("power", "wakeup"), Payload: "late"})
}

func TestDisconnectClosesAll(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	s1 := conn.Subscribe(T("a"))
	s2 := conn.Subscribe(T("b"))
	conn.Disconnect()

	if _, ok := <-s1.Channel(); ok {
		t.Error("s1 still open after disconnect")
	}
	if _, ok := <-s2.Channel(); ok {
		t.Error("s2 still open after disconnect")
	}
}
