package notify

import "testing"

func TestPublishRunsSubscribersInOrder(t *testing.T) {
	var h Hub
	var got []int
	h.Subscribe(func() { got = append(got, 1) })
	h.Subscribe(func() { got = append(got, 2) })
	h.Publish()
	h.Publish()
	if len(got) != 4 || got[0] != 1 || got[1] != 2 || got[2] != 1 || got[3] != 2 {
		t.Fatalf("unexpected delivery order: %#v", got)
	}
}

func TestCancelRemovesSubscription(t *testing.T) {
	var h Hub
	a, b := 0, 0
	cancel := h.Subscribe(func() { a++ })
	h.Subscribe(func() { b++ })

	h.Publish()
	cancel()
	cancel() // second cancel is a no-op
	h.Publish()

	if a != 1 || b != 2 {
		t.Fatalf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
	if h.Len() != 1 {
		t.Fatalf("expected 1 live subscription, got %d", h.Len())
	}
}

func TestNilSubscriber(t *testing.T) {
	var h Hub
	cancel := h.Subscribe(nil)
	cancel()
	h.Publish()
	if h.Len() != 0 {
		t.Fatalf("expected no subscriptions, got %d", h.Len())
	}
}
