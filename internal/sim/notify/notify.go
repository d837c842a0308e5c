// Package notify implements the synchronous change-notification hub used by
// inventories and crafting stations.
package notify

// Hub delivers parameterless change notifications to subscribers in
// subscription order. Delivery is synchronous and in-process; a handler must
// not re-enter a mutating call on the publishing container.
type Hub struct {
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a cancel func. Cancelling twice is a
// no-op.
func (h *Hub) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, fn: fn})
	return func() {
		for i := range h.subs {
			if h.subs[i].id != id {
				continue
			}
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every subscriber once.
func (h *Hub) Publish() {
	for _, s := range h.subs {
		s.fn()
	}
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int { return len(h.subs) }
