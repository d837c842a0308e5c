// Package transfer implements the single-slot transfer session used by the
// drag layer: one in-flight (item, amount) pair with a deferred source-side
// consumption callback, so the source is decremented by exactly the amount
// the destination accepted.
package transfer

import (
	"github.com/google/uuid"

	"craftbench/internal/sim/events"
)

// Session is a transient holding area for one item transfer. A session is
// created by Begin, handed to the receiving side, and finished exactly once
// via Consume or Cancel.
type Session struct {
	id      string
	item    string
	amount  int
	consume func(used int)
	active  bool
	sink    events.Sink
}

// Option configures session construction.
type Option func(*Session)

// WithEvents attaches an event sink recording session begin/end.
func WithEvents(sink events.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// Begin opens a transfer session for amount of item. The consume callback
// runs on successful Consume with the amount the destination accepted.
// Returns false on invalid arguments.
func Begin(item string, amount int, consume func(used int), opts ...Option) (*Session, bool) {
	if item == "" || amount <= 0 || consume == nil {
		return nil, false
	}
	s := &Session{
		id:      uuid.NewString(),
		item:    item,
		amount:  amount,
		consume: consume,
		active:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.emit(events.EvTransferBegin, events.Event{"item": s.item, "amount": s.amount})
	return s, true
}

func (s *Session) ID() string   { return s.id }
func (s *Session) Active() bool { return s.active }
func (s *Session) Item() string { return s.item }
func (s *Session) Amount() int  { return s.amount }

// Consume reports that the destination accepted used units, invoking the
// deferred source-side removal and ending the session. A finished or
// zero-amount consume is a no-op.
func (s *Session) Consume(used int) {
	if !s.active || used <= 0 {
		return
	}
	if used > s.amount {
		used = s.amount
	}
	cb := s.consume
	s.emit(events.EvTransferEnd, events.Event{"item": s.item, "used": used})
	s.end()
	cb(used)
}

// Cancel ends the session without consuming from the source.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.emit(events.EvTransferEnd, events.Event{"item": s.item, "used": 0})
	s.end()
}

func (s *Session) end() {
	s.active = false
	s.item = ""
	s.amount = 0
	s.consume = nil
}

func (s *Session) emit(typ string, fields events.Event) {
	if s.sink == nil {
		return
	}
	ev := events.Event{"session": s.id}
	for k, v := range fields {
		ev[k] = v
	}
	s.sink.Record(events.Stamp(ev, typ))
}
