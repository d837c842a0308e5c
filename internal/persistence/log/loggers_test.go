package log

import (
	"testing"

	"craftbench/internal/sim/events"
)

func TestEconomyLoggerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewEconomyLogger(dir)

	l.Record(events.Stamp(events.Event{"station": "WORKBENCH", "recipe": "PLANK", "batches": 2}, events.EvCraft))
	l.Record(events.Stamp(events.Event{"station": "WORKBENCH", "code": events.ErrNoSpace}, events.EvCraftFail))
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, err := ReadEvents(dir)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0]["type"] != events.EvCraft || got[0]["recipe"] != "PLANK" {
		t.Fatalf("unexpected first event: %#v", got[0])
	}
	if got[1]["type"] != events.EvCraftFail || got[1]["code"] != events.ErrNoSpace {
		t.Fatalf("unexpected second event: %#v", got[1])
	}
	if got[0]["at"] == "" || got[0]["at"] == nil {
		t.Fatalf("expected timestamp stamped: %#v", got[0])
	}
}

func TestReadEventsEmptyDir(t *testing.T) {
	got, err := ReadEvents(t.TempDir())
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}
