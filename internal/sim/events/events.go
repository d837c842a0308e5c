// Package events defines the economy event records written to the event log
// and the failure codes attached to them.
package events

import "time"

type Event map[string]any

// Sink receives economy events. Implementations must tolerate being called
// from synchronous mutation paths; Record must not call back into the
// emitting container.
type Sink interface {
	Record(ev Event)
}

// Stamp sets the shared envelope fields on an event and returns it.
func Stamp(ev Event, typ string) Event {
	ev["type"] = typ
	ev["at"] = time.Now().UTC().Format(time.RFC3339Nano)
	return ev
}

const (
	EvCraft         = "CRAFT"
	EvCraftFail     = "CRAFT_FAIL"
	EvSlotAdd       = "SLOT_ADD"
	EvSlotRemove    = "SLOT_REMOVE"
	EvSlotReplace   = "SLOT_REPLACE"
	EvInputsReturn  = "INPUTS_RETURN"
	EvAutoFill      = "AUTO_FILL"
	EvTransferBegin = "TRANSFER_BEGIN"
	EvTransferEnd   = "TRANSFER_END"
)
