// Package inventory implements the slot-based item inventory: an ordered,
// fixed-size sequence of slots with first-fit stacking against the item
// catalog's per-item stack caps.
package inventory

import (
	"craftbench/internal/sim/catalogs"
	"craftbench/internal/sim/notify"
)

// Inventory owns a fixed-size ordered sequence of slots. Slots are mutated
// only through Inventory methods. All mutating methods return the quantity
// actually moved; 0 means the call had no effect.
type Inventory struct {
	items *catalogs.ItemCatalog
	slots []Slot
	hub   notify.Hub
}

func New(items *catalogs.ItemCatalog, size int) *Inventory {
	if size < 1 {
		size = 1
	}
	return &Inventory{
		items: items,
		slots: make([]Slot, size),
	}
}

// Subscribe registers a change handler fired once per mutating call that
// moved at least one unit. Returns a cancel func.
func (inv *Inventory) Subscribe(fn func()) func() {
	return inv.hub.Subscribe(fn)
}

func (inv *Inventory) Size() int { return len(inv.slots) }

// Slots returns a copy of the slot sequence in index order.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Add places amount of item using two first-fit passes: top up slots already
// holding the item, then fill empty slots. Returns the amount actually
// placed; any remainder is dropped, so callers wanting no loss must check
// HasSpaceFor first.
func (inv *Inventory) Add(item string, amount int) int {
	def, ok := inv.items.Defs[item]
	if !ok || amount <= 0 {
		return 0
	}
	remaining := amount

	for i := range inv.slots {
		if remaining <= 0 {
			break
		}
		if inv.slots[i].CanStack(item, def.MaxStack) {
			remaining -= inv.slots[i].Add(item, remaining, def.MaxStack)
		}
	}
	for i := range inv.slots {
		if remaining <= 0 {
			break
		}
		if inv.slots[i].IsEmpty() {
			remaining -= inv.slots[i].Add(item, remaining, def.MaxStack)
		}
	}

	added := amount - remaining
	if added > 0 {
		inv.hub.Publish()
	}
	return added
}

// Remove takes up to amount of item, scanning slots in index order, and
// returns the amount actually removed.
func (inv *Inventory) Remove(item string, amount int) int {
	if item == "" || amount <= 0 {
		return 0
	}
	remaining := amount

	for i := range inv.slots {
		if remaining <= 0 {
			break
		}
		if !inv.slots[i].IsEmpty() && inv.slots[i].Item == item {
			remaining -= inv.slots[i].Remove(remaining)
		}
	}

	removed := amount - remaining
	if removed > 0 {
		inv.hub.Publish()
	}
	return removed
}

// Count returns the total quantity of item across all slots.
func (inv *Inventory) Count(item string) int {
	if item == "" {
		return 0
	}
	total := 0
	for i := range inv.slots {
		if !inv.slots[i].IsEmpty() && inv.slots[i].Item == item {
			total += inv.slots[i].Quantity
		}
	}
	return total
}

// Totals returns the per-item aggregate over all non-empty slots.
func (inv *Inventory) Totals() map[string]int {
	out := map[string]int{}
	for i := range inv.slots {
		if inv.slots[i].IsEmpty() {
			continue
		}
		out[inv.slots[i].Item] += inv.slots[i].Quantity
	}
	return out
}

// HasSpaceFor reports whether a subsequent Add of amount would place it in
// full. The estimate follows Add's first-fit policy: empty slots contribute
// a full stack, same-item slots their remaining headroom.
func (inv *Inventory) HasSpaceFor(item string, amount int) bool {
	def, ok := inv.items.Defs[item]
	if !ok || amount <= 0 {
		return false
	}
	free := 0
	for i := range inv.slots {
		s := &inv.slots[i]
		if s.IsEmpty() {
			free += def.MaxStack
		} else if s.Item == item {
			free += def.MaxStack - s.Quantity
		}
		if free >= amount {
			return true
		}
	}
	return false
}
