// Package station implements the recipe-driven crafting station: unbounded
// input slots, catalog-order recipe matching, and atomic ingredient
// consumption with output deposit.
package station

import (
	"craftbench/internal/sim/catalogs"
	"craftbench/internal/sim/events"
	"craftbench/internal/sim/inventory"
	"craftbench/internal/sim/notify"
)

// Sink is the crafting output destination.
type Sink interface {
	Add(item string, amount int) int
	HasSpaceFor(item string, amount int) bool
}

// Source supplies ingredient withdrawal for auto-fill. Add takes back any
// withdrawn remainder that could not be staged.
type Source interface {
	Remove(item string, amount int) int
	Add(item string, amount int) int
}

type Config struct {
	// Slots is the input slot count; clamped to at least 1.
	Slots int
	// StrictMatch rejects a recipe when the inputs hold an item type that
	// is not one of its ingredients.
	StrictMatch bool
	// RestrictToKnown limits CanAccept to items that appear as an
	// ingredient of at least one recipe of this station.
	RestrictToKnown bool
	// Sink receives crafted output and returned inputs. Optional; without
	// one, crafting skips the capacity pre-check and output is dropped.
	Sink Sink
	// Events receives the economy event stream. Optional.
	Events events.Sink
}

// Station owns a fixed-size ordered sequence of input slots plus two derived
// fields, the current recipe match and the repeatable craft count, which are
// recomputed after every mutation. Input slots deliberately have no stack
// ceiling; a station can stage more than one inventory stack's worth.
type Station struct {
	id      string
	recipes []catalogs.RecipeDef
	cfg     Config

	slots     []inventory.Slot
	matchIdx  int
	maxCrafts int
	hub       notify.Hub
}

// New builds a station over the given recipe list (catalog order is match
// priority) and computes the initial match state.
func New(id string, recipes []catalogs.RecipeDef, cfg Config) *Station {
	if cfg.Slots < 1 {
		cfg.Slots = 1
	}
	st := &Station{
		id:       id,
		recipes:  recipes,
		cfg:      cfg,
		slots:    make([]inventory.Slot, cfg.Slots),
		matchIdx: -1,
	}
	st.Recalculate()
	return st
}

// Subscribe registers a change handler. Recalculation publishes
// unconditionally, including no-op recomputation, so observers can
// resynchronize. Returns a cancel func.
func (st *Station) Subscribe(fn func()) func() {
	return st.hub.Subscribe(fn)
}

func (st *Station) ID() string { return st.id }

// Inputs returns a copy of the input slots in index order.
func (st *Station) Inputs() []inventory.Slot {
	out := make([]inventory.Slot, len(st.slots))
	copy(out, st.slots)
	return out
}

func (st *Station) CurrentRecipe() (catalogs.RecipeDef, bool) {
	if st.matchIdx < 0 {
		return catalogs.RecipeDef{}, false
	}
	return st.recipes[st.matchIdx], true
}

func (st *Station) MaxCraftsAvailable() int { return st.maxCrafts }

// OutputItem returns the matched recipe's result item, or "" without a match.
func (st *Station) OutputItem() string {
	if st.matchIdx < 0 {
		return ""
	}
	return st.recipes[st.matchIdx].Result
}

// OutputPerCraft returns the matched recipe's result amount per batch.
func (st *Station) OutputPerCraft() int {
	if st.matchIdx < 0 {
		return 0
	}
	return st.recipes[st.matchIdx].ResultAmount
}

const (
	StatusNoRecipe   = "NO_RECIPE"
	StatusNoResource = "NO_RESOURCE"
	StatusReady      = "READY"
)

// Status summarizes the derived state for UI hints.
func (st *Station) Status() string {
	if st.matchIdx < 0 {
		return StatusNoRecipe
	}
	if st.maxCrafts <= 0 {
		return StatusNoResource
	}
	return StatusReady
}

// CanAccept reports whether the station's slots may take item at all.
func (st *Station) CanAccept(item string) bool {
	if item == "" {
		return false
	}
	if !st.cfg.RestrictToKnown {
		return true
	}
	for _, r := range st.recipes {
		for _, ing := range r.Ingredients {
			if ing.Item == item {
				return true
			}
		}
	}
	return false
}

// AddToSlot stages amount of item into slot index. The slot must be empty or
// already hold the same item. Returns the amount staged.
func (st *Station) AddToSlot(index int, item string, amount int) int {
	if !st.inRange(index) || item == "" || amount <= 0 {
		st.emit(events.EvSlotAdd, events.Event{"code": events.ErrBadRequest, "slot": index, "item": item})
		return 0
	}
	if !st.CanAccept(item) {
		st.emit(events.EvSlotAdd, events.Event{"code": events.ErrNotAccepted, "slot": index, "item": item})
		return 0
	}
	added := st.slots[index].Stack(item, amount)
	if added == 0 {
		st.emit(events.EvSlotAdd, events.Event{"code": events.ErrConflict, "slot": index, "item": item})
		return 0
	}
	st.emit(events.EvSlotAdd, events.Event{"slot": index, "item": item, "amount": added})
	st.Recalculate()
	return added
}

// RemoveFromSlot takes up to amount out of slot index and returns the amount
// actually removed.
func (st *Station) RemoveFromSlot(index int, amount int) int {
	if !st.inRange(index) || amount <= 0 {
		return 0
	}
	s := &st.slots[index]
	if s.IsEmpty() {
		return 0
	}
	item := s.Item
	removed := s.Remove(amount)
	st.emit(events.EvSlotRemove, events.Event{"slot": index, "item": item, "amount": removed})
	st.Recalculate()
	return removed
}

// ReplaceSlot stages item into slot index, first returning an occupying
// stack of a different item to the sink. The swap is loss-free: when the
// sink cannot take the whole occupying stack, nothing moves. Returns the
// amount staged and the amount handed back to the sink.
func (st *Station) ReplaceSlot(index int, item string, amount int) (placed, returned int) {
	if !st.inRange(index) || item == "" || amount <= 0 {
		return 0, 0
	}
	if !st.CanAccept(item) {
		return 0, 0
	}
	s := &st.slots[index]
	if !s.IsEmpty() && s.Item != item {
		if st.cfg.Sink == nil || !st.cfg.Sink.HasSpaceFor(s.Item, s.Quantity) {
			st.emit(events.EvSlotReplace, events.Event{"code": events.ErrNoSpace, "slot": index, "item": s.Item})
			return 0, 0
		}
		returned = st.cfg.Sink.Add(s.Item, s.Quantity)
		s.Remove(returned)
	}
	placed = s.Stack(item, amount)
	if placed > 0 || returned > 0 {
		st.emit(events.EvSlotReplace, events.Event{"slot": index, "item": item, "amount": placed, "returned": returned})
		st.Recalculate()
	}
	return placed, returned
}

// TryCraft crafts up to n batches of the current match. The requested count
// is clamped to [1, MaxCraftsAvailable]. Without a match, or when the sink
// lacks capacity for the total output, nothing is consumed and 0 is
// returned. Returns the number of batches crafted.
func (st *Station) TryCraft(n int) int {
	if st.matchIdx < 0 {
		st.emit(events.EvCraftFail, events.Event{"code": events.ErrInvalidTarget})
		return 0
	}
	r := st.recipes[st.matchIdx]
	if n < 1 {
		n = 1
	}
	if n > st.maxCrafts {
		n = st.maxCrafts
	}
	if n <= 0 {
		st.emit(events.EvCraftFail, events.Event{"code": events.ErrNoResource, "recipe": r.RecipeID})
		return 0
	}

	totalOut := r.ResultAmount * n
	if st.cfg.Sink != nil && !st.cfg.Sink.HasSpaceFor(r.Result, totalOut) {
		st.emit(events.EvCraftFail, events.Event{"code": events.ErrNoSpace, "recipe": r.RecipeID, "amount": totalOut})
		return 0
	}

	for _, ing := range r.Ingredients {
		need := ing.Amount * n
		for i := range st.slots {
			if need <= 0 {
				break
			}
			if !st.slots[i].IsEmpty() && st.slots[i].Item == ing.Item {
				need -= st.slots[i].Remove(need)
			}
		}
	}

	if st.cfg.Sink != nil {
		st.cfg.Sink.Add(r.Result, totalOut)
	}

	st.emit(events.EvCraft, events.Event{"recipe": r.RecipeID, "batches": n, "result": r.Result, "amount": totalOut})
	st.Recalculate()
	return n
}

// TryCraftAll crafts as many batches as the current inputs allow.
func (st *Station) TryCraftAll() int { return st.TryCraft(st.maxCrafts) }

// ReturnInputsToInventory hands every non-empty input slot back to the sink,
// removing from each slot exactly what the sink accepted. Returns the total
// units returned.
func (st *Station) ReturnInputsToInventory() int {
	if st.cfg.Sink == nil {
		return 0
	}
	total := 0
	for i := range st.slots {
		if st.slots[i].IsEmpty() {
			continue
		}
		added := st.cfg.Sink.Add(st.slots[i].Item, st.slots[i].Quantity)
		if added > 0 {
			st.slots[i].Remove(added)
			total += added
		}
	}
	if total > 0 {
		st.emit(events.EvInputsReturn, events.Event{"units": total})
	}
	st.Recalculate()
	return total
}

// AutoFillFromInventory withdraws each ingredient's shortfall for crafts
// batches of recipe from src and stages it, same-item slots first, then
// empty slots. Withdrawn units with no compatible slot are handed back to
// src. Partial fulfillment is accepted silently. Returns total units staged.
func (st *Station) AutoFillFromInventory(src Source, recipe catalogs.RecipeDef, crafts int) int {
	if src == nil || crafts < 1 {
		return 0
	}
	moved := 0
	for _, ing := range recipe.Ingredients {
		if !st.CanAccept(ing.Item) {
			continue
		}
		staged := 0
		for i := range st.slots {
			if !st.slots[i].IsEmpty() && st.slots[i].Item == ing.Item {
				staged += st.slots[i].Quantity
			}
		}
		short := ing.Amount*crafts - staged
		if short <= 0 {
			continue
		}
		got := src.Remove(ing.Item, short)
		if got <= 0 {
			continue
		}
		rem := got
		for i := range st.slots {
			if rem <= 0 {
				break
			}
			if !st.slots[i].IsEmpty() && st.slots[i].Item == ing.Item {
				rem -= st.slots[i].Stack(ing.Item, rem)
			}
		}
		for i := range st.slots {
			if rem <= 0 {
				break
			}
			if st.slots[i].IsEmpty() {
				rem -= st.slots[i].Stack(ing.Item, rem)
			}
		}
		if rem > 0 {
			src.Add(ing.Item, rem)
		}
		moved += got - rem
	}
	if moved > 0 {
		st.emit(events.EvAutoFill, events.Event{"recipe": recipe.RecipeID, "units": moved})
		st.Recalculate()
	}
	return moved
}

// Recalculate rebuilds the derived match state from the input slots and
// publishes a change notification unconditionally. Calling it twice without
// an intervening mutation yields the same result.
func (st *Station) Recalculate() {
	st.matchIdx = -1
	st.maxCrafts = 0

	counts := map[string]int{}
	for i := range st.slots {
		if st.slots[i].IsEmpty() {
			continue
		}
		counts[st.slots[i].Item] += st.slots[i].Quantity
	}

	if len(st.recipes) == 0 || len(counts) == 0 {
		st.hub.Publish()
		return
	}

	for ri, r := range st.recipes {
		if r.Result == "" || len(r.Ingredients) == 0 {
			continue
		}
		if st.cfg.StrictMatch && !coversAll(r, counts) {
			continue
		}
		crafts := batchesFor(r, counts)
		if crafts > 0 {
			st.matchIdx = ri
			st.maxCrafts = crafts
			break
		}
	}

	st.hub.Publish()
}

// coversAll reports whether every staged item type appears among the
// recipe's ingredients.
func coversAll(r catalogs.RecipeDef, counts map[string]int) bool {
	for item := range counts {
		present := false
		for _, ing := range r.Ingredients {
			if ing.Item == item {
				present = true
				break
			}
		}
		if !present {
			return false
		}
	}
	return true
}

// batchesFor returns the repeatable craft count: the minimum over
// ingredients of floor(available/required), 0 on any shortfall.
func batchesFor(r catalogs.RecipeDef, counts map[string]int) int {
	crafts := 0
	for i, ing := range r.Ingredients {
		have := counts[ing.Item]
		if have < ing.Amount {
			return 0
		}
		c := have / ing.Amount
		if i == 0 || c < crafts {
			crafts = c
		}
	}
	return crafts
}

func (st *Station) inRange(i int) bool { return i >= 0 && i < len(st.slots) }

func (st *Station) emit(typ string, fields events.Event) {
	if st.cfg.Events == nil {
		return
	}
	ev := events.Event{"station": st.id}
	for k, v := range fields {
		ev[k] = v
	}
	st.cfg.Events.Record(events.Stamp(ev, typ))
}
