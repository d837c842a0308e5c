package inventory

// Slot holds at most one item type and its quantity. A zero Slot is empty.
type Slot struct {
	Item     string
	Quantity int
}

func (s *Slot) IsEmpty() bool { return s.Item == "" || s.Quantity <= 0 }

func (s *Slot) IsFull(maxStack int) bool {
	return s.Item != "" && s.Quantity >= maxStack
}

func (s *Slot) Clear() {
	s.Item = ""
	s.Quantity = 0
}

func (s *Slot) setQuantity(q int) {
	s.Quantity = q
	if s.Quantity <= 0 {
		s.Clear()
	}
}

// CanStack reports whether amount of item can merge into this slot under the
// given cap.
func (s *Slot) CanStack(item string, maxStack int) bool {
	return !s.IsEmpty() && s.Item == item && !s.IsFull(maxStack)
}

// Add places up to amount of item into the slot, capped at maxStack, and
// returns the amount actually placed. A slot occupied by a different item
// accepts nothing.
func (s *Slot) Add(item string, amount, maxStack int) int {
	if item == "" || amount <= 0 || maxStack < 1 {
		return 0
	}
	if s.IsEmpty() {
		toAdd := amount
		if toAdd > maxStack {
			toAdd = maxStack
		}
		s.Item = item
		s.Quantity = toAdd
		return toAdd
	}
	if s.Item != item || s.IsFull(maxStack) {
		return 0
	}
	added := maxStack - s.Quantity
	if added > amount {
		added = amount
	}
	s.Quantity += added
	return added
}

// Stack is the uncapped variant of Add used by crafting-station input slots:
// same empty/same-item/different-item branching, no stack ceiling.
func (s *Slot) Stack(item string, amount int) int {
	if item == "" || amount <= 0 {
		return 0
	}
	if s.IsEmpty() {
		s.Item = item
		s.Quantity = amount
		return amount
	}
	if s.Item != item {
		return 0
	}
	s.Quantity += amount
	return amount
}

// Remove takes up to amount out of the slot and returns the amount actually
// removed, clearing the slot when it reaches zero.
func (s *Slot) Remove(amount int) int {
	if s.IsEmpty() || amount <= 0 {
		return 0
	}
	removed := amount
	if removed > s.Quantity {
		removed = s.Quantity
	}
	s.setQuantity(s.Quantity - removed)
	return removed
}
