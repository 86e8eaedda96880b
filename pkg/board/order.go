package board

// MoveBy shifts the element delta positions in the z-order, clamped to the
// ends of the sequence. It reports whether the order changed.
func (b *Board) MoveBy(id string, delta int) bool {
	from := b.index(id)
	if from < 0 {
		return false
	}
	to := min(max(from+delta, 0), len(b.elements)-1)
	if to == from {
		return false
	}
	b.move(from, to)
	return true
}

// MoveToFront puts the element on top of the z-order.
func (b *Board) MoveToFront(id string) bool {
	from := b.index(id)
	if from < 0 || from == len(b.elements)-1 {
		return false
	}
	b.move(from, len(b.elements)-1)
	return true
}

// MoveToBack puts the element at the bottom of the z-order.
func (b *Board) MoveToBack(id string) bool {
	from := b.index(id)
	if from <= 0 {
		return false
	}
	b.move(from, 0)
	return true
}

func (b *Board) move(from, to int) {
	e := b.elements[from]
	if from < to {
		copy(b.elements[from:to], b.elements[from+1:to+1])
	} else {
		copy(b.elements[to+1:from+1], b.elements[to:from])
	}
	b.elements[to] = e
}
