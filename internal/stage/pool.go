package stage

// Pool is a dense, ordered collection of transient objects.
// Removal happens in a single forward Sweep that compacts in place.
type Pool[T any] struct {
	items []T
}

// Add appends an item and returns a pointer to it. The pointer is valid
// until the next Add or Sweep.
func (p *Pool[T]) Add(item T) *T {
	p.items = append(p.items, item)
	return &p.items[len(p.items)-1]
}

// Sweep calls keep for every item in order and drops those for which it
// returns false. Items added while sweeping are visited in the same pass.
// keep must not hold on to its argument.
func (p *Pool[T]) Sweep(keep func(*T) bool) {
	n := 0
	for i := 0; i < len(p.items); i++ {
		if !keep(&p.items[i]) {
			continue
		}
		if n != i {
			p.items[n] = p.items[i]
		}
		n++
	}
	clear(p.items[n:])
	p.items = p.items[:n]
}

// Each calls fn for every item in order.
func (p *Pool[T]) Each(fn func(*T)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// Last returns the most recently added live item, or nil when empty.
func (p *Pool[T]) Last() *T {
	if len(p.items) == 0 {
		return nil
	}
	return &p.items[len(p.items)-1]
}

// Len returns the number of live items.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Clear drops every item.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
