package game

// Pool keeps live objects packed at the front of a slice so they can be
// released in O(1) with swap-and-pop. Inactive objects past ActiveCount are
// kept around and reused by Acquire.
//
// Release is only safe inside ForEachReverse for the index being visited:
// the element swapped in from the tail has already been visited, so nothing
// is skipped or seen twice.
type Pool[T any] struct {
	Pool        []*T
	ActiveCount int
}

// NewPool creates a pool with capacity pre-allocated objects.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{Pool: make([]*T, capacity)}
	for i := range p.Pool {
		p.Pool[i] = new(T)
	}
	return p
}

// Acquire returns a zeroed object, growing the pool when all are in use.
func (p *Pool[T]) Acquire() *T {
	if p.ActiveCount == len(p.Pool) {
		p.Pool = append(p.Pool, new(T))
	}
	obj := p.Pool[p.ActiveCount]
	var zero T
	*obj = zero
	p.ActiveCount++
	return obj
}

// Release returns the object at index to the pool using swap-and-pop.
func (p *Pool[T]) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
	}
	p.ActiveCount--
}

// Clear marks every object inactive.
func (p *Pool[T]) Clear() {
	p.ActiveCount = 0
}

// Len returns the number of active objects.
func (p *Pool[T]) Len() int {
	return p.ActiveCount
}

// At returns the active object at index.
func (p *Pool[T]) At(index int) *T {
	return p.Pool[index]
}

// ForEach iterates over active objects in storage order.
func (p *Pool[T]) ForEach(fn func(*T, int)) {
	for i := 0; i < p.ActiveCount; i++ {
		fn(p.Pool[i], i)
	}
}

// ForEachReverse iterates over active objects from the tail.
func (p *Pool[T]) ForEachReverse(fn func(*T, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Active returns the live objects. The slice aliases pool storage and is
// only valid until the next Acquire or Release.
func (p *Pool[T]) Active() []*T {
	return p.Pool[:p.ActiveCount]
}
