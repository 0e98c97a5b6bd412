package arena

import "fmt"

// Objects is the general arena: a fixed-capacity, append-only slab of
// metadata objects of one concrete type. The Node does not use it; its
// Points, Cards, Components and LogicChains are allocated on the Go heap.
// Because Go's GC already manages object lifetime safely,
// the bump-allocator discipline here is enforced by capacity bound and
// wholesale Reset rather than by raw memory layout — the general arena's
// job in this spec is bounding and batch-freeing metadata, not byte-level
// placement (that's what Bump is for, on the stateful side).
//
// Ref is the "arena+index" handle spec §9 asks for in place of owning
// pointers: as long as the backing slice never grows past its reserved
// capacity, a *T obtained via At remains valid for the arena's lifetime.
type Objects[T any] struct {
	name  string
	items []T
}

// Ref addresses a single element of an Objects[T] arena.
type Ref int

// NewObjects preallocates a slab for up to capacity items of T.
func NewObjects[T any](name string, capacity int) *Objects[T] {
	return &Objects[T]{name: name, items: make([]T, 0, capacity)}
}

// Alloc appends v and returns a stable Ref, or an error if the arena is full.
func (o *Objects[T]) Alloc(v T) (Ref, error) {
	if len(o.items) == cap(o.items) {
		return -1, fmt.Errorf("arena %q: out of memory (capacity %d)", o.name, cap(o.items))
	}
	o.items = append(o.items, v)
	return Ref(len(o.items) - 1), nil
}

// At returns a pointer to the element addressed by ref. The pointer stays
// valid for the arena's lifetime (no reallocation occurs below capacity).
func (o *Objects[T]) At(ref Ref) *T {
	return &o.items[ref]
}

// Len reports the number of allocated items.
func (o *Objects[T]) Len() int {
	return len(o.items)
}

// Reset drops all items at once — the "no per-object free" discipline of
// spec §3/§5. Existing Refs become invalid.
func (o *Objects[T]) Reset() {
	o.items = o.items[:0]
}

// All iterates the allocated items in allocation order.
func (o *Objects[T]) All() []T {
	return o.items
}
