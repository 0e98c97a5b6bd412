package point

import "github.com/foxtail/fxt/internal/arena"

// Array is a fixed-capacity vector of scalar elements, serialized as
// {"start":k,"elems":[...]} (spec §4.1). Capacity is fixed at construction;
// a partial write targets [start, start+len(elems)) and leaves the rest of
// an already-valid array untouched, or zero-fills the rest when the array
// was invalid before the write (an Open Question resolved in DESIGN.md:
// partial writes onto an invalid array succeed rather than erroring).
type Array[T Numeric] struct {
	Base
	kind      ValueKind
	capacity  int
	elemWidth int
}

// NewArray allocates an Array[T] Point with room for capacity elements.
func NewArray[T Numeric](id uint32, name, typeGUID, typeName string, a *arena.Bump, capacity int) (*Array[T], error) {
	width := scalarWidth[T]()
	b, err := newBase(id, name, typeGUID, typeName, a, width*capacity)
	if err != nil {
		return nil, err
	}
	return &Array[T]{Base: b, kind: kindOf[T](), capacity: capacity, elemWidth: width}, nil
}

// Capacity returns the fixed element count.
func (a *Array[T]) Capacity() int { return a.capacity }

// Read copies the whole array into dst (which must have length Capacity())
// and reports whether the Point is valid.
func (a *Array[T]) Read(dst []T) bool {
	if !a.IsValid() {
		return false
	}
	p := a.payload()
	for i := 0; i < a.capacity; i++ {
		off := i * a.elemWidth
		dst[i] = decodeScalar[T](p[off : off+a.elemWidth])
	}
	return true
}

// Write sets elems starting at start, leaving the remainder of an
// already-valid array untouched (zero-filling it first if the array was
// invalid), and marks the array valid. It is an error for start+len(elems)
// to exceed Capacity().
func (a *Array[T]) Write(start int, elems []T, lr LockRequest) error {
	if start < 0 || start+len(elems) > a.capacity {
		return errArrayCapacity
	}
	a.guardedMutate(lr, func() {
		p := a.payload()
		if !a.IsValid() {
			for i := range p {
				p[i] = 0
			}
		}
		for i, v := range elems {
			off := (start + i) * a.elemWidth
			copy(p[off:off+a.elemWidth], encodeScalar(v))
		}
		a.setValid(true)
	})
	return nil
}

// ValueJSON implements Point.ValueJSON.
func (a *Array[T]) ValueJSON() (any, bool) {
	if !a.IsValid() {
		return nil, false
	}
	p := a.payload()
	elems := make([]any, a.capacity)
	for i := 0; i < a.capacity; i++ {
		off := i * a.elemWidth
		elems[i] = scalarToJSON(decodeScalar[T](p[off:off+a.elemWidth]), a.kind)
	}
	return map[string]any{"start": 0, "elems": elems}, true
}

// WriteJSON implements Point.WriteJSON.
func (a *Array[T]) WriteJSON(raw any, lr LockRequest) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return errJSONShape
	}
	start := 0
	if sv, ok := obj["start"]; ok {
		f, ok2 := sv.(float64)
		if !ok2 {
			return errJSONShape
		}
		start = int(f)
	}
	elemsRaw, ok := obj["elems"]
	if !ok {
		return errJSONShape
	}
	elemsList, ok := elemsRaw.([]any)
	if !ok {
		return errJSONShape
	}
	decoded := make([]T, len(elemsList))
	for i, rv := range elemsList {
		v, err := scalarFromJSON[T](rv, a.kind)
		if err != nil {
			return err
		}
		decoded[i] = v
	}
	return a.Write(start, decoded, lr)
}
