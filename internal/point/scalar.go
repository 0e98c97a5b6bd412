package point

import "github.com/foxtail/fxt/internal/arena"

// Scalar is a single-value Point (spec §4.1's Basic_ family collapsed to one
// parametric type): bool, signed/unsigned integers of width 8..64, or
// float32/float64.
type Scalar[T Numeric] struct {
	Base
	kind ValueKind
}

// NewScalar allocates a Scalar[T] Point. a is the stateful arena matching
// the Point's HA role — the Node passes the card-stateful arena for a
// Card's Points and IO registers, and the HA-stateful arena for LogicChain
// auto-points (spec §5).
func NewScalar[T Numeric](id uint32, name, typeGUID, typeName string, a *arena.Bump) (*Scalar[T], error) {
	b, err := newBase(id, name, typeGUID, typeName, a, scalarWidth[T]())
	if err != nil {
		return nil, err
	}
	return &Scalar[T]{Base: b, kind: kindOf[T]()}, nil
}

// Read returns the current value and whether the Point is valid.
func (s *Scalar[T]) Read() (T, bool) {
	var zero T
	if !s.IsValid() {
		return zero, false
	}
	return decodeScalar[T](s.payload()), true
}

// Write sets the value under the given lock request.
func (s *Scalar[T]) Write(v T, lr LockRequest) {
	s.guardedMutate(lr, func() {
		copy(s.payload(), encodeScalar(v))
		s.setValid(true)
	})
}

// ValueJSON implements Point.ValueJSON.
func (s *Scalar[T]) ValueJSON() (any, bool) {
	v, ok := s.Read()
	if !ok {
		return nil, false
	}
	return scalarToJSON(v, s.kind), true
}

// WriteJSON implements Point.WriteJSON.
func (s *Scalar[T]) WriteJSON(raw any, lr LockRequest) error {
	v, err := scalarFromJSON[T](raw, s.kind)
	if err != nil {
		return err
	}
	s.Write(v, lr)
	return nil
}
