package point

import "github.com/foxtail/fxt/internal/arena"

// String is a fixed-capacity text Point (spec §4.1). The payload layout is
// a 2-byte length prefix followed by capacity raw bytes; writes longer than
// capacity are rejected rather than silently truncated, matching the
// Array kind's out-of-capacity error rather than the embedded FString's
// silent-truncation behavior (noted in DESIGN.md).
type String struct {
	Base
	capacity int
}

// NewString allocates a String Point with the given byte capacity.
func NewString(id uint32, name, typeGUID, typeName string, a *arena.Bump, capacity int) (*String, error) {
	b, err := newBase(id, name, typeGUID, typeName, a, 2+capacity)
	if err != nil {
		return nil, err
	}
	return &String{Base: b, capacity: capacity}, nil
}

// Capacity returns the fixed byte capacity.
func (s *String) Capacity() int { return s.capacity }

// Read returns the current string and whether the Point is valid.
func (s *String) Read() (string, bool) {
	if !s.IsValid() {
		return "", false
	}
	p := s.payload()
	n := int(p[0]) | int(p[1])<<8
	return string(p[2 : 2+n]), true
}

// Write sets the value, which must fit within Capacity() bytes.
func (s *String) Write(v string, lr LockRequest) error {
	if len(v) > s.capacity {
		return errStringTooLong
	}
	s.guardedMutate(lr, func() {
		p := s.payload()
		p[0] = byte(len(v))
		p[1] = byte(len(v) >> 8)
		copy(p[2:2+len(v)], v)
		for i := 2 + len(v); i < len(p); i++ {
			p[i] = 0
		}
		s.setValid(true)
	})
	return nil
}

// ValueJSON implements Point.ValueJSON.
func (s *String) ValueJSON() (any, bool) {
	return s.Read()
}

// WriteJSON implements Point.WriteJSON.
func (s *String) WriteJSON(raw any, lr LockRequest) error {
	v, ok := raw.(string)
	if !ok {
		return errJSONShape
	}
	return s.Write(v, lr)
}
