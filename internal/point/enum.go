package point

import "github.com/foxtail/fxt/internal/arena"

// EnumSymbols is the fixed name<->ordinal table an Enum Point's type GUID is
// bound to, grounded on the original source's BETTER_ENUM-declared value
// lists (e.g. Fxt::Type::DigitalPoint's enumeration of board/channel modes).
type EnumSymbols struct {
	names []string
	index map[string]uint16
}

// NewEnumSymbols builds a symbol table from an ordered name list; ordinal i
// is assigned to names[i].
func NewEnumSymbols(names ...string) EnumSymbols {
	idx := make(map[string]uint16, len(names))
	for i, n := range names {
		idx[n] = uint16(i)
	}
	return EnumSymbols{names: names, index: idx}
}

func (e EnumSymbols) ordinal(name string) (uint16, bool) {
	o, ok := e.index[name]
	return o, ok
}

func (e EnumSymbols) name(ordinal uint16) (string, bool) {
	if int(ordinal) >= len(e.names) {
		return "", false
	}
	return e.names[ordinal], true
}

// Enum is a Point whose value is one of a fixed set of named symbols,
// stored in its payload as a 2-byte ordinal and carried in JSON as the
// symbol name.
type Enum struct {
	Base
	symbols EnumSymbols
}

// NewEnum allocates an Enum Point bound to the given symbol table.
func NewEnum(id uint32, name, typeGUID, typeName string, a *arena.Bump, symbols EnumSymbols) (*Enum, error) {
	b, err := newBase(id, name, typeGUID, typeName, a, 2)
	if err != nil {
		return nil, err
	}
	return &Enum{Base: b, symbols: symbols}, nil
}

// Read returns the current symbol name and whether the Point is valid.
func (e *Enum) Read() (string, bool) {
	if !e.IsValid() {
		return "", false
	}
	ordinal := uint16(e.payload()[0]) | uint16(e.payload()[1])<<8
	name, ok := e.symbols.name(ordinal)
	if !ok {
		return "", false
	}
	return name, true
}

// Write sets the value to name, which must be a member of the Point's
// symbol table.
func (e *Enum) Write(name string, lr LockRequest) error {
	ordinal, ok := e.symbols.ordinal(name)
	if !ok {
		return errEnumUnknown
	}
	e.guardedMutate(lr, func() {
		p := e.payload()
		p[0] = byte(ordinal)
		p[1] = byte(ordinal >> 8)
		e.setValid(true)
	})
	return nil
}

// ValueJSON implements Point.ValueJSON.
func (e *Enum) ValueJSON() (any, bool) {
	name, ok := e.Read()
	if !ok {
		return nil, false
	}
	return name, true
}

// WriteJSON implements Point.WriteJSON.
func (e *Enum) WriteJSON(raw any, lr LockRequest) error {
	name, ok := raw.(string)
	if !ok {
		return errJSONShape
	}
	return e.Write(name, lr)
}
