package point

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/jsoncodec"
)

// Factory builds one concrete Point kind, keyed by its type GUID (spec §4.2,
// grounded on original_source/src/Fxt/Point/Int32.h's per-type
// GUID_STRING/TYPE_NAME constants and static create()-style construction).
type Factory interface {
	TypeGUID() string
	TypeName() string
	// Create builds a Point from a Node-config fragment (spec §6's Point
	// JSON document: id, name, and kind-specific fields such as "elements"
	// for Array or "capacity" for String). a is the stateful arena selected
	// by the caller according to this Point's HA role.
	Create(id uint32, name string, cfg jsoncodec.Object, a *arena.Bump) (Point, error)
}

// FactoryDatabase is the GUID-keyed registry of Factories a Node consults
// while parsing its Point configuration (spec §6).
type FactoryDatabase struct {
	byGUID map[string]Factory
}

// NewFactoryDatabase creates an empty registry.
func NewFactoryDatabase() *FactoryDatabase {
	return &FactoryDatabase{byGUID: make(map[string]Factory)}
}

// Register adds f, keyed by its TypeGUID.
func (fd *FactoryDatabase) Register(f Factory) {
	fd.byGUID[f.TypeGUID()] = f
}

// Lookup returns the Factory for typeGUID, if registered.
func (fd *FactoryDatabase) Lookup(typeGUID string) (Factory, bool) {
	f, ok := fd.byGUID[typeGUID]
	return f, ok
}

// Create resolves typeGUID to a Factory and builds a Point from cfg.
func (fd *FactoryDatabase) Create(typeGUID string, id uint32, name string, cfg jsoncodec.Object, a *arena.Bump) (Point, error) {
	f, ok := fd.byGUID[typeGUID]
	if !ok {
		return nil, fmt.Errorf("point factory: unknown type guid %q", typeGUID)
	}
	return f.Create(id, name, cfg, a)
}

// scalarFactory builds Scalar[T] Points for one concrete Go type.
type scalarFactory[T Numeric] struct {
	guid, name string
}

// NewScalarFactory returns a Factory for Scalar[T] bound to the given type
// GUID/name (e.g. "fxt.point.bool", "Fxt::Point::Bool").
func NewScalarFactory[T Numeric](typeGUID, typeName string) Factory {
	return scalarFactory[T]{guid: typeGUID, name: typeName}
}

func (f scalarFactory[T]) TypeGUID() string { return f.guid }
func (f scalarFactory[T]) TypeName() string { return f.name }

func (f scalarFactory[T]) Create(id uint32, name string, _ jsoncodec.Object, a *arena.Bump) (Point, error) {
	return NewScalar[T](id, name, f.guid, f.name, a)
}

// arrayFactory builds Array[T] Points; "elements" in cfg sets capacity.
type arrayFactory[T Numeric] struct {
	guid, name string
}

// NewArrayFactory returns a Factory for Array[T].
func NewArrayFactory[T Numeric](typeGUID, typeName string) Factory {
	return arrayFactory[T]{guid: typeGUID, name: typeName}
}

func (f arrayFactory[T]) TypeGUID() string { return f.guid }
func (f arrayFactory[T]) TypeName() string { return f.name }

func (f arrayFactory[T]) Create(id uint32, name string, cfg jsoncodec.Object, a *arena.Bump) (Point, error) {
	capacity, err := requireIntField(cfg, "elements")
	if err != nil {
		return nil, err
	}
	return NewArray[T](id, name, f.guid, f.name, a, capacity)
}

// enumFactory builds Enum Points bound to a fixed symbol table supplied at
// registration time (the symbol table is part of the type, not the
// per-instance config).
type enumFactory struct {
	guid, name string
	symbols    EnumSymbols
}

// NewEnumFactory returns a Factory for Enum Points over the given symbols.
func NewEnumFactory(typeGUID, typeName string, symbols EnumSymbols) Factory {
	return enumFactory{guid: typeGUID, name: typeName, symbols: symbols}
}

func (f enumFactory) TypeGUID() string { return f.guid }
func (f enumFactory) TypeName() string { return f.name }

func (f enumFactory) Create(id uint32, name string, _ jsoncodec.Object, a *arena.Bump) (Point, error) {
	return NewEnum(id, name, f.guid, f.name, a, f.symbols)
}

// stringFactory builds String Points; "capacity" in cfg sets the byte limit.
type stringFactory struct {
	guid, name string
}

// NewStringFactory returns a Factory for String Points.
func NewStringFactory(typeGUID, typeName string) Factory {
	return stringFactory{guid: typeGUID, name: typeName}
}

func (f stringFactory) TypeGUID() string { return f.guid }
func (f stringFactory) TypeName() string { return f.name }

func (f stringFactory) Create(id uint32, name string, cfg jsoncodec.Object, a *arena.Bump) (Point, error) {
	capacity, err := requireIntField(cfg, "capacity")
	if err != nil {
		return nil, err
	}
	return NewString(id, name, f.guid, f.name, a, capacity)
}

func requireIntField(cfg jsoncodec.Object, key string) (int, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("point factory: config missing %q", key)
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("point factory: %q must be a number", key)
	}
	return int(f), nil
}
