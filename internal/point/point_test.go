package point

import (
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/stretchr/testify/require"
)

func newArena(t *testing.T, capacity int) *arena.Bump {
	t.Helper()
	return arena.NewBump("test", capacity)
}

func TestScalarLockSemantics(t *testing.T) {
	a := newArena(t, 64)
	p, err := NewScalar[uint32](1, "v", "fxt.point.uint32", "Fxt::Point::Uint32", a)
	require.NoError(t, err)

	p.Write(0xAA, LockNoop)
	v, ok := p.Read()
	require.True(t, ok)
	require.Equal(t, uint32(0xAA), v)

	// lock, then a noop write must not take effect.
	p.Write(0xBB, LockLock)
	v, ok = p.Read()
	require.True(t, ok)
	require.Equal(t, uint32(0xBB), v)
	require.True(t, p.IsLocked())

	p.Write(0xCC, LockNoop)
	v, _ = p.Read()
	require.Equal(t, uint32(0xBB), v, "write under noop must be ignored while locked")

	// unlock applies the new value and clears the lock.
	p.Write(0xDD, LockUnlock)
	v, ok = p.Read()
	require.True(t, ok)
	require.Equal(t, uint32(0xDD), v)
	require.False(t, p.IsLocked())
}

func TestScalarFromJSONPartialUpdate(t *testing.T) {
	a := newArena(t, 64)
	p, err := NewScalar[uint32](0, "v", "fxt.point.uint32", "Fxt::Point::Uint32", a)
	require.NoError(t, err)
	p.Write(0xAA, LockLock)

	// val-only update while locked is ignored (spec §8 scenario 4).
	require.NoError(t, FromJSONObject(p, map[string]any{"id": 0.0, "val": "0xBB"}))
	v, _ := p.Read()
	require.Equal(t, uint32(0xAA), v)

	// explicit locked:false both unlocks and applies the new value.
	require.NoError(t, FromJSONObject(p, map[string]any{"id": 0.0, "val": "0xBB", "locked": false}))
	v, ok := p.Read()
	require.True(t, ok)
	require.Equal(t, uint32(0xBB), v)
	require.False(t, p.IsLocked())
}

func TestScalarSetInvalidClearsPayload(t *testing.T) {
	a := newArena(t, 64)
	p, err := NewScalar[uint32](0, "v", "fxt.point.uint32", "Fxt::Point::Uint32", a)
	require.NoError(t, err)
	p.Write(123, LockNoop)
	require.NoError(t, FromJSONObject(p, map[string]any{"id": 0.0, "valid": false}))
	require.False(t, p.IsValid())
	v, ok := p.Read()
	require.False(t, ok)
	require.Equal(t, uint32(0), v)
	require.Equal(t, []byte{0, 0, 0, 0}, p.payload())
}

func TestScalarJSONEnvelope(t *testing.T) {
	a := newArena(t, 64)
	p, err := NewScalar[bool](5, "flag", "fxt.point.bool", "Fxt::Point::Bool", a)
	require.NoError(t, err)
	p.Write(true, LockNoop)

	obj := ToJSONObject(p, true)
	require.Equal(t, uint32(5), obj["id"])
	require.Equal(t, true, obj["valid"])
	require.Equal(t, "fxt.point.bool", obj["type"])
	require.Equal(t, false, obj["locked"])
	require.Equal(t, true, obj["val"])

	brief := ToJSONObject(p, false)
	_, hasType := brief["type"]
	require.False(t, hasType)
}

func TestArrayPartialWriteOnInvalidArrayZeroFillsRest(t *testing.T) {
	a := newArena(t, 64)
	arr, err := NewArray[uint16](0, "arr", "fxt.point.array.uint16", "Fxt::Point::ArrayUint16", a, 4)
	require.NoError(t, err)

	require.NoError(t, arr.Write(2, []uint16{7, 8}, LockNoop))
	dst := make([]uint16, 4)
	require.True(t, arr.Read(dst))
	require.Equal(t, []uint16{0, 0, 7, 8}, dst)
}

func TestArrayWriteOutOfCapacityErrors(t *testing.T) {
	a := newArena(t, 64)
	arr, err := NewArray[uint16](0, "arr", "fxt.point.array.uint16", "Fxt::Point::ArrayUint16", a, 4)
	require.NoError(t, err)
	require.Error(t, arr.Write(3, []uint16{1, 2}, LockNoop))
	require.NoError(t, arr.Write(2, []uint16{1, 2}, LockNoop))
}

func TestEnumRejectsUnknownSymbol(t *testing.T) {
	a := newArena(t, 64)
	syms := NewEnumSymbols("OFF", "ON", "FAULT")
	e, err := NewEnum(0, "mode", "fxt.point.enum.mode", "Fxt::Point::Mode", a, syms)
	require.NoError(t, err)

	require.NoError(t, e.Write("ON", LockNoop))
	name, ok := e.Read()
	require.True(t, ok)
	require.Equal(t, "ON", name)

	require.Error(t, e.Write("BOGUS", LockNoop))
}

func TestStringCapacityEnforced(t *testing.T) {
	a := newArena(t, 64)
	s, err := NewString(0, "label", "fxt.point.string", "Fxt::Point::String", a, 4)
	require.NoError(t, err)
	require.NoError(t, s.Write("abcd", LockNoop))
	require.Error(t, s.Write("abcde", LockNoop))
}

func TestUpdateFromSetter(t *testing.T) {
	a := newArena(t, 64)
	main, err := NewScalar[int32](0, "main", "fxt.point.int32", "Fxt::Point::Int32", a)
	require.NoError(t, err)
	setter, err := NewScalar[int32](1, "main$setter", "fxt.point.int32", "Fxt::Point::Int32", a)
	require.NoError(t, err)
	main.SetSetter(setter)

	setter.Write(-7, LockNoop)
	require.NoError(t, main.UpdateFromSetter(LockNoop))
	v, ok := main.Read()
	require.True(t, ok)
	require.Equal(t, int32(-7), v)
}

func TestDatabaseInsertLookupCapacity(t *testing.T) {
	a := newArena(t, 64)
	db := NewDatabase(1)
	p, err := NewScalar[uint32](0, "v", "fxt.point.uint32", "Fxt::Point::Uint32", a)
	require.NoError(t, err)
	require.NoError(t, db.Insert(p))

	p2, err := NewScalar[uint32](1, "v2", "fxt.point.uint32", "Fxt::Point::Uint32", a)
	require.NoError(t, err)
	require.Error(t, db.Insert(p2), "insert past capacity must fail")

	got, ok := db.Lookup(0)
	require.True(t, ok)
	require.Equal(t, uint32(0), got.ID())
}

func TestFactoryDatabase(t *testing.T) {
	a := newArena(t, 64)
	fd := NewFactoryDatabase()
	fd.Register(NewScalarFactory[uint32]("fxt.point.uint32", "Fxt::Point::Uint32"))
	fd.Register(NewArrayFactory[uint8]("fxt.point.array.uint8", "Fxt::Point::ArrayUint8"))

	p, err := fd.Create("fxt.point.uint32", 3, "x", map[string]any{}, a)
	require.NoError(t, err)
	require.Equal(t, "fxt.point.uint32", p.TypeGUID())

	_, err = fd.Create("fxt.point.array.uint8", 4, "y", map[string]any{"elements": 3.0}, a)
	require.NoError(t, err)

	_, err = fd.Create("does.not.exist", 5, "z", map[string]any{}, a)
	require.Error(t, err)
}
