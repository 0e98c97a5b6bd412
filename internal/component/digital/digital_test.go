package digital

import (
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func boolPoint(t *testing.T, a *arena.Bump, id uint32) *point.Scalar[bool] {
	t.Helper()
	p, err := point.NewScalar[bool](id, "p", boolGUID, "Fxt::Point::Bool", a)
	require.NoError(t, err)
	return p
}

func u8Point(t *testing.T, a *arena.Bump, id uint32) *point.Scalar[uint8] {
	t.Helper()
	p, err := point.NewScalar[uint8](id, "p", uint8GUID, "Fxt::Point::Uint8", a)
	require.NoError(t, err)
	return p
}

func bitOf(b uint8) *uint8 { return &b }

// Grounded on spec §8 scenario 1.
func TestAndGateScenario(t *testing.T) {
	a := arena.NewBump("ha", 4096)
	db := point.NewDatabase(16)
	p0, p1, p2 := boolPoint(t, a, 0), boolPoint(t, a, 1), boolPoint(t, a, 2)
	q0, q1 := boolPoint(t, a, 3), boolPoint(t, a, 4)
	for _, p := range []point.Point{p0, p1, p2, q0, q1} {
		require.NoError(t, db.Insert(p))
	}

	g, err := NewGate("and0", "fxt.component.and", And, true,
		[]component.Ref{{ID: 0}, {ID: 1}, {ID: 2}},
		[]component.Ref{{ID: 3}, {ID: 4, Negate: true}})
	require.NoError(t, err)
	require.NoError(t, g.ResolveReferences(db))
	require.NoError(t, g.Start(0))

	p0.Write(true, point.LockNoop)
	p1.Write(false, point.LockNoop)
	p2.Write(true, point.LockNoop)
	require.NoError(t, g.Execute(1))

	v0, ok := q0.Read()
	require.True(t, ok)
	require.False(t, v0)
	v1, ok := q1.Read()
	require.True(t, ok)
	require.True(t, v1)

	p1.SetInvalid(point.LockNoop)
	require.NoError(t, g.Execute(2))
	_, ok = q0.Read()
	require.False(t, ok)
	_, ok = q1.Read()
	require.False(t, ok)
}

// Grounded on spec §8 scenario 2.
func TestByteDemuxScenario(t *testing.T) {
	a := arena.NewBump("ha", 4096)
	db := point.NewDatabase(16)
	in := u8Point(t, a, 0)
	qB1, qB1n, qB4, qB4n, qB5n := boolPoint(t, a, 1), boolPoint(t, a, 2), boolPoint(t, a, 3), boolPoint(t, a, 4), boolPoint(t, a, 5)
	for _, p := range []point.Point{in, qB1, qB1n, qB4, qB4n, qB5n} {
		require.NoError(t, db.Insert(p))
	}

	d, err := NewDemux("demux0", "fxt.component.demux8", 0, []component.Ref{
		{ID: 1, Bit: bitOf(1)},
		{ID: 2, Bit: bitOf(1), Negate: true},
		{ID: 3, Bit: bitOf(4)},
		{ID: 4, Bit: bitOf(4), Negate: true},
		{ID: 5, Bit: bitOf(5), Negate: true},
	})
	require.NoError(t, err)
	require.NoError(t, d.ResolveReferences(db))
	require.NoError(t, d.Start(0))

	in.Write(0x32, point.LockNoop)
	require.NoError(t, d.Execute(1))

	check := func(p *point.Scalar[bool], want bool) {
		v, ok := p.Read()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	check(qB1, true)
	check(qB1n, false)
	check(qB4, true)
	check(qB4n, false)
	check(qB5n, false)
}

// Grounded on spec §8 scenario 3.
func TestByteMuxScenario(t *testing.T) {
	a := arena.NewBump("ha", 4096)
	db := point.NewDatabase(16)
	in4, in0, in1 := boolPoint(t, a, 0), boolPoint(t, a, 1), boolPoint(t, a, 2)
	out := u8Point(t, a, 3)
	for _, p := range []point.Point{in4, in0, in1, out} {
		require.NoError(t, db.Insert(p))
	}

	m, err := NewMux[uint8]("mux0", "fxt.component.mux8", uint8GUID, 8, []component.Ref{
		{ID: 0, Bit: bitOf(4)},
		{ID: 1, Bit: bitOf(0), Negate: true},
		{ID: 2, Bit: bitOf(1)},
	}, 3)
	require.NoError(t, err)
	require.NoError(t, m.ResolveReferences(db))
	require.NoError(t, m.Start(0))

	in4.Write(true, point.LockNoop)
	in0.Write(true, point.LockNoop)
	in1.Write(false, point.LockNoop)
	require.NoError(t, m.Execute(1))

	v, ok := out.Read()
	require.True(t, ok)
	require.Equal(t, uint8(0x10), v)
}

func TestGateRejectsEmptyInputSet(t *testing.T) {
	_, err := NewGate("and0", "fxt.component.and", And, true, nil, []component.Ref{{ID: 0}})
	require.Error(t, err)
}

func TestMuxRejectsDuplicateBit(t *testing.T) {
	_, err := NewMux[uint8]("mux0", "fxt.component.mux8", uint8GUID, 8, []component.Ref{
		{ID: 0, Bit: bitOf(1)},
		{ID: 1, Bit: bitOf(1)},
	}, 2)
	require.Error(t, err)
}
