package analog

import (
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func TestScalerAffineAndClamp(t *testing.T) {
	a := arena.NewBump("ha", 4096)
	db := point.NewDatabase(4)
	in, err := point.NewScalar[uint16](0, "x", "fxt.point.uint16", "Fxt::Point::Uint16", a)
	require.NoError(t, err)
	out, err := point.NewScalar[uint8](1, "y", "fxt.point.uint8", "Fxt::Point::Uint8", a)
	require.NoError(t, err)
	require.NoError(t, db.Insert(in))
	require.NoError(t, db.Insert(out))

	s := NewScaler[uint16, uint8]("scale0", "fxt.component.scaler", "fxt.point.uint16", "fxt.point.uint8", 1.0, 0, 0, 1)
	require.NoError(t, s.ResolveReferences(db))
	require.NoError(t, s.Start(0))

	in.Write(100, point.LockNoop)
	require.NoError(t, s.Execute(1))
	v, ok := out.Read()
	require.True(t, ok)
	require.Equal(t, uint8(100), v)

	// 300 overflows uint8's range and must clamp to 255, not wrap.
	in.Write(300, point.LockNoop)
	require.NoError(t, s.Execute(2))
	v, ok = out.Read()
	require.True(t, ok)
	require.Equal(t, uint8(255), v)

	in.SetInvalid(point.LockNoop)
	require.NoError(t, s.Execute(3))
	_, ok = out.Read()
	require.False(t, ok)
}
