package node

import (
	"os"
	"testing"

	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHARoundTrips(t *testing.T) {
	data, err := os.ReadFile("../../testdata/node_ha.json")
	require.NoError(t, err)

	build := func() *Node {
		b := NewBuilder(64, 1024, 1024, 1024)
		RegisterStandardFactories(b)
		n, err := b.Build(data)
		require.NoError(t, err)
		return n
	}

	src := build()
	p, ok := src.Database().Lookup(500)
	require.True(t, ok)
	accum := p.(*point.Scalar[float64])
	accum.Write(42.5, point.LockNoop)

	blob := src.SnapshotHA()

	dst := build()
	require.NoError(t, dst.RestoreHA(blob))
	p2, ok := dst.Database().Lookup(500)
	require.True(t, ok)
	v, valid := p2.(*point.Scalar[float64]).Read()
	require.True(t, valid)
	require.Equal(t, 42.5, v)
}
