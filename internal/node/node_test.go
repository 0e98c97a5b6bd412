package node

import (
	"os"
	"testing"
	"time"

	"github.com/foxtail/fxt/internal/card/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildFromJSONAndRunAndGate(t *testing.T) {
	data, err := os.ReadFile("../../testdata/node_basic.json")
	require.NoError(t, err)

	b := NewBuilder(256, 4096, 16384, 4096)
	RegisterStandardFactories(b)

	n, err := b.Build(data)
	require.NoError(t, err)
	require.Equal(t, uint32(1), n.ID())
	require.Equal(t, "demo-node", n.Name())
	require.Len(t, n.Cards(), 1)

	d, ok := n.Cards()[0].(*mock.Digital8)
	require.True(t, ok)

	require.NoError(t, Initialize(n))
	defer Drop()
	require.Same(t, n, GetNode())

	d.SetHWInput(1, true)
	d.SetHWInput(2, false)
	d.SetHWInput(3, true)

	require.NoError(t, n.Start())
	require.Eventually(t, func() bool {
		_, ok := d.ReadHW(1)
		return ok
	}, time.Second, time.Millisecond)

	// p1=false forces the AND to false regardless of p0/p2.
	require.Eventually(t, func() bool {
		v, ok := d.ReadHW(1)
		return ok && !v
	}, time.Second, time.Millisecond)

	require.NoError(t, n.Stop(time.Second))
}

func TestBuildRejectsEmptyChassisList(t *testing.T) {
	b := NewBuilder(64, 1024, 1024, 1024)
	RegisterStandardFactories(b)
	_, err := b.Build([]byte(`{"fxtNode":{"id":1,"name":"empty","chassis":[]}}`))
	require.Error(t, err)
}

func TestApiInitializeTwiceFails(t *testing.T) {
	a := &Api{}
	n1 := &Node{id: 1}
	n2 := &Node{id: 2}
	require.NoError(t, a.Initialize(n1))
	require.Error(t, a.Initialize(n2))
	a.Drop()
	require.NoError(t, a.Initialize(n2))
}
