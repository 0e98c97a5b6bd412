package chassis

import (
	"context"
	"testing"
	"time"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/card/mock"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/component/digital"
	"github.com/foxtail/fxt/internal/logic"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func TestChassisCycleScanExecuteFlush(t *testing.T) {
	a := arena.NewBump("card-stateful", 8192)
	d, err := mock.NewDigital8(1, "dio0", a, 0)
	require.NoError(t, err)

	db := point.NewDatabase(64)
	require.NoError(t, db.Insert(d.InputPoint(1)))
	require.NoError(t, db.Insert(d.OutputPoint(1)))

	g, err := digital.NewGate("not_wire", "fxt.component.and", digital.And, true,
		[]component.Ref{{ID: d.InputPoint(1).ID()}},
		[]component.Ref{{ID: d.OutputPoint(1).ID()}})
	require.NoError(t, err)
	require.NoError(t, g.ResolveReferences(db))

	chain, err := logic.NewChain("chain0", []component.Component{g}, nil)
	require.NoError(t, err)

	ch := New(1, "chassis0", []card.Card{d}, []*logic.Chain{chain}, 5*time.Millisecond)
	d.SetHWInput(1, true)
	require.NoError(t, ch.Start())

	require.Eventually(t, func() bool {
		v, ok := d.ReadHW(1)
		return ok && v
	}, time.Second, time.Millisecond)

	ch.RequestStop()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, ch.Join(ctx))
	require.NoError(t, ch.StopCards())
}

func TestChassisStartFailsWithNoChains(t *testing.T) {
	ch := New(1, "chassis0", nil, nil, time.Millisecond)
	require.Error(t, ch.Start())
}
