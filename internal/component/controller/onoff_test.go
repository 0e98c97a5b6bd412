package controller

import (
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func TestOnOffHysteresis(t *testing.T) {
	ha := arena.NewBump("ha", 4096)
	mem := arena.NewBump("component-mem", 16)
	db := point.NewDatabase(4)

	in, err := point.NewScalar[float64](0, "pv", "fxt.point.float64", "Fxt::Point::Float64", ha)
	require.NoError(t, err)
	out, err := point.NewScalar[bool](1, "out", "fxt.point.bool", "Fxt::Point::Bool", ha)
	require.NoError(t, err)
	require.NoError(t, db.Insert(in))
	require.NoError(t, db.Insert(out))

	c, err := NewOnOff("ctl0", "fxt.component.onoff", "fxt.point.float64", 50.0, 5.0, 0, 1, mem)
	require.NoError(t, err)
	require.NoError(t, c.ResolveReferences(db))
	require.NoError(t, c.Start(0))

	in.Write(60, point.LockNoop)
	require.NoError(t, c.Execute(1))
	v, _ := out.Read()
	require.True(t, v)

	// Inside the deadband after turning on: must stay on.
	in.Write(48, point.LockNoop)
	require.NoError(t, c.Execute(2))
	v, _ = out.Read()
	require.True(t, v, "must not turn off inside the deadband")

	in.Write(40, point.LockNoop)
	require.NoError(t, c.Execute(3))
	v, _ = out.Read()
	require.False(t, v)

	// Restarting clears hysteresis memory.
	require.NoError(t, c.Start(4))
	in.Write(50, point.LockNoop)
	require.NoError(t, c.Execute(5))
	v, _ = out.Read()
	require.True(t, v, "first cycle after restart compares directly to setpoint")
}
