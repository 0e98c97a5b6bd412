package mock

import (
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

// Grounded on spec §8 scenario 5.
func TestDigital8StartScanFlush(t *testing.T) {
	a := arena.NewBump("card-stateful", 4096)
	d, err := NewDigital8(1, "dio0", a, 100)
	require.NoError(t, err)
	require.NoError(t, d.Start())

	d.InputPoint(1).Write(true, point.LockNoop)
	d.InputRegister(1).Write(true, point.LockNoop)
	v, ok := d.InputPoint(1).Read()
	require.True(t, ok)
	require.True(t, v)

	d.SetHWInput(1, true)
	require.NoError(t, d.ScanInputs())
	v, ok = d.InputPoint(1).Read()
	require.True(t, ok)
	require.True(t, v)

	d.SetHWInputInvalid(1)
	require.NoError(t, d.ScanInputs())
	_, ok = d.InputPoint(1).Read()
	require.False(t, ok)

	d.OutputPoint(1).Write(false, point.LockNoop)
	require.NoError(t, d.FlushOutputs())
	hwv, hwok := d.ReadHW(1)
	require.True(t, hwok)
	require.False(t, hwv)
	regv, regok := d.OutputRegister(1).Read()
	require.True(t, regok)
	require.False(t, regv)

	d.OutputPoint(1).SetInvalid(point.LockNoop)
	require.NoError(t, d.FlushOutputs())
	_, regok = d.OutputRegister(1).Read()
	require.False(t, regok, "invalid output Point must invalidate its IO register")
}

func TestCardStateMachine(t *testing.T) {
	a := arena.NewBump("card-stateful", 4096)
	d, err := NewDigital8(1, "dio0", a, 0)
	require.NoError(t, err)
	require.NoError(t, d.Start())
	require.NoError(t, d.Stop())
	require.NoError(t, d.Stop(), "stop must be idempotent")
	require.NoError(t, d.Start())
}
