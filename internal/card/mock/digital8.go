// Package mock implements the mock Card family used by tests and by the
// CLI's offline/demo mode: an in-memory "simulated hardware" register bank
// that test code pokes directly instead of touching real GPIO.
//
// Grounded on original_source/src/Fxt/Card/Mock/_0test/digital8.cpp, which
// establishes the exact start->scan->flush test shape reproduced here and
// in spec §8 scenario 5.
package mock

import (
	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/point"
)

type simBit struct {
	value bool
	valid bool
}

type digitalChannel struct {
	channel uint8
	pt      *point.Scalar[bool]
	ioReg   *point.Scalar[bool]
}

// Digital8 is an 8-channel-in/8-channel-out boolean mock card.
type Digital8 struct {
	card.Base

	hwIn  [8]simBit
	hwOut [8]simBit
	safe  [8]bool

	inputs  [8]digitalChannel
	outputs [8]digitalChannel
}

// NewDigital8 allocates a Digital8 card. Point/IO-register Points for
// channels 1..8 are allocated from a starting at idBase (consuming 32
// consecutive ids: 8 input Points, 8 input registers, 8 output Points, 8
// output registers).
func NewDigital8(localID uint32, name string, a *arena.Bump, idBase uint32) (*Digital8, error) {
	d := &Digital8{Base: card.NewBase(localID, name, "fxt.card.mock.digital8", "Fxt::Card::Mock::Digital8")}

	const guid, tname = "fxt.point.bool", "Fxt::Point::Bool"
	id := idBase
	for ch := uint8(0); ch < 8; ch++ {
		pt, err := point.NewScalar[bool](id, "in", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		reg, err := point.NewScalar[bool](id, "in$ioreg", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		d.inputs[ch] = digitalChannel{channel: ch + 1, pt: pt, ioReg: reg}
	}
	for ch := uint8(0); ch < 8; ch++ {
		pt, err := point.NewScalar[bool](id, "out", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		reg, err := point.NewScalar[bool](id, "out$ioreg", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		d.outputs[ch] = digitalChannel{channel: ch + 1, pt: pt, ioReg: reg}
	}
	return d, nil
}

// InputPoint returns the input Point for the given 1-based channel.
func (d *Digital8) InputPoint(channel uint8) *point.Scalar[bool] { return d.inputs[channel-1].pt }

// OutputPoint returns the output Point for the given 1-based channel.
func (d *Digital8) OutputPoint(channel uint8) *point.Scalar[bool] { return d.outputs[channel-1].pt }

// InputRegister returns the IO register Point mirroring an input channel.
func (d *Digital8) InputRegister(channel uint8) *point.Scalar[bool] { return d.inputs[channel-1].ioReg }

// OutputRegister returns the IO register Point mirroring an output channel.
func (d *Digital8) OutputRegister(channel uint8) *point.Scalar[bool] {
	return d.outputs[channel-1].ioReg
}

// SetHWInput sets simulated hardware channel ch (1-based) to a defined value.
func (d *Digital8) SetHWInput(ch uint8, v bool) { d.hwIn[ch-1] = simBit{value: v, valid: true} }

// SetHWInputInvalid marks simulated hardware channel ch as having no data,
// exercising the "scan_inputs with no data -> Point invalid" path.
func (d *Digital8) SetHWInputInvalid(ch uint8) { d.hwIn[ch-1] = simBit{} }

// SetSafeState configures the safe-state value driven to hardware channel ch
// when its output Point is invalid.
func (d *Digital8) SetSafeState(ch uint8, v bool) { d.safe[ch-1] = v }

// ReadHW returns the simulated hardware value last written to output
// channel ch by FlushOutputs.
func (d *Digital8) ReadHW(ch uint8) (bool, bool) {
	r := d.hwOut[ch-1]
	return r.value, r.valid
}

// ScanInputs implements card.Card.
func (d *Digital8) ScanInputs() error {
	for _, c := range d.inputs {
		reg := d.hwIn[c.channel-1]
		if reg.valid {
			c.pt.Write(reg.value, point.LockNoop)
			c.ioReg.Write(reg.value, point.LockNoop)
		} else {
			c.pt.SetInvalid(point.LockNoop)
			c.ioReg.SetInvalid(point.LockNoop)
		}
	}
	return nil
}

// FlushOutputs implements card.Card.
func (d *Digital8) FlushOutputs() error {
	for _, c := range d.outputs {
		v, ok := c.pt.Read()
		if ok {
			d.hwOut[c.channel-1] = simBit{value: v, valid: true}
			c.ioReg.Write(v, point.LockNoop)
		} else {
			d.hwOut[c.channel-1] = simBit{value: d.safe[c.channel-1], valid: true}
			c.ioReg.SetInvalid(point.LockNoop)
		}
	}
	return nil
}
