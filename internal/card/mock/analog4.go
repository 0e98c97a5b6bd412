package mock

import (
	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/point"
)

type simWord struct {
	value uint16
	valid bool
}

type analogChannel struct {
	channel uint8
	pt      *point.Scalar[uint16]
	ioReg   *point.Scalar[uint16]
}

// Analog4 is a 4-channel-in/4-channel-out uint16 mock card, the analog
// sibling of Digital8 (the original source ships both a digital and an
// analog mock family under Fxt/Card/Mock).
type Analog4 struct {
	card.Base

	hwIn  [4]simWord
	hwOut [4]simWord
	safe  [4]uint16

	inputs  [4]analogChannel
	outputs [4]analogChannel
}

// NewAnalog4 allocates an Analog4 card, consuming 16 consecutive Point ids
// starting at idBase.
func NewAnalog4(localID uint32, name string, a *arena.Bump, idBase uint32) (*Analog4, error) {
	c := &Analog4{Base: card.NewBase(localID, name, "fxt.card.mock.analog4", "Fxt::Card::Mock::Analog4")}

	const guid, tname = "fxt.point.uint16", "Fxt::Point::Uint16"
	id := idBase
	for ch := uint8(0); ch < 4; ch++ {
		pt, err := point.NewScalar[uint16](id, "in", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		reg, err := point.NewScalar[uint16](id, "in$ioreg", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		c.inputs[ch] = analogChannel{channel: ch + 1, pt: pt, ioReg: reg}
	}
	for ch := uint8(0); ch < 4; ch++ {
		pt, err := point.NewScalar[uint16](id, "out", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		reg, err := point.NewScalar[uint16](id, "out$ioreg", guid, tname, a)
		if err != nil {
			return nil, err
		}
		id++
		c.outputs[ch] = analogChannel{channel: ch + 1, pt: pt, ioReg: reg}
	}
	return c, nil
}

func (c *Analog4) InputPoint(channel uint8) *point.Scalar[uint16]  { return c.inputs[channel-1].pt }
func (c *Analog4) OutputPoint(channel uint8) *point.Scalar[uint16] { return c.outputs[channel-1].pt }
func (c *Analog4) InputRegister(channel uint8) *point.Scalar[uint16] {
	return c.inputs[channel-1].ioReg
}
func (c *Analog4) OutputRegister(channel uint8) *point.Scalar[uint16] {
	return c.outputs[channel-1].ioReg
}

// SetHWInput sets simulated hardware channel ch (1-based) to a defined value.
func (c *Analog4) SetHWInput(ch uint8, v uint16) { c.hwIn[ch-1] = simWord{value: v, valid: true} }

// SetHWInputInvalid marks simulated hardware channel ch as having no data.
func (c *Analog4) SetHWInputInvalid(ch uint8) { c.hwIn[ch-1] = simWord{} }

// SetSafeState configures the safe-state value driven when an output Point
// is invalid.
func (c *Analog4) SetSafeState(ch uint8, v uint16) { c.safe[ch-1] = v }

// ReadHW returns the simulated hardware value last written by FlushOutputs.
func (c *Analog4) ReadHW(ch uint8) (uint16, bool) {
	r := c.hwOut[ch-1]
	return r.value, r.valid
}

// ScanInputs implements card.Card.
func (c *Analog4) ScanInputs() error {
	for _, ch := range c.inputs {
		reg := c.hwIn[ch.channel-1]
		if reg.valid {
			ch.pt.Write(reg.value, point.LockNoop)
			ch.ioReg.Write(reg.value, point.LockNoop)
		} else {
			ch.pt.SetInvalid(point.LockNoop)
			ch.ioReg.SetInvalid(point.LockNoop)
		}
	}
	return nil
}

// FlushOutputs implements card.Card.
func (c *Analog4) FlushOutputs() error {
	for _, ch := range c.outputs {
		v, ok := ch.pt.Read()
		if ok {
			c.hwOut[ch.channel-1] = simWord{value: v, valid: true}
			ch.ioReg.Write(v, point.LockNoop)
		} else {
			c.hwOut[ch.channel-1] = simWord{value: c.safe[ch.channel-1], valid: true}
			ch.ioReg.SetInvalid(point.LockNoop)
		}
	}
	return nil
}
