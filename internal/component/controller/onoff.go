// Package controller implements the on/off controller Component family
// (spec §4.4). Each cycle compares the current input sample against the
// setpoint and deadband; the only value kept between cycles is the previous
// on/off decision, in one byte of the stateful arena. Previous input samples
// are not stored. That byte is reset on Start, so nothing carries over a
// stop/start.
package controller

import (
	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/point"
)

const (
	prevUnknown byte = iota
	prevOff
	prevOn
)

// OnOff is an on/off controller with hysteresis: once on, the input must
// fall below setpoint-deadband to turn off; once off, it must rise above
// setpoint+deadband to turn on. The previous on/off state is the
// controller's only memory, held in one byte of the stateful arena and
// reset to "unknown" on Start so no state survives a stop/start cycle.
type OnOff struct {
	component.Base
	inputGUID  string
	inputID    uint32
	outputID   uint32
	setpoint   float64
	deadband   float64
	input      *point.Scalar[float64]
	output     *point.Scalar[bool]
	mem        *arena.Bump
	slot       arena.Slot
}

// NewOnOff constructs an OnOff controller. mem is the stateful arena its
// one-byte previous-state memory is allocated from (spec §5: component
// working state that is not itself a Point still comes from an arena, not
// the Go heap, so it shares the Node's reset-wholesale lifecycle).
func NewOnOff(name, typeGUID, inputGUID string, setpoint, deadband float64, inputID, outputID uint32, mem *arena.Bump) (*OnOff, error) {
	slot, err := mem.Alloc(1)
	if err != nil {
		return nil, err
	}
	return &OnOff{
		Base: component.NewBase(name, typeGUID), inputGUID: inputGUID,
		setpoint: setpoint, deadband: deadband,
		inputID: inputID, outputID: outputID,
		mem: mem, slot: slot,
	}, nil
}

// ResolveReferences implements component.Component.
func (c *OnOff) ResolveReferences(db *point.Database) error {
	in, err := component.ResolveScalar[float64](db, c.inputID, c.inputGUID, false)
	if err != nil {
		return err
	}
	out, err := component.ResolveScalar[bool](db, c.outputID, "fxt.point.bool", true)
	if err != nil {
		return err
	}
	c.input, c.output = in, out
	return nil
}

// Start implements component.Component, additionally clearing previous-state
// memory so hysteresis starts fresh every run.
func (c *OnOff) Start(nowUS int64) error {
	c.mem.View(c.slot)[0] = prevUnknown
	return c.Base.Start(nowUS)
}

// Execute implements component.Component.
func (c *OnOff) Execute(nowUS int64) error {
	return c.RunLatched(func() error {
		x, ok := c.input.Read()
		if !ok {
			c.output.SetInvalid(point.LockNoop)
			return nil
		}
		prev := c.mem.View(c.slot)[0]
		var on bool
		switch prev {
		case prevOn:
			on = x >= c.setpoint-c.deadband
		case prevOff:
			on = x > c.setpoint+c.deadband
		default:
			on = x >= c.setpoint
		}
		c.output.Write(on, point.LockNoop)
		if on {
			c.mem.View(c.slot)[0] = prevOn
		} else {
			c.mem.View(c.slot)[0] = prevOff
		}
		return nil
	})
}
