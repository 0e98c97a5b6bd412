package mock

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/point"
)

// chanSpec is one channel entry from a Card's "points.inputs"/"points.outputs"
// config array (spec §6): channel number, the channel's Point id, and its
// paired IO-register Point id.
type chanSpec struct {
	channel uint8
	id      uint32
	ioRegID uint32
	name    string
}

func parseChanSpecs(raw any) ([]chanSpec, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("mock card factory: points list must be an array")
	}
	out := make([]chanSpec, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mock card factory: channel entry must be an object")
		}
		ch, ok := obj["channel"].(float64)
		if !ok {
			return nil, fmt.Errorf("mock card factory: channel entry missing channel")
		}
		id, ok := obj["id"].(float64)
		if !ok {
			return nil, fmt.Errorf("mock card factory: channel entry missing id")
		}
		ioRegID, ok := obj["ioRegId"].(float64)
		if !ok {
			return nil, fmt.Errorf("mock card factory: channel entry missing ioRegId")
		}
		name, _ := obj["name"].(string)
		out = append(out, chanSpec{channel: uint8(ch), id: uint32(id), ioRegID: uint32(ioRegID), name: name})
	}
	return out, nil
}

func channelNumbers(specs []chanSpec) []uint8 {
	out := make([]uint8, len(specs))
	for i, s := range specs {
		out[i] = s.channel
	}
	return out
}

// Digital8Factory builds Digital8 Cards from a Node-config fragment.
type Digital8Factory struct{}

func (Digital8Factory) TypeGUID() string { return "fxt.card.mock.digital8" }
func (Digital8Factory) TypeName() string { return "Fxt::Card::Mock::Digital8" }

// Create implements card.Factory.
func (Digital8Factory) Create(id uint32, name string, cfg map[string]any, db *point.Database, cardArena *arena.Bump, _ *point.FactoryDatabase) (card.Card, error) {
	pointsCfg, _ := cfg["points"].(map[string]any)
	inSpecs, err := parseChanSpecs(pointsCfg["inputs"])
	if err != nil {
		return nil, err
	}
	outSpecs, err := parseChanSpecs(pointsCfg["outputs"])
	if err != nil {
		return nil, err
	}
	if err := card.ValidateChannelAssignment(channelNumbers(inSpecs)); err != nil {
		return nil, err
	}
	if err := card.ValidateChannelAssignment(channelNumbers(outSpecs)); err != nil {
		return nil, err
	}

	d := &Digital8{Base: card.NewBase(id, name, "fxt.card.mock.digital8", "Fxt::Card::Mock::Digital8")}
	const guid, tname = "fxt.point.bool", "Fxt::Point::Bool"
	for _, s := range inSpecs {
		pt, err := point.NewScalar[bool](s.id, s.name, guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		reg, err := point.NewScalar[bool](s.ioRegID, s.name+"$ioreg", guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		if err := db.Insert(pt); err != nil {
			return nil, err
		}
		if err := db.Insert(reg); err != nil {
			return nil, err
		}
		d.inputs[s.channel-1] = digitalChannel{channel: s.channel, pt: pt, ioReg: reg}
	}
	for _, s := range outSpecs {
		pt, err := point.NewScalar[bool](s.id, s.name, guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		reg, err := point.NewScalar[bool](s.ioRegID, s.name+"$ioreg", guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		if err := db.Insert(pt); err != nil {
			return nil, err
		}
		if err := db.Insert(reg); err != nil {
			return nil, err
		}
		d.outputs[s.channel-1] = digitalChannel{channel: s.channel, pt: pt, ioReg: reg}
	}
	return d, nil
}

// Analog4Factory builds Analog4 Cards from a Node-config fragment.
type Analog4Factory struct{}

func (Analog4Factory) TypeGUID() string { return "fxt.card.mock.analog4" }
func (Analog4Factory) TypeName() string { return "Fxt::Card::Mock::Analog4" }

// Create implements card.Factory.
func (Analog4Factory) Create(id uint32, name string, cfg map[string]any, db *point.Database, cardArena *arena.Bump, _ *point.FactoryDatabase) (card.Card, error) {
	pointsCfg, _ := cfg["points"].(map[string]any)
	inSpecs, err := parseChanSpecs(pointsCfg["inputs"])
	if err != nil {
		return nil, err
	}
	outSpecs, err := parseChanSpecs(pointsCfg["outputs"])
	if err != nil {
		return nil, err
	}
	if err := card.ValidateChannelAssignment(channelNumbers(inSpecs)); err != nil {
		return nil, err
	}
	if err := card.ValidateChannelAssignment(channelNumbers(outSpecs)); err != nil {
		return nil, err
	}

	c := &Analog4{Base: card.NewBase(id, name, "fxt.card.mock.analog4", "Fxt::Card::Mock::Analog4")}
	const guid, tname = "fxt.point.uint16", "Fxt::Point::Uint16"
	for _, s := range inSpecs {
		pt, err := point.NewScalar[uint16](s.id, s.name, guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		reg, err := point.NewScalar[uint16](s.ioRegID, s.name+"$ioreg", guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		if err := db.Insert(pt); err != nil {
			return nil, err
		}
		if err := db.Insert(reg); err != nil {
			return nil, err
		}
		c.inputs[s.channel-1] = analogChannel{channel: s.channel, pt: pt, ioReg: reg}
	}
	for _, s := range outSpecs {
		pt, err := point.NewScalar[uint16](s.id, s.name, guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		reg, err := point.NewScalar[uint16](s.ioRegID, s.name+"$ioreg", guid, tname, cardArena)
		if err != nil {
			return nil, err
		}
		if err := db.Insert(pt); err != nil {
			return nil, err
		}
		if err := db.Insert(reg); err != nil {
			return nil, err
		}
		c.outputs[s.channel-1] = analogChannel{channel: s.channel, pt: pt, ioReg: reg}
	}
	return c, nil
}
