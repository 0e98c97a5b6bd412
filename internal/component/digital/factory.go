package digital

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/jsoncodec"
	"github.com/foxtail/fxt/internal/point"
)

// gateFactory builds And or Or Gates, selected by op/identity at
// registration time (one Factory instance per gate kind/type guid).
type gateFactory struct {
	guid     string
	op       GateOp
	identity bool
}

// NewAndFactory returns the component.Factory for an AND gate.
func NewAndFactory(typeGUID string) component.Factory {
	return gateFactory{guid: typeGUID, op: And, identity: true}
}

// NewOrFactory returns the component.Factory for an OR gate.
func NewOrFactory(typeGUID string) component.Factory {
	return gateFactory{guid: typeGUID, op: Or, identity: false}
}

func (f gateFactory) TypeGUID() string { return f.guid }
func (f gateFactory) TypeName() string { return f.guid }

func (f gateFactory) Create(name string, cfg jsoncodec.Object, _ *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	return NewGate(name, f.guid, f.op, f.identity, inputs, outputs)
}

// notFactory builds Not Components.
type notFactory struct{ guid string }

// NewNotFactory returns the component.Factory for a NOT gate.
func NewNotFactory(typeGUID string) component.Factory { return notFactory{guid: typeGUID} }

func (f notFactory) TypeGUID() string { return f.guid }
func (f notFactory) TypeName() string { return f.guid }

func (f notFactory) Create(name string, cfg jsoncodec.Object, _ *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	return NewNot(name, f.guid, inputs, outputs)
}

// demuxFactory builds Demux Components. The single input is inputs[0];
// each outputs[i] carries the bit selector it is pinned to.
type demuxFactory struct{ guid string }

// NewDemuxFactory returns the component.Factory for a byte demux.
func NewDemuxFactory(typeGUID string) component.Factory { return demuxFactory{guid: typeGUID} }

func (f demuxFactory) TypeGUID() string { return f.guid }
func (f demuxFactory) TypeName() string { return f.guid }

func (f demuxFactory) Create(name string, cfg jsoncodec.Object, _ *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("demux %q: expected exactly one input", name)
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	return NewDemux(name, f.guid, inputs[0].ID, outputs)
}

// muxFactory builds Mux[T] Components for one fixed numeric type/width.
type muxFactory[T point.Numeric] struct {
	guid       string
	outputGUID string
	width      uint8
}

// NewMuxFactory returns the component.Factory for a Mux[T] bound to one
// concrete numeric output type/width (e.g. NewMuxFactory[uint8](guid,
// "fxt.point.uint8", 8) for Mux8Uint8).
func NewMuxFactory[T point.Numeric](typeGUID, outputGUID string, width uint8) component.Factory {
	return muxFactory[T]{guid: typeGUID, outputGUID: outputGUID, width: width}
}

func (f muxFactory[T]) TypeGUID() string { return f.guid }
func (f muxFactory[T]) TypeName() string { return f.guid }

func (f muxFactory[T]) Create(name string, cfg jsoncodec.Object, _ *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	if len(outputs) != 1 {
		return nil, fmt.Errorf("mux %q: expected exactly one output", name)
	}
	return NewMux[T](name, f.guid, f.outputGUID, f.width, inputs, outputs[0].ID)
}
