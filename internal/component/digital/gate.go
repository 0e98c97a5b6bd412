// Package digital implements the boolean gate, byte-demux, and byte/word-mux
// Component family (spec §4.4, grounded on spec §8 scenarios 1-3).
package digital

import (
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/point"
)

const boolGUID = "fxt.point.bool"

type boolRef struct {
	id     uint32
	negate bool
	pt     *point.Scalar[bool]
}

// GateOp folds one more input into the running result.
type GateOp func(acc, in bool) bool

// And is the GateOp for an AND gate.
func And(acc, in bool) bool { return acc && in }

// Or is the GateOp for an OR gate.
func Or(acc, in bool) bool { return acc || in }

// Gate is an N-ary boolean gate (AND/OR/...): spec §4.4 "apply optional
// per-input negate; if any input is invalid, all outputs become invalid;
// otherwise outputs are computed and the optional per-output negate is
// applied. Empty input set is a configuration error."
type Gate struct {
	component.Base
	op       GateOp
	identity bool
	inputs   []component.Ref
	outputs  []component.Ref
	in       []boolRef
	out      []boolRef
}

// NewGate constructs a Gate. identity is the fold's starting value (true for
// AND, false for OR).
func NewGate(name, typeGUID string, op GateOp, identity bool, inputs, outputs []component.Ref) (*Gate, error) {
	if len(inputs) == 0 {
		return nil, fxerr.Wrap(fxerr.ComponentDigitalErr(fxerr.DigitalEmptyInputSet))
	}
	return &Gate{Base: component.NewBase(name, typeGUID), op: op, identity: identity, inputs: inputs, outputs: outputs}, nil
}

// ResolveReferences implements component.Component.
func (g *Gate) ResolveReferences(db *point.Database) error {
	g.in = make([]boolRef, len(g.inputs))
	for i, r := range g.inputs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, false)
		if err != nil {
			return err
		}
		g.in[i] = boolRef{id: r.ID, negate: r.Negate, pt: pt}
	}
	g.out = make([]boolRef, len(g.outputs))
	for i, r := range g.outputs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, true)
		if err != nil {
			return err
		}
		g.out[i] = boolRef{id: r.ID, negate: r.Negate, pt: pt}
	}
	return nil
}

// Execute implements component.Component.
func (g *Gate) Execute(nowUS int64) error {
	return g.RunLatched(func() error {
		acc := g.identity
		for _, r := range g.in {
			v, ok := r.pt.Read()
			if !ok {
				for _, o := range g.out {
					o.pt.SetInvalid(point.LockNoop)
				}
				return nil
			}
			if r.negate {
				v = !v
			}
			acc = g.op(acc, v)
		}
		for _, o := range g.out {
			v := acc
			if o.negate {
				v = !v
			}
			o.pt.Write(v, point.LockNoop)
		}
		return nil
	})
}

// Not is an N-wide element-wise logical NOT: spec §4.4 "propagates
// invalidity per element" — each input/output pair is independent, unlike
// Gate's all-invalid-if-any-invalid fold.
type Not struct {
	component.Base
	inputs  []component.Ref
	outputs []component.Ref
	in      []boolRef
	out     []boolRef
}

// NewNot constructs a Not gate; inputs and outputs must be paired 1:1.
func NewNot(name, typeGUID string, inputs, outputs []component.Ref) (*Not, error) {
	if len(inputs) == 0 || len(inputs) != len(outputs) {
		return nil, fxerr.Wrap(fxerr.ComponentErr(fxerr.ComponentMismatchedInputsOutputs))
	}
	return &Not{Base: component.NewBase(name, typeGUID), inputs: inputs, outputs: outputs}, nil
}

// ResolveReferences implements component.Component.
func (n *Not) ResolveReferences(db *point.Database) error {
	n.in = make([]boolRef, len(n.inputs))
	for i, r := range n.inputs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, false)
		if err != nil {
			return err
		}
		n.in[i] = boolRef{id: r.ID, negate: r.Negate, pt: pt}
	}
	n.out = make([]boolRef, len(n.outputs))
	for i, r := range n.outputs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, true)
		if err != nil {
			return err
		}
		n.out[i] = boolRef{id: r.ID, pt: pt}
	}
	return nil
}

// Execute implements component.Component.
func (n *Not) Execute(nowUS int64) error {
	return n.RunLatched(func() error {
		for i, r := range n.in {
			v, ok := r.pt.Read()
			if !ok {
				n.out[i].pt.SetInvalid(point.LockNoop)
				continue
			}
			n.out[i].pt.Write(!v, point.LockNoop)
		}
		return nil
	})
}
