package digital

import (
	"github.com/foxtail/fxt/internal/bits"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/point"
)

const uint8GUID = "fxt.point.uint8"

type bitRef struct {
	id     uint32
	bit    uint8
	negate bool
	pt     *point.Scalar[bool]
}

// Demux is the byte demux Component (spec §4.4, §8 scenario 2): a single
// byte-wide input fanned out to boolean outputs, each pinned to a bit
// position 0..=7.
type Demux struct {
	component.Base
	inputID    uint32
	outputRefs []component.Ref
	input      *point.Scalar[uint8]
	outputs    []bitRef
}

// NewDemux constructs a Demux. Each outputRefs[i].Bit must be non-nil and
// in 0..=7.
func NewDemux(name, typeGUID string, inputID uint32, outputRefs []component.Ref) (*Demux, error) {
	for _, r := range outputRefs {
		if r.Bit == nil || *r.Bit > 7 {
			return nil, fxerr.Wrap(fxerr.ComponentDigitalErr(fxerr.DigitalDemuxInvalidBitOffset))
		}
	}
	return &Demux{Base: component.NewBase(name, typeGUID), inputID: inputID, outputRefs: outputRefs}, nil
}

// ResolveReferences implements component.Component.
func (d *Demux) ResolveReferences(db *point.Database) error {
	in, err := component.ResolveScalar[uint8](db, d.inputID, uint8GUID, false)
	if err != nil {
		return err
	}
	d.input = in

	d.outputs = make([]bitRef, len(d.outputRefs))
	for i, r := range d.outputRefs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, true)
		if err != nil {
			return err
		}
		d.outputs[i] = bitRef{id: r.ID, bit: *r.Bit, negate: r.Negate, pt: pt}
	}
	return nil
}

// Execute implements component.Component.
func (d *Demux) Execute(nowUS int64) error {
	return d.RunLatched(func() error {
		v, ok := d.input.Read()
		if !ok {
			for _, o := range d.outputs {
				o.pt.SetInvalid(point.LockNoop)
			}
			return nil
		}
		w := bits.FromUint64(uint64(v), 8)
		for _, o := range d.outputs {
			b := w.Bit(o.bit)
			if o.negate {
				b = !b
			}
			o.pt.Write(b, point.LockNoop)
		}
		return nil
	})
}
