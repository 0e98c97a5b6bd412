package digital

import (
	"github.com/foxtail/fxt/internal/bits"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/point"
)

// Mux is the byte/word mux Component (spec §4.4, §8 scenario 3): each
// boolean input is associated with a bit position; the output is assembled
// from the valid inputs. T is uint8 for Mux8Uint8 or uint16 for a 16-bit
// word mux.
type Mux[T point.Numeric] struct {
	component.Base
	width      uint8
	outputGUID string
	inputRefs  []component.Ref
	outputID   uint32
	inputs     []bitRef
	output     *point.Scalar[T]
}

// NewMux constructs a Mux. width is the output's bit width (8 or 16);
// inputRefs must carry distinct, in-range Bit selectors.
func NewMux[T point.Numeric](name, typeGUID, outputGUID string, width uint8, inputRefs []component.Ref, outputID uint32) (*Mux[T], error) {
	seen := make(map[uint8]bool, len(inputRefs))
	for _, r := range inputRefs {
		if r.Bit == nil || *r.Bit >= width {
			return nil, fxerr.Wrap(fxerr.ComponentDigitalErr(fxerr.DigitalMuxInvalidBitOffset))
		}
		if seen[*r.Bit] {
			return nil, fxerr.Wrap(fxerr.ComponentDigitalErr(fxerr.DigitalMuxDuplicateBitOffset))
		}
		seen[*r.Bit] = true
	}
	return &Mux[T]{
		Base:       component.NewBase(name, typeGUID),
		width:      width,
		outputGUID: outputGUID,
		inputRefs:  inputRefs,
		outputID:   outputID,
	}, nil
}

// ResolveReferences implements component.Component.
func (m *Mux[T]) ResolveReferences(db *point.Database) error {
	out, err := component.ResolveScalar[T](db, m.outputID, m.outputGUID, true)
	if err != nil {
		return err
	}
	m.output = out

	m.inputs = make([]bitRef, len(m.inputRefs))
	for i, r := range m.inputRefs {
		pt, err := component.ResolveScalar[bool](db, r.ID, boolGUID, false)
		if err != nil {
			return err
		}
		m.inputs[i] = bitRef{id: r.ID, bit: *r.Bit, negate: r.Negate, pt: pt}
	}
	return nil
}

// Execute implements component.Component.
func (m *Mux[T]) Execute(nowUS int64) error {
	return m.RunLatched(func() error {
		w := bits.NewWord(m.width)
		for _, in := range m.inputs {
			v, ok := in.pt.Read()
			if !ok {
				m.output.SetInvalid(point.LockNoop)
				return nil
			}
			if in.negate {
				v = !v
			}
			w = w.WithBit(in.bit, v)
		}
		m.output.Write(point.FromRawUint64[T](w.Uint64()), point.LockNoop)
		return nil
	})
}
