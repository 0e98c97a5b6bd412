// Package analog implements the affine scaler Component (spec §4.4):
// y = m*x + b, with output clamped to its type's range rather than
// overflowing (an explicit choice per spec, not undefined behavior).
package analog

import (
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/point"
)

// Scaler computes y = m*x + b from one input Point to one output Point of
// possibly different concrete numeric types (e.g. a uint16 ADC reading
// scaled to a float32 engineering unit).
type Scaler[In, Out point.Numeric] struct {
	component.Base
	m, b       float64
	inputGUID  string
	outputGUID string
	inputID    uint32
	outputID   uint32
	input      *point.Scalar[In]
	output     *point.Scalar[Out]
}

// NewScaler constructs a Scaler with gain m and offset b.
func NewScaler[In, Out point.Numeric](name, typeGUID, inputGUID, outputGUID string, m, b float64, inputID, outputID uint32) *Scaler[In, Out] {
	return &Scaler[In, Out]{
		Base: component.NewBase(name, typeGUID), m: m, b: b,
		inputGUID: inputGUID, outputGUID: outputGUID,
		inputID: inputID, outputID: outputID,
	}
}

// ResolveReferences implements component.Component.
func (s *Scaler[In, Out]) ResolveReferences(db *point.Database) error {
	in, err := component.ResolveScalar[In](db, s.inputID, s.inputGUID, false)
	if err != nil {
		return err
	}
	out, err := component.ResolveScalar[Out](db, s.outputID, s.outputGUID, true)
	if err != nil {
		return err
	}
	s.input, s.output = in, out
	return nil
}

// Execute implements component.Component.
func (s *Scaler[In, Out]) Execute(nowUS int64) error {
	return s.RunLatched(func() error {
		x, ok := s.input.Read()
		if !ok {
			s.output.SetInvalid(point.LockNoop)
			return nil
		}
		y := s.m*point.ToFloat64(x) + s.b
		s.output.Write(point.FromFloat64Clamped[Out](y), point.LockNoop)
		return nil
	})
}
