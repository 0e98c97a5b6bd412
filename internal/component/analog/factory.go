package analog

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/jsoncodec"
	"github.com/foxtail/fxt/internal/point"
)

// scalerFactory builds Scaler[In,Out] Components for one fixed pair of
// concrete numeric types. "gain" and "offset" are required numeric fields
// on the Component's config object (spec §6's Component JSON carries
// type-specific fields alongside inputs/outputs, the same way a Point's
// config carries "elements"/"capacity").
type scalerFactory[In, Out point.Numeric] struct {
	guid, inputGUID, outputGUID string
}

// NewScalerFactory returns the component.Factory for a Scaler[In,Out] bound
// to one concrete input/output Point type pair.
func NewScalerFactory[In, Out point.Numeric](typeGUID, inputGUID, outputGUID string) component.Factory {
	return scalerFactory[In, Out]{guid: typeGUID, inputGUID: inputGUID, outputGUID: outputGUID}
}

func (f scalerFactory[In, Out]) TypeGUID() string { return f.guid }
func (f scalerFactory[In, Out]) TypeName() string { return f.guid }

func (f scalerFactory[In, Out]) Create(name string, cfg jsoncodec.Object, _ *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	if len(inputs) != 1 || len(outputs) != 1 {
		return nil, fmt.Errorf("scaler %q: expects exactly one input and one output", name)
	}
	m, err := requireFloatField(cfg, "gain")
	if err != nil {
		return nil, err
	}
	b, err := requireFloatField(cfg, "offset")
	if err != nil {
		return nil, err
	}
	return NewScaler[In, Out](name, f.guid, f.inputGUID, f.outputGUID, m, b, inputs[0].ID, outputs[0].ID), nil
}

func requireFloatField(cfg jsoncodec.Object, key string) (float64, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("scaler factory: config missing %q", key)
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("scaler factory: %q must be a number", key)
	}
	return f, nil
}
