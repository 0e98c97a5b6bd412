package controller

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/jsoncodec"
)

// onOffFactory builds OnOff Components. "setpoint" and "deadband" are
// required numeric config fields alongside the usual inputs/outputs arrays.
type onOffFactory struct {
	guid, inputGUID string
}

// NewOnOffFactory returns the component.Factory for an OnOff controller
// whose input Point is of the given type guid (e.g. "fxt.point.float64").
func NewOnOffFactory(typeGUID, inputGUID string) component.Factory {
	return onOffFactory{guid: typeGUID, inputGUID: inputGUID}
}

func (f onOffFactory) TypeGUID() string { return f.guid }
func (f onOffFactory) TypeName() string { return f.guid }

func (f onOffFactory) Create(name string, cfg jsoncodec.Object, mem *arena.Bump) (component.Component, error) {
	inputs, err := component.ParseRefs(cfg["inputs"])
	if err != nil {
		return nil, err
	}
	outputs, err := component.ParseRefs(cfg["outputs"])
	if err != nil {
		return nil, err
	}
	if len(inputs) != 1 || len(outputs) != 1 {
		return nil, fmt.Errorf("onoff %q: expects exactly one input and one output", name)
	}
	setpoint, err := requireFloat(cfg, "setpoint")
	if err != nil {
		return nil, err
	}
	deadband, err := requireFloat(cfg, "deadband")
	if err != nil {
		return nil, err
	}
	return NewOnOff(name, f.guid, f.inputGUID, setpoint, deadband, inputs[0].ID, outputs[0].ID, mem)
}

func requireFloat(cfg jsoncodec.Object, key string) (float64, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("onoff factory: config missing %q", key)
	}
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("onoff factory: %q must be a number", key)
	}
	return f, nil
}
