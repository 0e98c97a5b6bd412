package component

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/jsoncodec"
)

// Factory builds one concrete Component type from its Node-config fragment
// (spec §6 "Component JSON"): name, type guid, and inputs/outputs arrays of
// {idRef, negate?, bit?}. mem is the stateful arena a Component may draw
// non-Point working memory from (e.g. the on/off controller's hysteresis
// byte).
type Factory interface {
	TypeGUID() string
	TypeName() string
	Create(name string, cfg jsoncodec.Object, mem *arena.Bump) (Component, error)
}

// FactoryDatabase is the GUID-keyed registry of Component Factories a Node
// consults while parsing a LogicChain's component list.
type FactoryDatabase struct {
	byGUID map[string]Factory
}

// NewFactoryDatabase creates an empty registry.
func NewFactoryDatabase() *FactoryDatabase {
	return &FactoryDatabase{byGUID: make(map[string]Factory)}
}

// Register adds f, keyed by its TypeGUID.
func (fd *FactoryDatabase) Register(f Factory) {
	fd.byGUID[f.TypeGUID()] = f
}

// Create resolves typeGUID to a Factory and builds a Component from cfg.
func (fd *FactoryDatabase) Create(typeGUID, name string, cfg jsoncodec.Object, mem *arena.Bump) (Component, error) {
	f, ok := fd.byGUID[typeGUID]
	if !ok {
		return nil, fmt.Errorf("component factory: unknown type guid %q", typeGUID)
	}
	return f.Create(name, cfg, mem)
}

// ParseRefs reads a Node-config "inputs" or "outputs" array into []Ref
// (spec §6: each element is {"idRef":<u32>, "negate":<bool?>, "bit":<u8?>}).
func ParseRefs(raw any) ([]Ref, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("component factory: refs field must be an array")
	}
	out := make([]Ref, 0, len(list))
	for _, item := range list {
		obj, ok := item.(jsoncodec.Object)
		if !ok {
			m, ok2 := item.(map[string]any)
			if !ok2 {
				return nil, fmt.Errorf("component factory: ref entry must be an object")
			}
			obj = m
		}
		idF, ok := obj["idRef"].(float64)
		if !ok {
			return nil, fmt.Errorf("component factory: ref missing idRef")
		}
		r := Ref{ID: uint32(idF)}
		if neg, ok := obj["negate"].(bool); ok {
			r.Negate = neg
		}
		if bit, ok := obj["bit"].(float64); ok {
			b := uint8(bit)
			r.Bit = &b
		}
		out = append(out, r)
	}
	return out, nil
}
