// Package logic implements the LogicChain (spec §4.5): a fixed ordered list
// of Components sharing a Point namespace, plus the chain-local auto-points
// used for intermediate wiring between them.
package logic

import (
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/point"
)

// Chain is a LogicChain: Components execute in declared insertion order
// every cycle (spec §4.5, §5).
type Chain struct {
	name       string
	components []component.Component
	autoPoints []point.Point
	lastErr    error
}

// NewChain constructs a Chain from its ordered Components and chain-owned
// auto-points. An empty component list is a configuration error (spec §8:
// "Node with zero Chassis -> construction error ... LOGIC_CHAIN:
// NO_COMPONENTS ... depending on where emptiness is detected" — detected
// here, at the chain that would otherwise execute nothing).
func NewChain(name string, components []component.Component, autoPoints []point.Point) (*Chain, error) {
	if len(components) == 0 {
		return nil, fxerr.Wrap(fxerr.LogicChainErr(fxerr.LogicChainNoComponents))
	}
	return &Chain{name: name, components: components, autoPoints: autoPoints}, nil
}

// Name returns the chain's name.
func (c *Chain) Name() string { return c.name }

// AutoPoints returns the chain-owned intermediate-wiring Points.
func (c *Chain) AutoPoints() []point.Point { return c.autoPoints }

// ResolveReferences delegates to each Component in insertion order and
// returns the first error.
func (c *Chain) ResolveReferences(db *point.Database) error {
	for _, comp := range c.components {
		if err := comp.ResolveReferences(db); err != nil {
			return err
		}
	}
	return nil
}

// Start starts every Component in order; a partial failure rolls back the
// Components already started before returning the error (spec §4.5).
func (c *Chain) Start(nowUS int64) error {
	for i, comp := range c.components {
		if err := comp.Start(nowUS); err != nil {
			for j := 0; j < i; j++ {
				c.components[j].Stop()
			}
			return err
		}
	}
	return nil
}

// Stop stops every Component.
func (c *Chain) Stop() {
	for _, comp := range c.components {
		comp.Stop()
	}
}

// Execute runs each Component's Execute in insertion order. A Component
// error is returned immediately; remaining Components are not executed
// this cycle. The chain records the error for LastError.
func (c *Chain) Execute(nowUS int64) error {
	for _, comp := range c.components {
		if err := comp.Execute(nowUS); err != nil {
			c.lastErr = err
			return err
		}
	}
	c.lastErr = nil
	return nil
}

// LastError returns the most recent error Execute recorded, or nil.
func (c *Chain) LastError() error { return c.lastErr }
