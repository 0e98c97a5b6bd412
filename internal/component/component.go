// Package component implements the Component contract (spec §4.4): a pure
// function from input Points to output Points, executed once per Chassis
// cycle, with latched-error semantics and reference-resolution against a
// point.Database.
//
// Grounded on the teacher's Component/Clockable split (gmofishsauce-y4,
// sim/types.go): Evaluate() there is this package's Execute — a pure
// computation over already-sampled inputs, run once per cycle in a fixed
// order the caller (LogicChain here, System there) controls.
package component

import (
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/point"
)

// Component is the contract every logic block implements.
type Component interface {
	Name() string
	TypeGUID() string

	// ResolveReferences replaces placeholder Point ids recorded during
	// construction with direct Point references looked up in db.
	ResolveReferences(db *point.Database) error

	// Start must be called exactly once per run; restart after Stop clears
	// any latched error.
	Start(nowUS int64) error
	// Stop clears latched error state so a future Start begins clean.
	Stop()

	// Execute reads inputs, computes outputs, writes outputs. Once it has
	// returned an error, every subsequent call returns the same error until
	// Stop then Start.
	Execute(nowUS int64) error
}

// Base carries the identity fields and the start/stop/latched-error state
// machine shared by every concrete Component.
type Base struct {
	name       string
	typeGUID   string
	started    bool
	startUS    int64
	latchedErr error
}

// NewBase constructs an un-started Base.
func NewBase(name, typeGUID string) Base {
	return Base{name: name, typeGUID: typeGUID}
}

func (b *Base) Name() string     { return b.name }
func (b *Base) TypeGUID() string { return b.typeGUID }

// Start implements Component.Start.
func (b *Base) Start(nowUS int64) error {
	b.started = true
	b.startUS = nowUS
	b.latchedErr = nil
	return nil
}

// Stop implements Component.Stop.
func (b *Base) Stop() {
	b.started = false
	b.latchedErr = nil
}

// RunLatched executes fn unless a prior call already latched an error, in
// which case that same error is returned again without re-running fn.
func (b *Base) RunLatched(fn func() error) error {
	if b.latchedErr != nil {
		return b.latchedErr
	}
	if err := fn(); err != nil {
		b.latchedErr = err
		return err
	}
	return nil
}

// ResolveScalar looks up id in db and type-asserts it to *point.Scalar[T],
// failing with the component reference-resolution error taxonomy (spec
// §4.4) when the id is missing or the concrete Point's type guid doesn't
// match expectedGUID. isOutput selects between the input/output error leaf
// codes.
func ResolveScalar[T point.Numeric](db *point.Database, id uint32, expectedGUID string, isOutput bool) (*point.Scalar[T], error) {
	p, ok := db.Lookup(id)
	if !ok {
		if isOutput {
			return nil, fxerr.Wrap(fxerr.ComponentErr(fxerr.ComponentUnresolvedOutputReference))
		}
		return nil, fxerr.Wrap(fxerr.ComponentErr(fxerr.ComponentUnresolvedInputReference))
	}
	sp, ok := p.(*point.Scalar[T])
	if !ok || sp.TypeGUID() != expectedGUID {
		if isOutput {
			return nil, fxerr.Wrap(fxerr.ComponentErr(fxerr.ComponentOutputReferenceBadType))
		}
		return nil, fxerr.Wrap(fxerr.ComponentErr(fxerr.ComponentInputReferenceBadType))
	}
	return sp, nil
}

// Ref is a placeholder reference recorded at construction time, resolved by
// ResolveReferences into a direct Point access (spec §3: "replaces the
// placeholder integer IDs stored during construction with direct
// references").
type Ref struct {
	ID     uint32
	Negate bool
	Bit    *uint8 // nil unless this reference carries a bit selector (demux/mux)
}
