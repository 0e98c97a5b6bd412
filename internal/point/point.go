// Package point implements the FoxTail Point model (spec §3, §4.1): a
// typed, identity-addressed signal cell with validity and lock state.
//
// The deep Basic_/Enum_/Array_ inheritance hierarchy of the original C++
// source (see original_source/src/Fxt/Point/Basic_.h, Enum_.h, Array_.h)
// collapses per spec §9 into four parametric kinds — Scalar[T], Array[T],
// Enum, String — each built on the shared Base, rather than a virtual base
// class chain. The concrete type-GUID identifies the kind instance; there is
// no runtime type hierarchy to walk.
package point

import "github.com/foxtail/fxt/internal/jsoncodec"

// LockRequest is the write-time lock directive (spec §4.1).
type LockRequest int

const (
	// LockNoop leaves the lock state unchanged; the write proceeds only if
	// currently unlocked.
	LockNoop LockRequest = iota
	// LockLock proceeds only if currently unlocked, then locks on success.
	LockLock
	// LockUnlock always proceeds, then unlocks.
	LockUnlock
)

// Point is the type-erased contract every concrete kind satisfies, used by
// PointDatabase, Card register wiring, and Component reference resolution
// (which only needs ID/TypeGUID plus the JSON envelope — typed Read/Write
// happen through the concrete Scalar[T]/Array[T]/Enum/String type once a
// Component has downcast a resolved reference).
type Point interface {
	ID() uint32
	Name() string
	TypeGUID() string
	TypeName() string
	IsValid() bool
	IsLocked() bool

	// SetInvalid forces valid=false and zeroes the payload, subject to the
	// same lock-request gating as a write.
	SetInvalid(lr LockRequest)

	// ApplyLockOnly transitions lock state without touching the payload,
	// used for a from_json update that carries "locked" but no "val".
	ApplyLockOnly(lr LockRequest)

	// ValueJSON returns the "val" field's JSON-ready value, or ok=false
	// when the Point is invalid (the field is then omitted entirely).
	ValueJSON() (any, bool)

	// WriteJSON parses and writes a decoded "val" payload under the given
	// lock request.
	WriteJSON(raw any, lr LockRequest) error

	Setter() Point
	SetSetter(p Point)
	// UpdateFromSetter copies (valid, value) from the setter Point, if any,
	// onto this Point under the given lock request.
	UpdateFromSetter(lr LockRequest) error
}

// ToJSONObject renders p's envelope per spec §4.1:
// {"id":N,"valid":B,"type":"…","locked":B,"val":…}, omitting "val" when
// invalid and omitting "type"/"locked" when verbose is false.
func ToJSONObject(p Point, verbose bool) jsoncodec.Object {
	obj := jsoncodec.Object{
		"id":    p.ID(),
		"valid": p.IsValid(),
	}
	if verbose {
		obj["type"] = p.TypeGUID()
		obj["locked"] = p.IsLocked()
	}
	if p.IsValid() {
		if v, ok := p.ValueJSON(); ok {
			obj["val"] = v
		}
	}
	return obj
}

// FromJSONObject applies a partial update decoded from a Point JSON envelope
// (spec §4.1 from_json): "val" alone updates the value under an implicit
// noop lock request; an explicit "locked" field supplies the lock request;
// an explicit "valid":false sets the Point invalid instead of writing a
// value; a "locked"-only update with neither "val" nor "valid" just
// transitions lock state.
func FromJSONObject(p Point, obj jsoncodec.Object) error {
	lr := LockNoop
	if lv, ok := obj["locked"]; ok {
		if lb, ok2 := lv.(bool); ok2 {
			if lb {
				lr = LockLock
			} else {
				lr = LockUnlock
			}
		}
	}
	if vv, ok := obj["valid"]; ok {
		if vb, ok2 := vv.(bool); ok2 && !vb {
			p.SetInvalid(lr)
			return nil
		}
	}
	if raw, ok := obj["val"]; ok {
		return p.WriteJSON(raw, lr)
	}
	p.ApplyLockOnly(lr)
	return nil
}
