package card

import "github.com/foxtail/fxt/internal/fxerr"

// Base carries the identity fields and the Created/Started/Stopped/
// Destroyed state machine shared by every Card implementation. Concrete
// cards embed Base and add ScanInputs/FlushOutputs.
type Base struct {
	localID  uint32
	name     string
	typeGUID string
	typeName string
	state    State
}

// NewBase constructs a Base in the Created state.
func NewBase(localID uint32, name, typeGUID, typeName string) Base {
	return Base{localID: localID, name: name, typeGUID: typeGUID, typeName: typeName, state: StateCreated}
}

func (b *Base) LocalID() uint32  { return b.localID }
func (b *Base) Name() string     { return b.name }
func (b *Base) TypeGUID() string { return b.typeGUID }
func (b *Base) TypeName() string { return b.typeName }
func (b *Base) State() State     { return b.state }

// Start transitions Created|Stopped -> Started.
func (b *Base) Start() error {
	if b.state != StateCreated && b.state != StateStopped {
		return fxerr.Wrap(fxerr.CardErr(fxerr.CardInvalidID))
	}
	b.state = StateStarted
	return nil
}

// Stop transitions Started -> Stopped. Idempotent when already stopped.
func (b *Base) Stop() error {
	if b.state == StateStopped {
		return nil
	}
	if b.state != StateStarted {
		return fxerr.Wrap(fxerr.CardErr(fxerr.CardInvalidID))
	}
	b.state = StateStopped
	return nil
}

// Destroy marks the Card destroyed; it must already be stopped (spec §4.3:
// "destruction requires stopped").
func (b *Base) Destroy() error {
	if b.state != StateStopped && b.state != StateCreated {
		return fxerr.Wrap(fxerr.CardErr(fxerr.CardInvalidID))
	}
	b.state = StateDestroyed
	return nil
}
