package point

import "github.com/foxtail/fxt/internal/arena"

// Base holds the state every Point kind shares: identity, the stateful
// payload slot (allocated from whichever Bump matches the Point's HA role,
// per spec §5 resource policy), and the optional setter sibling.
//
// The stateful slot layout is fixed regardless of kind: byte 0 is the valid
// flag, byte 1 is the locked flag, the remainder is the kind-specific
// payload. Keeping valid/locked outside the kind-specific payload lets
// Base implement SetInvalid, IsValid, IsLocked, ApplyLockOnly and
// UpdateFromSetter once for every kind.
type Base struct {
	id       uint32
	name     string
	typeGUID string
	typeName string

	arena *arena.Bump
	slot  arena.Slot

	setter Point
}

const (
	flagValid  = 0
	flagLocked = 1
	payloadOff = 2
)

// newBase allocates the stateful slot (2 header bytes + payloadWidth) from
// a and fills in the identity fields. Concrete kinds call this from their
// own constructors.
func newBase(id uint32, name, typeGUID, typeName string, a *arena.Bump, payloadWidth int) (Base, error) {
	slot, err := a.Alloc(payloadOff + payloadWidth)
	if err != nil {
		return Base{}, err
	}
	return Base{
		id:       id,
		name:     name,
		typeGUID: typeGUID,
		typeName: typeName,
		arena:    a,
		slot:     slot,
	}, nil
}

func (b *Base) ID() uint32        { return b.id }
func (b *Base) Name() string      { return b.name }
func (b *Base) TypeGUID() string  { return b.typeGUID }
func (b *Base) TypeName() string  { return b.typeName }

func (b *Base) IsValid() bool  { return b.arena.View(b.slot)[flagValid] != 0 }
func (b *Base) IsLocked() bool { return b.arena.View(b.slot)[flagLocked] != 0 }

func (b *Base) setValid(v bool)  { b.arena.View(b.slot)[flagValid] = boolByte(v) }
func (b *Base) setLocked(v bool) { b.arena.View(b.slot)[flagLocked] = boolByte(v) }

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// payload returns the kind-specific bytes following the valid/locked header.
func (b *Base) payload() []byte {
	return b.arena.View(b.slot)[payloadOff:]
}

// rawPayload exposes (valid, payload) for UpdateFromSetter to copy between
// same-type Points without knowing the concrete kind.
func (b *Base) rawPayload() (bool, []byte) {
	return b.IsValid(), b.payload()
}

type rawPointAccessor interface {
	rawPayload() (bool, []byte)
}

// applyLockAndProceed implements the lock-request gate shared by write,
// set_invalid, and lock-only updates (spec §4.1):
//   - noop:   proceeds only if currently unlocked; lock state unchanged.
//   - lock:   proceeds only if currently unlocked; locks on success.
//   - unlock: always proceeds; unlocks.
func (b *Base) applyLockAndProceed(lr LockRequest) bool {
	locked := b.IsLocked()
	switch lr {
	case LockLock:
		if locked {
			return false
		}
		b.setLocked(true)
		return true
	case LockUnlock:
		b.setLocked(false)
		return true
	default: // LockNoop
		return !locked
	}
}

// guardedMutate runs mutate only if the lock gate for lr allows it.
func (b *Base) guardedMutate(lr LockRequest, mutate func()) {
	if !b.applyLockAndProceed(lr) {
		return
	}
	mutate()
}

// SetInvalid implements Point.SetInvalid.
func (b *Base) SetInvalid(lr LockRequest) {
	b.guardedMutate(lr, func() {
		b.setValid(false)
		p := b.payload()
		for i := range p {
			p[i] = 0
		}
	})
}

// ApplyLockOnly implements Point.ApplyLockOnly.
func (b *Base) ApplyLockOnly(lr LockRequest) {
	b.applyLockAndProceed(lr)
}

// Setter implements Point.Setter.
func (b *Base) Setter() Point { return b.setter }

// SetSetter implements Point.SetSetter.
func (b *Base) SetSetter(p Point) { b.setter = p }

// UpdateFromSetter implements Point.UpdateFromSetter: copies (valid, value)
// from the setter Point atomically, gated by lr like any other write.
func (b *Base) UpdateFromSetter(lr LockRequest) error {
	if b.setter == nil {
		return nil
	}
	acc, ok := b.setter.(rawPointAccessor)
	if !ok {
		return errSetterNotRaw
	}
	valid, payload := acc.rawPayload()
	b.guardedMutate(lr, func() {
		copy(b.payload(), payload)
		b.setValid(valid)
	})
	return nil
}
