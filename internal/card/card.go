// Package card implements the Card framework (spec §4.3): the contract that
// shuttles values between hardware and Points, its Created/Started/Stopped/
// Destroyed state machine, and channel-assignment validation.
//
// Grounded on the teacher's Clockable/Component split (gmofishsauce-y4,
// sim/types.go): a Card's per-cycle hooks (ScanInputs/FlushOutputs) play the
// role the teacher's Evaluate/PositiveEdge pair plays for a Clockable — one
// method samples external state into the model, the other commits computed
// state back out — except a Card's "external state" is hardware (or a mock
// of it) rather than another Component in the same process.
package card

import (
	"github.com/foxtail/fxt/internal/fxerr"
)

// State is a Card's lifecycle state (spec §4.3).
type State int

const (
	StateCreated State = iota
	StateStarted
	StateStopped
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Card is the contract every IO card implements (spec §4.3). Transitions are
// synchronous and serialized by the owning Chassis' single thread — Card
// implementations do not need their own locking.
type Card interface {
	LocalID() uint32
	Name() string
	TypeGUID() string
	TypeName() string

	Start() error
	Stop() error

	// ScanInputs samples hardware into every input Point and its twin IO
	// register Point; a channel with no data marks its Point invalid.
	ScanInputs() error
	// FlushOutputs writes every valid output Point to hardware and mirrors
	// it into the output's IO register Point; an invalid output Point
	// drives hardware to its configured safe state and invalidates the
	// register.
	FlushOutputs() error
}

// ValidateChannelAssignment checks that channels is a permutation of
// 1..=len(channels) (spec §4.3: "channel numbers within a Card are a
// permutation of 1..=N; duplicates or out-of-range channels fail
// construction").
func ValidateChannelAssignment(channels []uint8) error {
	n := len(channels)
	seen := make([]bool, n+1)
	for _, ch := range channels {
		if int(ch) < 1 || int(ch) > n || seen[ch] {
			return fxerr.Wrap(fxerr.CardErr(fxerr.CardBadChannelAssignments))
		}
		seen[ch] = true
	}
	return nil
}
