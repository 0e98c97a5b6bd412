package fxerr

// Chassis error leaf codes. Not present verbatim in the original source's
// retrieved Error.h files, but required by spec §4.6 ("the Chassis... records
// the error... surfaced to the Node via get_error_code") and §8's boundary
// behavior for an empty Chassis. Modeled in the same BETTER-ENUM-style shape
// as the sibling subsystems.
const (
	ChassisSuccess byte = iota
	ChassisCardFailure
	ChassisLogicChainFailure
	ChassisNoLogicChains
	ChassisFailedStart
)

var chassisCategory = Register("CHASSIS", NewLeafSet(
	"SUCCESS",
	"CARD_FAILURE",
	"LOGIC_CHAIN_FAILURE",
	"NO_LOGIC_CHAINS",
	"FAILED_START",
))

// ChassisErr builds a full Error from a Chassis subsystem leaf code.
func ChassisErr(code byte) Error {
	return chassisCategory.Encode(code)
}
