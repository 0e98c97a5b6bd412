package fxerr

// Component error leaf codes (spec §4.4, §7; grounded on original_source
// src/Fxt/Component/Error.h).
const (
	ComponentSuccess byte = iota
	ComponentUnknownGUID
	ComponentTooManyInputRefs
	ComponentBadInputReference
	ComponentTooManyOutputRefs
	ComponentBadOutputReference
	ComponentUnresolvedInputReference
	ComponentUnresolvedOutputReference
	ComponentOutOfMemory
	ComponentFailedStart
	ComponentInputReferenceBadType
	ComponentOutputReferenceBadType
	ComponentMismatchedInputsOutputs
	ComponentMissingRequiredField
	ComponentIncorrectNumInputRefs
	ComponentIncorrectNumOutputRefs
)

var componentCategory = Register("COMPONENT", NewLeafSet(
	"SUCCESS",
	"UNKNOWN_GUID",
	"TOO_MANY_INPUT_REFS",
	"BAD_INPUT_REFERENCE",
	"TOO_MANY_OUTPUT_REFS",
	"BAD_OUTPUT_REFERENCE",
	"UNRESOLVED_INPUT_REFERENCE",
	"UNRESOLVED_OUTPUT_REFERENCE",
	"OUT_OF_MEMORY",
	"FAILED_START",
	"INPUT_REFERENCE_BAD_TYPE",
	"OUTPUT_REFERENCE_BAD_TYPE",
	"MISMATCHED_INPUTS_OUTPUTS",
	"MISSING_REQUIRED_FIELD",
	"INCORRECT_NUM_INPUT_REFS",
	"INCORRECT_NUM_OUTPUT_REFS",
))

// ComponentErr builds a full Error from a Component subsystem leaf code.
func ComponentErr(code byte) Error {
	return componentCategory.Encode(code)
}
