package fxerr

// Component:Digital error leaf codes — the nested category under COMPONENT
// used by the boolean-gate and byte demux/mux family (spec §4.4, scenario 6
// in §8: "COMPONENT:DIGITAL:DEMUX_INVALID_BIT_OFFSET").
const (
	DigitalSuccess byte = iota
	DigitalEmptyInputSet
	DigitalDemuxInvalidBitOffset
	DigitalMuxInvalidBitOffset
	DigitalMuxDuplicateBitOffset
	DigitalWidthMismatch
)

var componentDigitalCategory = componentCategory.Register("DIGITAL", NewLeafSet(
	"SUCCESS",
	"EMPTY_INPUT_SET",
	"DEMUX_INVALID_BIT_OFFSET",
	"MUX_INVALID_BIT_OFFSET",
	"MUX_DUPLICATE_BIT_OFFSET",
	"WIDTH_MISMATCH",
))

// ComponentDigitalErr builds a full Error from a Component:Digital leaf code.
func ComponentDigitalErr(code byte) Error {
	return componentDigitalCategory.Encode(code)
}
