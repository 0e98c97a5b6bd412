package fxerr

// Card error leaf codes (spec §4.3, §7; grounded on original_source
// src/Fxt/Card/Error.h).
const (
	CardSuccess byte = iota
	CardMemoryCard
	CardMemoryDescriptors
	CardUnknownGUID
	CardMissingID
	CardPointMissingID
	CardTooManyInputPoints
	CardTooManyOutputPoints
	CardBadChannelAssignments
	CardSetterError
	CardMemoryDescriptorName
	CardInvalidID
	CardMock
)

var cardCategory = Register("CARD", NewLeafSet(
	"SUCCESS",
	"MEMORY_CARD",
	"MEMORY_DESCRIPTORS",
	"UNKNOWN_GUID",
	"CARD_MISSING_ID",
	"POINT_MISSING_ID",
	"TOO_MANY_INPUT_POINTS",
	"TOO_MANY_OUTPUT_POINTS",
	"BAD_CHANNEL_ASSIGNMENTS",
	"CARD_SETTER_ERROR",
	"MEMORY_DESCRIPTOR_NAME",
	"CARD_INVALID_ID",
	"MOCK",
))

// CardErr builds a full Error from a Card subsystem leaf code.
func CardErr(code byte) Error {
	return cardCategory.Encode(code)
}
