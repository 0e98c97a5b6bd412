package fxerr

// Point error leaf codes (spec §4.2, §7; grounded on original_source
// src/Fxt/Point/Error.h).
const (
	PointSuccess byte = iota
	PointMemory
	PointUnknownGUID
	PointMissingID
	PointMissingTypeCfg
	PointBadSetterValue
	PointFailedDBInsert
)

var pointCategory = Register("POINT", NewLeafSet(
	"SUCCESS",
	"MEMORY_POINT",
	"UNKNOWN_GUID",
	"MISSING_ID",
	"MISSING_TYPE_CFG",
	"BAD_SETTER_VALUE",
	"FAILED_DB_INSERT",
))

// PointErr builds a full Error from a Point subsystem leaf code.
func PointErr(code byte) Error {
	return pointCategory.Encode(code)
}
