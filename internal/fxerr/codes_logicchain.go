package fxerr

// LogicChain error leaf codes (spec §4.5, §7; grounded on original_source
// src/Fxt/LogicChain/Error.h).
const (
	LogicChainSuccess byte = iota
	LogicChainNoMemoryComponentList
	LogicChainNoMemoryAutoPointList
	LogicChainComponentFailure
	LogicChainTooManyComponents
	LogicChainTooManyAutoPoints
	LogicChainMissingComponents
	LogicChainMissingAutoPoints
	LogicChainFailedStart
	LogicChainParseComponentArray
	LogicChainNoComponents
	LogicChainNoMemoryLogicChain
	LogicChainFailedCreateComponent
	LogicChainFailedCreatePoints
	LogicChainFailedCreateAutoPoints
	LogicChainNoInitialValAutoPoint
	LogicChainFailedPointResolve
)

var logicChainCategory = Register("LOGIC_CHAIN", NewLeafSet(
	"SUCCESS",
	"NO_MEMORY_COMPONENT_LIST",
	"NO_MEMORY_AUTO_POINT_LIST",
	"COMPONENT_FAILURE",
	"TOO_MANY_COMPONENTS",
	"TOO_MANY_AUTO_POINTS",
	"MISSING_COMPONENTS",
	"MISSING_AUTO_POINTS",
	"FAILED_START",
	"PARSE_COMPONENT_ARRAY",
	"NO_COMPONENTS",
	"NO_MEMORY_LOGIC_CHAIN",
	"FAILED_CREATE_COMPONENT",
	"FAILED_CREATE_POINTS",
	"FAILED_CREATE_AUTO_POINTS",
	"NO_INITIAL_VAL_AUTO_POINT",
	"FAILED_POINT_RESOLVE",
))

// LogicChainErr builds a full Error from a LogicChain subsystem leaf code.
func LogicChainErr(code byte) Error {
	return logicChainCategory.Encode(code)
}
