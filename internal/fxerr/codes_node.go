package fxerr

// Node error leaf codes (spec §5: "NODE_SHUTDOWN_TIMEOUT"; §8: an empty Node
// construction error).
const (
	NodeSuccess byte = iota
	NodeNoChassis
	NodeFailedParse
	NodeFailedResolve
	NodeShutdownTimeout
	NodeAlreadyRunning
	NodeNotRunning
)

var nodeCategory = Register("NODE", NewLeafSet(
	"SUCCESS",
	"NO_CHASSIS",
	"FAILED_PARSE",
	"FAILED_RESOLVE",
	"NODE_SHUTDOWN_TIMEOUT",
	"ALREADY_RUNNING",
	"NOT_RUNNING",
))

// NodeErr builds a full Error from a Node subsystem leaf code.
func NodeErr(code byte) Error {
	return nodeCategory.Encode(code)
}
