package node

import (
	"sync"

	"github.com/foxtail/fxt/internal/fxerr"
)

// Api is the process-wide Node registry (spec §4.7 "Api::get_node()", §9
// re-architecture guidance: "expressed as a process-wide state with
// lifecycle initialize -> take(once) -> drop; reacquisition after drop is
// allowed"). It is the one global singleton spec §5 permits ("No global
// singletons except the single installed Node pointer").
type Api struct {
	mu   sync.Mutex
	node *Node
}

// defaultAPI is the package-level singleton most callers (the CLI host)
// use; tests that need isolation construct their own *Api instead.
var defaultAPI = &Api{}

// Initialize installs n as the current Node. A second Initialize before a
// Drop is a configuration error.
func (a *Api) Initialize(n *Node) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.node != nil {
		return fxerr.Wrap(fxerr.NodeErr(fxerr.NodeAlreadyRunning))
	}
	a.node = n
	return nil
}

// GetNode returns the installed Node, or nil if none is installed (spec
// §4.7: "returns the single current Node or null").
func (a *Api) GetNode() *Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.node
}

// Drop uninstalls the current Node. A later Initialize is allowed (spec §9:
// "reacquisition after drop is allowed").
func (a *Api) Drop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.node = nil
}

// Initialize installs n as the process-wide current Node.
func Initialize(n *Node) error { return defaultAPI.Initialize(n) }

// GetNode returns the process-wide current Node, or nil.
func GetNode() *Node { return defaultAPI.GetNode() }

// Drop uninstalls the process-wide current Node.
func Drop() { defaultAPI.Drop() }
