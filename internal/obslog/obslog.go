// Package obslog wires the engine's structured logging. It replaces the
// teacher's raw stderr debug helper (gmofishsauce-y4, sim/io.go: dbg/dbgN/pr)
// with go.uber.org/zap, while keeping the same shape: one process-wide
// logger configured once at startup, and a named child logger handed to each
// subsystem that logs (the Node and each Chassis) as it's wired, mirroring the
// teacher's per-call-site dbg(component.Name(), ...) pattern with
// logger.Named(subsystem).
package obslog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	global *zap.Logger
)

// Init configures the process-wide logger. debug selects development mode
// (human-readable, debug level) vs. production mode (JSON, info level).
// Safe to call once at host startup; a second call replaces the logger.
func Init(debug bool) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	global = l
	return l, nil
}

// L returns the process-wide logger, defaulting to a no-op logger if Init
// was never called (e.g. under test).
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return zap.NewNop()
	}
	return global
}

// Sync flushes the logger's buffers, mirroring the teacher's CloseLog() on
// shutdown.
func Sync() {
	l := L()
	_ = l.Sync()
}

// Named returns a child logger scoped to a subsystem, e.g. obslog.Named("chassis").
func Named(subsystem string) *zap.Logger {
	return L().Named(subsystem)
}
