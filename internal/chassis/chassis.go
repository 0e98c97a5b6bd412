// Package chassis implements the Chassis scheduling unit (spec §4.6, §5):
// one dedicated thread running scan-all-inputs -> execute-all-chains ->
// flush-all-outputs -> sleep, continuing after an error within a cycle so
// outputs still reach a safe state on a degraded chain.
//
// Grounded on the teacher's Simulate loop (gmofishsauce-y4, sim/sim.go):
// "Prepare all components, then Evaluate all Clockables, then PositiveEdge
// all Clockables" is the same three-phase happens-before discipline this
// package's cycle uses (scan/execute/flush), generalized from a fixed
// simulation step count to a free-running ticker.
package chassis

import (
	"context"
	"sync"
	"time"

	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/logic"
	"github.com/foxtail/fxt/internal/obslog"
	"go.uber.org/zap"
)

// Chassis owns one or more LogicChains and the Cards that feed/drain them,
// and runs them on exactly one goroutine (spec §5: "one per Chassis").
type Chassis struct {
	id     uint32
	name   string
	period time.Duration
	cards  []card.Card
	chains []*logic.Chain
	logger *zap.Logger

	errMu   sync.Mutex
	lastErr error

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New constructs a Chassis. period is the inter-cycle sleep (spec §6:
// derived from the Node JSON's scanRateMsec/scanRateMultiplier).
func New(id uint32, name string, cards []card.Card, chains []*logic.Chain, period time.Duration) *Chassis {
	return &Chassis{
		id: id, name: name, period: period,
		cards: cards, chains: chains,
		logger: obslog.Named("chassis").With(zap.Uint32("chassis_id", id)),
	}
}

// ID returns the Chassis' id.
func (c *Chassis) ID() uint32 { return c.id }

// Name returns the Chassis' name.
func (c *Chassis) Name() string { return c.name }

// Start starts every Card then every LogicChain's Components, then launches
// the Chassis' cycle goroutine. A Chassis with zero LogicChains is a
// configuration error (spec §8: Node with zero Chassis/chains fails
// construction; detected here when a Chassis is asked to run with none).
func (c *Chassis) Start() error {
	if len(c.chains) == 0 {
		return fxerr.Wrap(fxerr.ChassisErr(fxerr.ChassisNoLogicChains))
	}
	startUS := time.Now().UnixMicro()
	for _, cd := range c.cards {
		if err := cd.Start(); err != nil {
			return fxerr.Wrap(fxerr.ChassisErr(fxerr.ChassisFailedStart))
		}
	}
	for _, ch := range c.chains {
		if err := ch.Start(startUS); err != nil {
			return fxerr.Wrap(fxerr.ChassisErr(fxerr.ChassisFailedStart))
		}
	}
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	go c.run()
	return nil
}

func (c *Chassis) run() {
	defer close(c.doneCh)
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.cycle()
		}
	}
}

// cycle runs one scan -> execute -> flush pass (spec §4.6). Errors are
// recorded but do not stop later steps in the same cycle.
func (c *Chassis) cycle() {
	t := time.Now().UnixMicro()
	var cycleErr error

	for _, cd := range c.cards {
		if err := cd.ScanInputs(); err != nil {
			cycleErr = err
			c.logger.Warn("scan_inputs failed", zap.String("card", cd.Name()), zap.Error(err))
		}
	}
	for _, ch := range c.chains {
		if err := ch.Execute(t); err != nil {
			cycleErr = fxerr.Wrap(fxerr.ChassisErr(fxerr.ChassisLogicChainFailure))
			c.logger.Warn("logic chain execute failed", zap.String("chain", ch.Name()), zap.Error(err))
		}
	}
	for _, cd := range c.cards {
		if err := cd.FlushOutputs(); err != nil {
			cycleErr = err
			c.logger.Warn("flush_outputs failed", zap.String("card", cd.Name()), zap.Error(err))
		}
	}

	c.errMu.Lock()
	c.lastErr = cycleErr
	c.errMu.Unlock()
}

// LastError returns the most recent cycle's error, or nil (spec §4.6:
// "surfaced to the Node via get_error_code").
func (c *Chassis) LastError() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.lastErr
}

// RequestStop signals the cycle goroutine to finish its current cycle and
// exit. Safe to call multiple times.
func (c *Chassis) RequestStop() {
	c.stopOnce.Do(func() {
		if c.stopCh != nil {
			close(c.stopCh)
		}
	})
}

// Join blocks until the cycle goroutine has exited or ctx is done.
func (c *Chassis) Join(ctx context.Context) error {
	if c.doneCh == nil {
		return nil
	}
	select {
	case <-c.doneCh:
		return nil
	case <-ctx.Done():
		return fxerr.Wrap(fxerr.NodeErr(fxerr.NodeShutdownTimeout))
	}
}

// StopCards calls Stop on every Card and returns the first error. The mock
// Cards' Stop only moves them to the Stopped state; it does not drive their
// outputs to a safe state, so the hardware side keeps the values of the
// last FlushOutputs.
func (c *Chassis) StopCards() error {
	var firstErr error
	for _, cd := range c.cards {
		if err := cd.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
