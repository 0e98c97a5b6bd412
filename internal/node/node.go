// Package node implements Node (spec §4.7): JSON-driven construction of an
// entire FoxTail runtime — Point/Card/Component factory wiring, Chassis
// assembly, reference resolution, initial-state setter application, and
// thread startup — plus the process-wide Api singleton and HA snapshot.
//
// Construction follows spec §4.7 verbatim: (a) factories are registered by
// the caller before Build is called (spec §9: "explicit registration during
// Node construction", no static-init registries); (b) the top-level node
// object is parsed; (c) each Chassis' Cards are created, then its
// LogicChains (which create Components and chain-local auto-points); (d)
// resolve_references runs on every Component; (e) setters are applied to
// produce initial valid state. Builder.Build performs (b)-(e); (f), starting
// the Chassis threads, is done by a separate call to Node.Start.
package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/card"
	"github.com/foxtail/fxt/internal/chassis"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/jsoncodec"
	"github.com/foxtail/fxt/internal/logic"
	"github.com/foxtail/fxt/internal/obslog"
	"github.com/foxtail/fxt/internal/point"
	"go.uber.org/zap"
)

// Node owns one complete runtime: a shared Point database, the card- and
// HA-stateful arenas their payloads live in, and the set of Chassis
// threads driving them (spec §3 "Node", §5 resource policy).
type Node struct {
	id   uint32
	name string

	db        *point.Database
	cardArena *arena.Bump
	haArena   *arena.Bump

	cards    []card.Card
	chassis  []*chassis.Chassis
	logger   *zap.Logger

	haMu sync.Mutex
}

// ID returns the Node's id.
func (n *Node) ID() uint32 { return n.id }

// Name returns the Node's name.
func (n *Node) Name() string { return n.name }

// Database returns the Node's shared Point database (spec §4.2), used by
// the CLI's `pt` surface.
func (n *Node) Database() *point.Database { return n.db }

// Chassis returns the Node's Chassis list, for the CLI's `threads` command.
func (n *Node) Chassis() []*chassis.Chassis { return n.chassis }

// Cards returns every Card across every Chassis in the Node.
func (n *Node) Cards() []card.Card { return n.cards }

// Start starts every Card, every LogicChain, and launches every Chassis'
// cycle goroutine (spec §4.7 step f).
func (n *Node) Start() error {
	for _, ch := range n.chassis {
		if err := ch.Start(); err != nil {
			return err
		}
	}
	n.logger.Info("node started", zap.Uint32("node_id", n.id), zap.Int("chassis_count", len(n.chassis)))
	return nil
}

// Stop requests every Chassis to drain its current cycle, joins every Chassis
// thread within the given bound, then stops every Card (spec §5
// "Cancellation / shutdown"). Stopping a mock Card does not drive its
// outputs to a safe state; see chassis.StopCards.
func (n *Node) Stop(timeout time.Duration) error {
	for _, ch := range n.chassis {
		ch.RequestStop()
	}
	deadline := time.Now().Add(timeout)
	var joinErr error
	for _, ch := range n.chassis {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		ctx, cancel := context.WithTimeout(context.Background(), remaining)
		if err := ch.Join(ctx); err != nil && joinErr == nil {
			joinErr = err
		}
		cancel()
	}
	for _, ch := range n.chassis {
		if err := ch.StopCards(); err != nil && joinErr == nil {
			joinErr = err
		}
	}
	n.logger.Info("node stopped", zap.Uint32("node_id", n.id), zap.Error(joinErr))
	return joinErr
}

// LastError returns the first non-nil LastError across every Chassis, or
// nil if all Chassis are healthy (spec §4.6 "surfaced to the Node via
// get_error_code").
func (n *Node) LastError() error {
	for _, ch := range n.chassis {
		if err := ch.LastError(); err != nil {
			return err
		}
	}
	return nil
}

// SnapshotHA copies the entire HA-stateful arena (spec §6 "Persisted
// state", §9 HA-atomicity resolution: the caller must have quiesced every
// Chassis at a cycle boundary before calling this — Stop (or a future
// pause-at-boundary primitive) satisfies that).
func (n *Node) SnapshotHA() []byte {
	n.haMu.Lock()
	defer n.haMu.Unlock()
	return n.haArena.Snapshot()
}

// RestoreHA overwrites the HA-stateful arena from a blob produced by
// SnapshotHA on an identically configured Node. Callers must quiesce every
// Chassis first, same as SnapshotHA.
func (n *Node) RestoreHA(blob []byte) error {
	n.haMu.Lock()
	defer n.haMu.Unlock()
	return n.haArena.Restore(blob)
}

// Builder assembles the factory tables a Node's JSON is parsed against
// (spec §9: "explicit registration during Node construction"). Register
// every known Point/Card/Component factory before calling Build.
type Builder struct {
	points     *point.FactoryDatabase
	cards      *card.FactoryDatabase
	components *component.FactoryDatabase

	pointDBCapacity int
	generalBytes    int
	cardBytes       int
	haBytes         int
}

// NewBuilder creates an empty Builder. pointDBCapacity bounds the Node's
// shared Point database; cardBytes/haBytes size the card-stateful and
// HA-stateful arenas (spec §5). generalBytes is stored but not used: Build
// creates no general arena, and metadata lives on the Go heap.
func NewBuilder(pointDBCapacity, generalBytes, cardBytes, haBytes int) *Builder {
	return &Builder{
		points:          point.NewFactoryDatabase(),
		cards:           card.NewFactoryDatabase(),
		components:      component.NewFactoryDatabase(),
		pointDBCapacity: pointDBCapacity,
		generalBytes:    generalBytes,
		cardBytes:       cardBytes,
		haBytes:         haBytes,
	}
}

// RegisterPointFactory registers a Point Factory.
func (b *Builder) RegisterPointFactory(f point.Factory) { b.points.Register(f) }

// RegisterCardFactory registers a Card Factory.
func (b *Builder) RegisterCardFactory(f card.Factory) { b.cards.Register(f) }

// RegisterComponentFactory registers a Component Factory.
func (b *Builder) RegisterComponentFactory(f component.Factory) { b.components.Register(f) }

// Build parses a Node JSON document (spec §6) and constructs a complete
// Node, following spec §4.7 steps (b)-(e); Start (step f) is left to the
// caller so a validate-only path can stop short of running threads.
func (b *Builder) Build(jsonBytes []byte) (*Node, error) {
	var root jsoncodec.Object
	if err := jsoncodec.Unmarshal(jsonBytes, &root); err != nil {
		return nil, fmt.Errorf("node: %w: %v", fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse)), err)
	}
	nodeObj, ok := root["fxtNode"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("node: %w: missing fxtNode object", fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse)))
	}

	idF, _ := nodeObj["id"].(float64)
	name, _ := nodeObj["name"].(string)

	chassisList, ok := nodeObj["chassis"].([]any)
	if !ok || len(chassisList) == 0 {
		return nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeNoChassis))
	}

	n := &Node{
		id:        uint32(idF),
		name:      name,
		db:        point.NewDatabase(b.pointDBCapacity),
		cardArena: arena.NewBump("card-stateful", b.cardBytes),
		haArena:   arena.NewBump("ha-stateful", b.haBytes),
		logger:    obslog.Named("node").With(zap.Uint32("node_id", uint32(idF))),
	}

	var allChains []*logic.Chain
	for _, rawChassis := range chassisList {
		chObj, ok := rawChassis.(map[string]any)
		if !ok {
			return nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse))
		}
		ch, cards, chains, err := b.buildChassis(chObj, n)
		if err != nil {
			return nil, err
		}
		n.chassis = append(n.chassis, ch)
		n.cards = append(n.cards, cards...)
		allChains = append(allChains, chains...)
	}

	for _, chain := range allChains {
		if err := chain.ResolveReferences(n.db); err != nil {
			return nil, fmt.Errorf("node: %w", fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedResolve)))
		}
	}

	if err := applyInitialSetters(n.db); err != nil {
		return nil, err
	}

	return n, nil
}

func (b *Builder) buildChassis(chObj jsoncodec.Object, n *Node) (*chassis.Chassis, []card.Card, []*logic.Chain, error) {
	idF, _ := chObj["id"].(float64)
	name, _ := chObj["name"].(string)
	scanMsec, _ := chObj["scanRateMsec"].(float64)
	scanMult, _ := chObj["scanRateMultiplier"].(float64)
	if scanMsec <= 0 {
		scanMsec = 10
	}
	if scanMult <= 0 {
		scanMult = 1
	}
	period := time.Duration(scanMsec*scanMult) * time.Millisecond

	var cards []card.Card
	cardList, _ := chObj["cards"].([]any)
	for _, rawCard := range cardList {
		cardObj, ok := rawCard.(map[string]any)
		if !ok {
			return nil, nil, nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse))
		}
		cid, _ := cardObj["id"].(float64)
		cname, _ := cardObj["name"].(string)
		ctype, _ := cardObj["type"].(string)
		c, err := b.cards.Create(ctype, uint32(cid), cname, cardObj, n.db, n.cardArena, b.points)
		if err != nil {
			return nil, nil, nil, err
		}
		cards = append(cards, c)
	}

	var chains []*logic.Chain
	chainList, _ := chObj["logicChains"].([]any)
	for _, rawChain := range chainList {
		chainObj, ok := rawChain.(map[string]any)
		if !ok {
			return nil, nil, nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse))
		}
		chain, err := b.buildChain(chainObj, n)
		if err != nil {
			return nil, nil, nil, err
		}
		chains = append(chains, chain)
	}

	return chassis.New(uint32(idF), name, cards, chains, period), cards, chains, nil
}

func (b *Builder) buildChain(chainObj jsoncodec.Object, n *Node) (*logic.Chain, error) {
	name, _ := chainObj["name"].(string)

	var autoPoints []point.Point
	autoList, _ := chainObj["autoPoints"].([]any)
	for _, rawAuto := range autoList {
		autoObj, ok := rawAuto.(map[string]any)
		if !ok {
			return nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse))
		}
		aid, _ := autoObj["id"].(float64)
		aname, _ := autoObj["name"].(string)
		atype, _ := autoObj["type"].(string)
		pt, err := b.points.Create(atype, uint32(aid), aname, autoObj, n.haArena)
		if err != nil {
			return nil, err
		}
		if err := n.db.Insert(pt); err != nil {
			return nil, err
		}
		autoPoints = append(autoPoints, pt)
	}

	var comps []component.Component
	compList, _ := chainObj["components"].([]any)
	for _, rawComp := range compList {
		compObj, ok := rawComp.(map[string]any)
		if !ok {
			return nil, fxerr.Wrap(fxerr.NodeErr(fxerr.NodeFailedParse))
		}
		cname, _ := compObj["name"].(string)
		ctype, _ := compObj["type"].(string)
		comp, err := b.components.Create(ctype, cname, compObj, n.haArena)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return logic.NewChain(name, comps, autoPoints)
}

func applyInitialSetters(db *point.Database) error {
	for _, p := range db.All() {
		if p.Setter() != nil {
			if err := p.UpdateFromSetter(point.LockNoop); err != nil {
				return err
			}
		}
	}
	return nil
}
