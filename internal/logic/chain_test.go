package logic

import (
	"errors"
	"testing"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/component"
	"github.com/foxtail/fxt/internal/component/digital"
	"github.com/foxtail/fxt/internal/point"
	"github.com/stretchr/testify/require"
)

func TestChainRejectsEmptyComponentList(t *testing.T) {
	_, err := NewChain("c0", nil, nil)
	require.Error(t, err)
}

func TestChainExecutesComponentAndReportsNoError(t *testing.T) {
	a := arena.NewBump("ha", 4096)
	db := point.NewDatabase(8)
	p0, err := point.NewScalar[bool](0, "p0", "fxt.point.bool", "Fxt::Point::Bool", a)
	require.NoError(t, err)
	q0, err := point.NewScalar[bool](1, "q0", "fxt.point.bool", "Fxt::Point::Bool", a)
	require.NoError(t, err)
	require.NoError(t, db.Insert(p0))
	require.NoError(t, db.Insert(q0))

	g, err := digital.NewGate("and0", "fxt.component.and", digital.And, true,
		[]component.Ref{{ID: 0}}, []component.Ref{{ID: 1}})
	require.NoError(t, err)

	chain, err := NewChain("chain0", []component.Component{g}, nil)
	require.NoError(t, err)
	require.NoError(t, chain.ResolveReferences(db))
	require.NoError(t, chain.Start(0))

	p0.Write(true, point.LockNoop)
	require.NoError(t, chain.Execute(1))
	v, ok := q0.Read()
	require.True(t, ok)
	require.True(t, v)
	require.NoError(t, chain.LastError())
}

func TestChainStartRollsBackOnPartialFailure(t *testing.T) {
	ok1 := &fakeComponent{}
	failing := &fakeComponent{startErr: errors.New("boom")}
	chain, err := NewChain("c0", []component.Component{ok1, failing}, nil)
	require.NoError(t, err)

	err = chain.Start(0)
	require.Error(t, err)
	require.True(t, ok1.stopped, "previously started component must be rolled back")
}

type fakeComponent struct {
	startErr error
	stopped  bool
}

func (f *fakeComponent) Name() string                                  { return "fake" }
func (f *fakeComponent) TypeGUID() string                              { return "fxt.component.fake" }
func (f *fakeComponent) ResolveReferences(db *point.Database) error    { return nil }
func (f *fakeComponent) Start(nowUS int64) error                       { return f.startErr }
func (f *fakeComponent) Stop()                                         { f.stopped = true }
func (f *fakeComponent) Execute(nowUS int64) error                     { return nil }
