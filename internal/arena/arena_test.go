package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpAllocAndOOM(t *testing.T) {
	b := NewBump("test", 8)
	s1, err := b.Alloc(4)
	require.NoError(t, err)
	s2, err := b.Alloc(4)
	require.NoError(t, err)

	copy(b.View(s1), []byte{1, 2, 3, 4})
	copy(b.View(s2), []byte{5, 6, 7, 8})
	require.Equal(t, []byte{1, 2, 3, 4}, b.View(s1))

	_, err = b.Alloc(1)
	require.Error(t, err)
}

func TestBumpSnapshotRestore(t *testing.T) {
	b := NewBump("test", 4)
	s, _ := b.Alloc(4)
	copy(b.View(s), []byte{9, 9, 9, 9})

	snap := b.Snapshot()

	copy(b.View(s), []byte{0, 0, 0, 0})
	require.NoError(t, b.Restore(snap))
	require.Equal(t, []byte{9, 9, 9, 9}, b.View(s))
}

func TestBumpReset(t *testing.T) {
	b := NewBump("test", 4)
	_, err := b.Alloc(4)
	require.NoError(t, err)
	require.Equal(t, 4, b.Used())

	b.Reset()
	require.Equal(t, 0, b.Used())
	_, err = b.Alloc(4)
	require.NoError(t, err)
}

type widget struct {
	name string
	val  int
}

func TestObjectsArena(t *testing.T) {
	o := NewObjects[widget]("widgets", 2)
	r1, err := o.Alloc(widget{name: "a", val: 1})
	require.NoError(t, err)
	r2, err := o.Alloc(widget{name: "b", val: 2})
	require.NoError(t, err)

	_, err = o.Alloc(widget{name: "c", val: 3})
	require.Error(t, err)

	require.Equal(t, "a", o.At(r1).name)
	o.At(r2).val = 42
	require.Equal(t, 42, o.At(r2).val)
}
