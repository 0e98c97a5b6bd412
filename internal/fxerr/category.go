// Package fxerr implements the hierarchical error taxonomy shared by the
// Point, Card, Component, LogicChain, Chassis and Node subsystems: a single
// 32-bit value, interpreted outer-to-inner as up to four 8-bit bytes, that
// decodes into a colon-joined human path such as "CARD:BAD_CHANNEL_ASSIGNMENTS".
//
// Categories form a tree rooted at Root. A category either holds leaf codes
// (an enumeration of specific faults) or child categories (a nested
// sub-taxonomy), and — per Component:Digital — sometimes both: a category
// first tries to resolve the next byte against its registered children, and
// only falls back to its own leaf table when no child claims that id. Child
// ids are therefore drawn from a disjoint range (0x80+) so they can never be
// mistaken for a leaf code.
package fxerr

import "strings"

const childIDBase = 0x80

// Category is one node of the error taxonomy tree.
type Category struct {
	name     string
	id       byte
	depth    int
	parent   *Category
	children map[byte]*Category
	nextKid  byte
	leaves   LeafSet
}

// Root is the single rooted ErrorCategoriesRoot. It carries no leaf codes of
// its own — Error(0) (SUCCESS) bypasses the tree entirely.
var Root = &Category{name: "", id: 0, depth: 0, children: map[byte]*Category{}}

var nextTopLevelID byte = 1

// Register adds a new top-level category under Root with an automatically
// assigned id, mirroring the explicit factory-table registration spec §9
// calls for in place of C++ static-init ordering.
func Register(name string, leaves LeafSet) *Category {
	return registerUnder(Root, name, leaves)
}

// Register adds a nested child category under c (e.g. COMPONENT:DIGITAL).
func (c *Category) Register(name string, leaves LeafSet) *Category {
	return registerUnder(c, name, leaves)
}

func registerUnder(parent *Category, name string, leaves LeafSet) *Category {
	var id byte
	if parent == Root {
		id = nextTopLevelID
		nextTopLevelID++
	} else {
		id = childIDBase + parent.nextKid
		parent.nextKid++
	}
	cat := &Category{
		name:     name,
		id:       id,
		depth:    parent.depth + 1,
		parent:   parent,
		children: map[byte]*Category{},
		leaves:   leaves,
	}
	parent.children[id] = cat
	return cat
}

// Encode composes a full Error value from this category's path (root to
// here) plus a leaf byte.
func (c *Category) Encode(leaf byte) Error {
	chain := c.chain()
	var v uint32
	for i, cat := range chain {
		v |= uint32(cat.id) << uint(8*i)
	}
	v |= uint32(leaf) << uint(8*len(chain))
	return Error(v)
}

func (c *Category) chain() []*Category {
	var out []*Category
	for cur := c; cur != nil && cur != Root; cur = cur.parent {
		out = append([]*Category{cur}, out...)
	}
	return out
}

// LeafSet maps a category's leaf byte values to their symbolic names,
// standing in for the BETTER-ENUM-style leaf enumeration of the source.
type LeafSet struct {
	names []string
}

// NewLeafSet builds a LeafSet from names in ascending code order, names[0]
// conventionally being "SUCCESS".
func NewLeafSet(names ...string) LeafSet {
	return LeafSet{names: names}
}

// Name returns the symbolic name for code, or "<unknown>" if out of range.
func (l LeafSet) Name(code byte) string {
	if int(code) >= len(l.names) {
		return "<unknown>"
	}
	return l.names[code]
}

// decodeText walks v outer-to-inner, resolving each byte against the current
// category's children first, falling back to its leaf table. Unknown bytes
// at either level render "<unknown>" and end the walk.
func decodeText(v uint32) string {
	if v == 0 {
		return "SUCCESS"
	}
	bs := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	cat := Root
	var parts []string
	for i := 0; i < 4; i++ {
		b := bs[i]
		if child, ok := cat.children[b]; ok {
			parts = append(parts, child.name)
			cat = child
			continue
		}
		if cat == Root {
			// Byte0 didn't match any registered top-level category at all.
			return "<unknown>"
		}
		parts = append(parts, cat.leaves.Name(b))
		break
	}
	if len(parts) == 0 {
		return "<unknown>"
	}
	return strings.Join(parts, ":")
}
