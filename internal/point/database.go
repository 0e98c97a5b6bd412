package point

import (
	"fmt"

	"github.com/foxtail/fxt/internal/fxerr"
	"github.com/foxtail/fxt/internal/jsoncodec"
)

// Database is the bounded id->Point table every Node owns (spec §4.2): a
// fixed-capacity map sized at construction, giving O(1) lookup. No insert
// succeeds past capacity, and there is no removal or reset.
type Database struct {
	capacity int
	byID     map[uint32]Point
}

// NewDatabase creates an empty Database bounded to capacity entries.
func NewDatabase(capacity int) *Database {
	return &Database{capacity: capacity, byID: make(map[uint32]Point, capacity)}
}

// Insert adds p, keyed by its own ID. Fails if the ID is already present or
// the Database is at capacity.
func (d *Database) Insert(p Point) error {
	if _, exists := d.byID[p.ID()]; exists {
		return fxerr.Wrap(fxerr.PointErr(fxerr.PointFailedDBInsert))
	}
	if len(d.byID) >= d.capacity {
		return fxerr.Wrap(fxerr.PointErr(fxerr.PointFailedDBInsert))
	}
	d.byID[p.ID()] = p
	return nil
}

// Lookup returns the Point with the given id, if any.
func (d *Database) Lookup(id uint32) (Point, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Len reports the number of registered Points.
func (d *Database) Len() int { return len(d.byID) }

// Capacity reports the fixed capacity.
func (d *Database) Capacity() int { return d.capacity }

// All iterates every registered Point in unspecified order.
func (d *Database) All() []Point {
	out := make([]Point, 0, len(d.byID))
	for _, p := range d.byID {
		out = append(out, p)
	}
	return out
}

// ToJSON renders the named Point's full envelope (spec §4.1/§4.2).
func (d *Database) ToJSON(id uint32, verbose bool) (jsoncodec.Object, error) {
	p, ok := d.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("point database: no point with id %d", id)
	}
	return ToJSONObject(p, verbose), nil
}

// FromJSON applies a partial update described by obj (which must carry an
// "id" field) to the addressed Point.
func (d *Database) FromJSON(obj jsoncodec.Object) error {
	raw, ok := obj["id"]
	if !ok {
		return fmt.Errorf("point database: update object missing id")
	}
	f, ok := raw.(float64)
	if !ok {
		return fmt.Errorf("point database: id must be a number")
	}
	id := uint32(f)
	p, ok := d.Lookup(id)
	if !ok {
		return fmt.Errorf("point database: no point with id %d", id)
	}
	return FromJSONObject(p, obj)
}
