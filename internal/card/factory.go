package card

import (
	"fmt"

	"github.com/foxtail/fxt/internal/arena"
	"github.com/foxtail/fxt/internal/jsoncodec"
	"github.com/foxtail/fxt/internal/point"
)

// Factory builds one concrete Card type from a Node-config fragment (spec
// §4.7: "the caller assembles a factory table before parsing JSON"). cfg is
// the Card's JSON sub-object (spec §6); pointFactories/cardArena let the
// Card construct and register its own Points and IO registers.
type Factory interface {
	TypeGUID() string
	TypeName() string
	Create(id uint32, name string, cfg jsoncodec.Object, db *point.Database, cardArena *arena.Bump, pointFactories *point.FactoryDatabase) (Card, error)
}

// FactoryDatabase is the GUID-keyed registry of Card Factories a Node
// consults while parsing its Chassis configuration.
type FactoryDatabase struct {
	byGUID map[string]Factory
}

// NewFactoryDatabase creates an empty registry.
func NewFactoryDatabase() *FactoryDatabase {
	return &FactoryDatabase{byGUID: make(map[string]Factory)}
}

// Register adds f, keyed by its TypeGUID.
func (fd *FactoryDatabase) Register(f Factory) {
	fd.byGUID[f.TypeGUID()] = f
}

// Create resolves typeGUID to a Factory and builds a Card from cfg.
func (fd *FactoryDatabase) Create(typeGUID string, id uint32, name string, cfg jsoncodec.Object, db *point.Database, cardArena *arena.Bump, pointFactories *point.FactoryDatabase) (Card, error) {
	f, ok := fd.byGUID[typeGUID]
	if !ok {
		return nil, fmt.Errorf("card factory: unknown type guid %q", typeGUID)
	}
	return f.Create(id, name, cfg, db, cardArena, pointFactories)
}
