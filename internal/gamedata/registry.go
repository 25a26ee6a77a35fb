package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/scavenger/internal/world"
)

// PrefabRegistry holds loaded prefab definitions and provides lookup utilities.
type PrefabRegistry struct {
	prefabs map[string]*PrefabDef
	all     []PrefabDef
}

// NewPrefabRegistry creates a registry from loaded prefab definitions.
func NewPrefabRegistry(prefabs []PrefabDef) *PrefabRegistry {
	registry := &PrefabRegistry{
		prefabs: make(map[string]*PrefabDef),
		all:     prefabs,
	}
	for i := range prefabs {
		registry.prefabs[prefabs[i].ID] = &prefabs[i]
	}
	return registry
}

// LoadPrefabRegistry loads and creates a registry from the embedded prefabs.json.
func LoadPrefabRegistry() (*PrefabRegistry, error) {
	prefabs, err := LoadPrefabs()
	if err != nil {
		return nil, err
	}
	if len(prefabs) == 0 {
		return nil, errors.New("no prefabs loaded from prefabs.json")
	}
	return NewPrefabRegistry(prefabs), nil
}

// MustLoadPrefabRegistry loads a registry, panicking on error.
func MustLoadPrefabRegistry() *PrefabRegistry {
	registry, err := LoadPrefabRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the prefab definition with the given ID, or nil if not found.
func (r *PrefabRegistry) GetByID(id string) *PrefabDef {
	return r.prefabs[id]
}

// Pool returns the IDs of every prefab of the given kind, in file order.
func (r *PrefabRegistry) Pool(kind PrefabKind) []string {
	var ids []string
	for _, p := range r.all {
		if p.Kind == kind {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// TilePools returns the generator pools built from the registry.
func (r *PrefabRegistry) TilePools() (world.TilePools, error) {
	pools := world.TilePools{
		Floor:     r.Pool(KindFloor),
		Wall:      r.Pool(KindWall),
		Food:      r.Pool(KindFood),
		Enemy:     r.Pool(KindEnemy),
		OuterWall: r.Pool(KindOuterWall),
	}
	exits := r.Pool(KindExit)
	if len(exits) == 0 {
		return pools, fmt.Errorf("gamedata: no %s prefab defined", KindExit)
	}
	pools.Exit = exits[0]
	return pools, nil
}

// All returns all prefab definitions.
func (r *PrefabRegistry) All() []PrefabDef {
	return r.all
}

// Count returns the number of prefabs in the registry.
func (r *PrefabRegistry) Count() int {
	return len(r.all)
}
