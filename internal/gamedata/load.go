// Package gamedata provides the embedded prefab catalogue: every tile,
// pickup and actor the board generator can place.
package gamedata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPrefab is wrapped by every catalogue validation failure.
var ErrInvalidPrefab = errors.New("gamedata: invalid prefab")

//go:embed prefabs.json
var prefabsFS embed.FS

const prefabsFile = "prefabs.json"

// PrefabsFile represents the structure of prefabs.json.
type PrefabsFile struct {
	Prefabs []PrefabDef `json:"prefabs"`
}

// LoadPrefabs loads and validates the embedded prefab definitions.
func LoadPrefabs() ([]PrefabDef, error) {
	content, err := prefabsFS.ReadFile(prefabsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", prefabsFile, err)
	}
	return ParsePrefabs(content)
}

// ParsePrefabs decodes a prefab catalogue and checks every entry.
func ParsePrefabs(content []byte) ([]PrefabDef, error) {
	var file PrefabsFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prefabs: %w", err)
	}

	seen := make(map[string]bool, len(file.Prefabs))
	var problems []error
	for i := range file.Prefabs {
		p := &file.Prefabs[i]
		if p.ID == "" {
			problems = append(problems, fmt.Errorf("prefab %d: missing id", i))
			continue
		}
		if seen[p.ID] {
			problems = append(problems, fmt.Errorf("%s: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if err := p.validate(); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", p.ID, err))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrefab, errors.Join(problems...))
	}
	return file.Prefabs, nil
}

func (p *PrefabDef) validate() error {
	switch p.Kind {
	case KindFloor, KindOuterWall, KindExit, KindPlayer:
	case KindWall:
		if p.HP <= 0 {
			return fmt.Errorf("wall hp must be positive, got %d", p.HP)
		}
	case KindEnemy:
		if p.Damage <= 0 {
			return fmt.Errorf("enemy damage must be positive, got %d", p.Damage)
		}
	case KindFood:
		if p.Pickup != PickupFood && p.Pickup != PickupSoda {
			return fmt.Errorf("unknown pickup %q", p.Pickup)
		}
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Color != "" {
		if _, err := ParseColor(p.Color); err != nil {
			return err
		}
	}
	return nil
}
