package gamedata

import "github.com/gdamore/tcell/v2"

// PrefabKind groups prefabs into the pools the board generator draws from.
type PrefabKind string

const (
	KindFloor     PrefabKind = "floor"
	KindOuterWall PrefabKind = "outer_wall"
	KindWall      PrefabKind = "wall"
	KindFood      PrefabKind = "food"
	KindEnemy     PrefabKind = "enemy"
	KindExit      PrefabKind = "exit"
	KindPlayer    PrefabKind = "player"
)

// PickupKind tells the player which bonus a pickup grants.
type PickupKind string

const (
	PickupFood PickupKind = "food"
	PickupSoda PickupKind = "soda"
)

// PrefabDef defines a placeable object loaded from JSON.
type PrefabDef struct {
	ID           string     `json:"id"`                     // Unique identifier (e.g., "wall3")
	Kind         PrefabKind `json:"kind"`                   // Pool this prefab belongs to
	Glyph        string     `json:"glyph"`                  // Single character for rendering
	DamagedGlyph string     `json:"damagedGlyph,omitempty"` // Walls only: glyph once chopped
	Color        string     `json:"color"`                  // Hex color code
	HP           int        `json:"hp,omitempty"`           // Walls only
	Damage       int        `json:"damage,omitempty"`       // Enemies only: food lost by the player per hit
	Pickup       PickupKind `json:"pickup,omitempty"`       // Food pool only
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PrefabDef) GlyphRune() rune {
	if len(p.Glyph) == 0 {
		return '?'
	}
	return []rune(p.Glyph)[0]
}

// DamagedRune returns the damaged glyph, falling back to the normal glyph.
func (p *PrefabDef) DamagedRune() rune {
	if len(p.DamagedGlyph) == 0 {
		return p.GlyphRune()
	}
	return []rune(p.DamagedGlyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (p *PrefabDef) TCellColor() tcell.Color {
	color, err := ParseColor(p.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}
