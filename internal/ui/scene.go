package ui

import (
	"sort"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/gamedata"
	"github.com/samdwyer/scavenger/internal/world"
)

// AnimationFrames is how many ticks a triggered animation stays visible.
const AnimationFrames = 8

// AudioSink plays cue sets and background music.
type AudioSink interface {
	PlayReaction(cue entity.Cue)
	StopMusic()
}

// Object is one instantiated visual.
type Object struct {
	Handle  entity.Handle
	Def     *gamedata.PrefabDef
	Pos     world.Vec
	Damaged bool
	Anim    entity.Animation
	// AnimLeft counts down the ticks the animation stays visible.
	AnimLeft int
}

// Layer orders objects for drawing; higher layers draw on top.
func (o *Object) Layer() int {
	switch o.Def.Kind {
	case gamedata.KindFloor, gamedata.KindOuterWall:
		return 0
	case gamedata.KindExit, gamedata.KindFood:
		return 1
	case gamedata.KindWall:
		return 2
	case gamedata.KindEnemy:
		return 3
	case gamedata.KindPlayer:
		return 4
	default:
		return 1
	}
}

// Glyph returns the rune currently shown for the object.
func (o *Object) Glyph() rune {
	if o.Damaged {
		return o.Def.DamagedRune()
	}
	return o.Def.GlyphRune()
}

// Scene tracks everything the core has instantiated. It implements
// entity.Effects and forwards cues to an AudioSink.
type Scene struct {
	registry *gamedata.PrefabRegistry
	audio    AudioSink
	next     entity.Handle
	objects  map[entity.Handle]*Object
	texts    map[entity.TextSlot]string
}

// NewScene creates an empty scene. audio may be nil.
func NewScene(registry *gamedata.PrefabRegistry, audio AudioSink) *Scene {
	return &Scene{
		registry: registry,
		audio:    audio,
		objects:  make(map[entity.Handle]*Object),
		texts:    make(map[entity.TextSlot]string),
	}
}

// Instantiate adds a visual for prefab at the given position.
func (s *Scene) Instantiate(prefab string, at world.Vec) entity.Handle {
	def := s.registry.GetByID(prefab)
	if def == nil {
		def = &gamedata.PrefabDef{ID: prefab}
	}
	s.next++
	s.objects[s.next] = &Object{Handle: s.next, Def: def, Pos: at}
	return s.next
}

// Place moves a visual.
func (s *Scene) Place(h entity.Handle, at world.Vec) {
	if o := s.objects[h]; o != nil {
		o.Pos = at
	}
}

// SetTrigger starts a one-shot animation on a visual.
func (s *Scene) SetTrigger(h entity.Handle, anim entity.Animation) {
	if o := s.objects[h]; o != nil {
		o.Anim = anim
		o.AnimLeft = AnimationFrames
	}
}

// SetSprite swaps a visual's sprite.
func (s *Scene) SetSprite(h entity.Handle, sprite entity.Sprite) {
	if o := s.objects[h]; o != nil {
		o.Damaged = sprite == entity.SpriteDamaged
	}
}

// Deactivate removes a visual.
func (s *Scene) Deactivate(h entity.Handle) {
	delete(s.objects, h)
}

// ClearScene removes every visual. Text stays.
func (s *Scene) ClearScene() {
	s.objects = make(map[entity.Handle]*Object)
}

// PlayReaction forwards a cue to the audio sink.
func (s *Scene) PlayReaction(cue entity.Cue) {
	if s.audio != nil {
		s.audio.PlayReaction(cue)
	}
}

// StopMusic forwards to the audio sink.
func (s *Scene) StopMusic() {
	if s.audio != nil {
		s.audio.StopMusic()
	}
}

// ShowText sets a UI text line.
func (s *Scene) ShowText(slot entity.TextSlot, text string) {
	s.texts[slot] = text
}

// Text returns the current text of slot.
func (s *Scene) Text(slot entity.TextSlot) string {
	return s.texts[slot]
}

// Step counts down running animations by one tick.
func (s *Scene) Step() {
	for _, o := range s.objects {
		if o.AnimLeft > 0 {
			o.AnimLeft--
			if o.AnimLeft == 0 {
				o.Anim = ""
			}
		}
	}
}

// Object returns the visual for h, or nil.
func (s *Scene) Object(h entity.Handle) *Object {
	return s.objects[h]
}

// Len returns the number of live visuals.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns live visuals in draw order: by layer, then by handle.
func (s *Scene) Objects() []*Object {
	objs := make([]*Object, 0, len(s.objects))
	for _, o := range s.objects {
		objs = append(objs, o)
	}
	sort.Slice(objs, func(i, j int) bool {
		li, lj := objs[i].Layer(), objs[j].Layer()
		if li != lj {
			return li < lj
		}
		return objs[i].Handle < objs[j].Handle
	})
	return objs
}
