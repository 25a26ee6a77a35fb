package audio

import (
	"time"

	"github.com/samdwyer/scavenger/internal/entity"
)

const (
	// PitchMin and PitchMax bound the random pitch applied to each reaction.
	PitchMin = 0.95
	PitchMax = 1.05
)

// cueSets holds the interchangeable variants of every cue.
var cueSets = map[entity.Cue][][]tone{
	entity.CueMove: {
		{{freq: 180, duration: 50 * time.Millisecond, wave: WaveNoise}},
		{{freq: 160, duration: 60 * time.Millisecond, wave: WaveNoise}},
	},
	entity.CueEat: {
		{{freq: 523.25, duration: 80 * time.Millisecond, wave: WaveSquare}, {freq: 659.25, duration: 120 * time.Millisecond, wave: WaveSquare}},
		{{freq: 587.33, duration: 80 * time.Millisecond, wave: WaveSquare}, {freq: 783.99, duration: 120 * time.Millisecond, wave: WaveSquare}},
	},
	entity.CueDrink: {
		{{freq: 880, duration: 60 * time.Millisecond, wave: WaveSine}, {freq: 1174.66, duration: 60 * time.Millisecond, wave: WaveSine}, {freq: 1318.51, duration: 100 * time.Millisecond, wave: WaveSine}},
		{{freq: 783.99, duration: 60 * time.Millisecond, wave: WaveSine}, {freq: 1046.5, duration: 60 * time.Millisecond, wave: WaveSine}, {freq: 1318.51, duration: 100 * time.Millisecond, wave: WaveSine}},
	},
	entity.CueChop: {
		{{freq: 0, duration: 90 * time.Millisecond, wave: WaveNoise}, {freq: 120, duration: 60 * time.Millisecond, wave: WaveSaw}},
		{{freq: 0, duration: 70 * time.Millisecond, wave: WaveNoise}, {freq: 100, duration: 80 * time.Millisecond, wave: WaveSaw}},
	},
	entity.CueEnemyAttack: {
		{{freq: 90, duration: 150 * time.Millisecond, wave: WaveSaw}},
		{{freq: 75, duration: 180 * time.Millisecond, wave: WaveSaw}},
	},
	entity.CueGameOver: {
		{
			{freq: 392, duration: 250 * time.Millisecond, wave: WaveSquare},
			{freq: 329.63, duration: 250 * time.Millisecond, wave: WaveSquare},
			{freq: 261.63, duration: 600 * time.Millisecond, wave: WaveSquare},
		},
	},
}

// Variants returns the number of variants defined for cue.
func Variants(cue entity.Cue) int {
	return len(cueSets[cue])
}
