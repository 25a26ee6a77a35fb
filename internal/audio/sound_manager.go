package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/rng"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays reactions and the background music. Until Initialize
// succeeds every call is a silent no-op, so the game runs without a sound device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	src         rng.Source
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume in [0, 1].
func NewSoundManager(volume float64, src rng.Source, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		src:    src,
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "sample_rate", int(sampleRate), "volume", sm.volume)
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Reaction builds one randomly chosen variant of cue at a random pitch.
// It returns nil for an unknown cue.
func (sm *SoundManager) Reaction(cue entity.Cue) beep.Streamer {
	variants := cueSets[cue]
	if len(variants) == 0 {
		return nil
	}
	tones := variants[sm.src.RangeInt(0, len(variants))]
	pitch := sm.src.RangeFloat(PitchMin, PitchMax)
	return newVolume(render(tones, pitch, sampleRate), sm.volume)
}

// PlayReaction plays cue.
func (sm *SoundManager) PlayReaction(cue entity.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := sm.Reaction(cue)
	if s == nil {
		sm.logger.Warn("unknown cue", "cue", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts the background music, or restarts it after StopMusic.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(newMusicGenerator(sampleRate), sm.volume)}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background music.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}
