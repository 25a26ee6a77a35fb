package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/rng"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("sample %d out of range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return 0
}

func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	if got, want := drain(t, osc), rate.N(10*time.Millisecond); got != want {
		t.Errorf("oscillator streamed %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v, want nil", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Stream() = %d, %v, want 50, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("square sample %d = %f, want +-1", i, v)
		}
	}
}

func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Stream() = %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at the start of the attack", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("release should fade: %f >= %f", samples[99][0], samples[90][0])
	}
}

func TestVariants(t *testing.T) {
	tests := []struct {
		cue  entity.Cue
		want int
	}{
		{entity.CueMove, 2},
		{entity.CueEat, 2},
		{entity.CueDrink, 2},
		{entity.CueChop, 2},
		{entity.CueEnemyAttack, 2},
		{entity.CueGameOver, 1},
		{entity.Cue("missing"), 0},
	}

	for _, tt := range tests {
		if got := Variants(tt.cue); got != tt.want {
			t.Errorf("Variants(%q) = %d, want %d", tt.cue, got, tt.want)
		}
	}
}

func TestReactionLength(t *testing.T) {
	sm := NewSoundManager(0.5, rng.New(7), nil)
	allowed := map[int]bool{
		sampleRate.N(150 * time.Millisecond): true,
		sampleRate.N(180 * time.Millisecond): true,
	}

	for i := 0; i < 10; i++ {
		s := sm.Reaction(entity.CueEnemyAttack)
		if s == nil {
			t.Fatal("Reaction() = nil for a known cue")
		}
		if got := drain(t, s); !allowed[got] {
			t.Errorf("reaction streamed %d samples, want one of the variant lengths", got)
		}
	}

	if sm.Reaction(entity.Cue("missing")) != nil {
		t.Error("Reaction() should be nil for an unknown cue")
	}
}

func TestSoundManagerSilentWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(2, rng.New(1), nil)
	if sm.volume != 1 {
		t.Errorf("volume = %f, want clamped to 1", sm.volume)
	}

	sm.PlayReaction(entity.CueChop)
	sm.StartMusic()
	sm.StopMusic()
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0 without a speaker", sm.mixer.Len())
	}
}

func TestMusicNeverEnds(t *testing.T) {
	g := newMusicGenerator(beep.SampleRate(8000))
	buf := make([][2]float64, 4096)
	for i := 0; i < 20; i++ {
		if n, ok := g.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("Stream() = %d, %v on pass %d", n, ok, i)
		}
	}
}
