package audio

import (
	"sync"
	"time"

	"snake-arcade/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq      = 880.0
	eatLength    = 60 * time.Millisecond
	gameOverFreq = 220.0
	gameOverLen  = 400 * time.Millisecond
)

// Cues plays short tones when a target is eaten and when the session ends.
// An uninitialized Cues is silent.
type Cues struct {
	mu          sync.Mutex
	initialized bool
}

func NewCues() *Cues {
	return &Cues{}
}

// Initialize sets up the speaker
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	c.initialized = true
	return nil
}

// Cleanup stops anything still playing
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}

func (c *Cues) OnEat(score int) {
	c.play(eatFreq, eatLength)
}

func (c *Cues) OnGameOver(score int, reason manager.CollisionType) {
	c.play(gameOverFreq, gameOverLen)
}

func (c *Cues) play(freq float64, length time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := tone(freq, length)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// tone is a sine wave of freq Hz cut to length
func tone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", freq)
	}
	return beep.Take(sampleRate.N(length), sine), nil
}
