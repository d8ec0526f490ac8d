// Package audio plays a short blip whenever the rotating subtitle changes
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/labstack/gommon/log"

	"github.com/daml/herofx/constants"
)

// Player abstracts the output device so cues can be tested without a speaker
type Player interface {
	Play(s beep.Streamer)
	Close()
}

// speakerPlayer routes streams to the beep speaker
type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerPlayer) Close()               { speaker.Close() }

// Cue emits rate-limited sine blips
type Cue struct {
	player     Player
	sampleRate beep.SampleRate
	now        func() time.Time

	mu       sync.Mutex
	lastPlay time.Time
	played   int
}

// NewCue initializes the speaker when enabled
// A disabled cue or a failed speaker init yields a silent cue, sound is never fatal
func NewCue(enabled bool, logger *log.Logger) *Cue {
	sampleRate := beep.SampleRate(constants.CueSampleRate)
	if !enabled {
		return &Cue{sampleRate: sampleRate, now: time.Now}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueBufferDuration)); err != nil {
		logger.Warnf("audio init failed, continuing without sound: %v", err)
		return &Cue{sampleRate: sampleRate, now: time.Now}
	}
	return NewCueWithPlayer(speakerPlayer{}, sampleRate, time.Now)
}

// NewCueWithPlayer builds a cue on an explicit player and clock
func NewCueWithPlayer(player Player, sampleRate beep.SampleRate, now func() time.Time) *Cue {
	return &Cue{
		player:     player,
		sampleRate: sampleRate,
		now:        now,
	}
}

// Enabled reports whether the cue has an output
func (c *Cue) Enabled() bool {
	return c.player != nil
}

// Played returns the number of blips emitted
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Play emits one blip unless another was played within MinCueGap
func (c *Cue) Play() bool {
	if c.player == nil {
		return false
	}

	c.mu.Lock()
	now := c.now()
	if !c.lastPlay.IsZero() && now.Sub(c.lastPlay) < constants.MinCueGap {
		c.mu.Unlock()
		return false
	}
	c.lastPlay = now
	c.played++
	c.mu.Unlock()

	sine, err := generators.SineTone(c.sampleRate, constants.CueFrequency)
	if err != nil {
		return false
	}
	c.player.Play(beep.Take(c.sampleRate.N(constants.CueDuration), sine))
	return true
}

// Close releases the output device
func (c *Cue) Close() {
	if c.player != nil {
		c.player.Close()
	}
}
