// Package audio plays a short tone when a circle bounces off an edge.
package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Settings describe the chime.
type Settings struct {
	Frequency  float64
	Duration   time.Duration
	SampleRate int
	MinGap     time.Duration // shortest time between two chimes
}

// Chime plays a sine tone, at most once per MinGap.
type Chime struct {
	settings Settings
	rate     beep.SampleRate
	logger   *log.Logger

	play  func(beep.Streamer)
	now   func() time.Time
	ready bool
	last  time.Time

	played  int
	skipped int
}

// NewChime creates a chime. It stays silent until Init succeeds.
func NewChime(settings Settings, logger *log.Logger) *Chime {
	if logger == nil {
		logger = log.Default()
	}
	return &Chime{
		settings: settings,
		rate:     beep.SampleRate(settings.SampleRate),
		logger:   logger,
		play:     func(s beep.Streamer) { speaker.Play(s) },
		now:      time.Now,
	}
}

// Init opens the speaker. Failure leaves the chime silent and is returned
// so the caller can log it; the animation runs fine without sound.
func (c *Chime) Init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	c.ready = true
	c.logger.Debug("speaker ready", "sample_rate", c.settings.SampleRate)
	return nil
}

// Tone returns one chime's worth of samples.
func (c *Chime) Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(c.rate, c.settings.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to create tone: %w", err)
	}
	return beep.Take(c.rate.N(c.settings.Duration), sine), nil
}

// Play plays the chime unless one played less than MinGap ago.
func (c *Chime) Play() {
	if !c.ready {
		return
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.settings.MinGap {
		c.skipped++
		return
	}
	tone, err := c.Tone()
	if err != nil {
		c.logger.Warn("chime disabled", "err", err)
		c.ready = false
		return
	}
	c.last = now
	c.played++
	c.play(tone)
}

// Played returns how many chimes were started.
func (c *Chime) Played() int {
	return c.played
}

// Close stops playback and releases the speaker.
func (c *Chime) Close() {
	if !c.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.ready = false
}
