package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/bouncer/internal/animation"
	"chosenoffset.com/bouncer/internal/audio"
	"chosenoffset.com/bouncer/internal/config"
	"chosenoffset.com/bouncer/internal/game"
	"chosenoffset.com/bouncer/internal/render"
)

// startFlags are the flags shared by the front-end commands.
type startFlags struct {
	count int
	speed string
	sound bool
}

func (f *startFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", -1, "circles to spawn at start (default from config)")
	cmd.Flags().StringVarP(&f.speed, "speed", "s", "", "speed preset or interval in ms (default from config)")
	cmd.Flags().BoolVar(&f.sound, "sound", false, "chime when a circle hits an edge")
}

// resolve returns the starting count and speed, falling back to cfg.
func (f *startFlags) resolve(cfg *config.Config) (int, animation.Speed, error) {
	count := f.count
	if count < 0 {
		count = cfg.Animation.DefaultCount
	}
	if count > cfg.Animation.MaxCount {
		return 0, 0, fmt.Errorf("count %d exceeds max_count %d", count, cfg.Animation.MaxCount)
	}

	if f.speed == "" {
		speed, err := cfg.Speed()
		return count, speed, err
	}
	speed, err := animation.ParseSpeed(f.speed)
	if err != nil {
		return 0, 0, fmt.Errorf("--speed: %w", err)
	}
	return count, speed, nil
}

// screen describes the surface one front end draws on.
type screen struct {
	width, height int
	tps           int
	maxRadius     int
}

func gameOptions(cfg *config.Config, s screen, count int, speed animation.Speed) game.Options {
	return game.Options{
		Width:        s.width,
		Height:       s.height,
		TPS:          s.tps,
		PanelHeight:  cfg.Panel.Height,
		MaxRadius:    s.maxRadius,
		MaxCount:     cfg.Animation.MaxCount,
		MaxCatchUp:   cfg.Animation.MaxCatchUp,
		DefaultCount: count,
		DefaultSpeed: speed,
		Seed:         cfg.Seed,
	}
}

// openChime returns a ready chime, or nil when sound is off or unavailable.
func openChime(cfg *config.Config, enabled bool, logger *log.Logger) *audio.Chime {
	if !enabled && !cfg.Audio.Enabled {
		return nil
	}
	chime := audio.NewChime(audio.Settings{
		Frequency:  cfg.Audio.Frequency,
		Duration:   time.Duration(cfg.Audio.DurationMS) * time.Millisecond,
		SampleRate: cfg.Audio.SampleRate,
		MinGap:     time.Duration(cfg.Audio.MinGapMS) * time.Millisecond,
	}, logger)
	if err := chime.Init(); err != nil {
		// Non-fatal, the animation runs without sound
		logger.Warn("audio unavailable", "err", err)
		return nil
	}
	return chime
}

// run builds the manager, spawns the starting circles and blocks in the engine.
func run(ctx context.Context, w io.Writer, engine render.Engine, r render.Renderer, input render.InputManager, cfg *config.Config, s screen, f *startFlags, logger *log.Logger) error {
	count, speed, err := f.resolve(cfg)
	if err != nil {
		return err
	}

	opts := gameOptions(cfg, s, count, speed)
	if chime := openChime(cfg, f.sound, logger); chime != nil {
		defer chime.Close()
		opts.OnBounce = chime.Play
	}

	m := game.NewManager(r, input, opts, logger)
	m.Queue(count, speed)

	printKeyValue(w, "circles", strconv.Itoa(count))
	printKeyValue(w, "speed", speed.String())
	printHint(w, "Enter spawns, Space pauses and resumes, Esc or q quits")

	engine.SetTPS(s.tps)
	if err := engine.RunGame(stopOnCancel{Game: m, ctx: ctx}); err != nil {
		return fmt.Errorf("animation stopped: %w", err)
	}
	logger.Info("bye", "circles", m.Scene.Len(), "moves", m.Scene.Moves())
	return ctx.Err()
}

// stopOnCancel ends the run once ctx is cancelled.
type stopOnCancel struct {
	render.Game
	ctx context.Context
}

func (g stopOnCancel) Update() error {
	if g.ctx.Err() != nil {
		return render.ErrQuit
	}
	return g.Game.Update()
}
