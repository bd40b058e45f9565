package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/bouncer/internal/animation"
	"chosenoffset.com/bouncer/internal/config"
	"chosenoffset.com/bouncer/internal/render"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{name: "info at info level", level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: true},
		{name: "debug at info level", level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
		{name: "debug at debug level", level: log.DebugLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, config.DefaultConfig(), configFromContext(ctx))

	logger := log.New(&bytes.Buffer{})
	cfg := config.DefaultConfig()
	cfg.Seed = 9
	ctx = withConfig(withLogger(ctx, logger), cfg)
	assert.Same(t, logger, loggerFromContext(ctx))
	assert.Equal(t, int64(9), configFromContext(ctx).Seed)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSpeedsCommand(t *testing.T) {
	out, err := execute(t, "speeds", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	for _, p := range animation.Presets {
		assert.Contains(t, out, p.Name)
	}
	assert.Contains(t, out, "25ms")
	assert.Contains(t, out, "(default)")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[animation]\ndefault_speed = \"warp\"\n"), 0o644))

	_, err := execute(t, "speeds", "--config", path)
	assert.Error(t, err)
}

func TestBadLogLevelFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, err := execute(t, "speeds", "--config", path)
	assert.Error(t, err)
}

func TestStartFlagsResolve(t *testing.T) {
	cfg := config.DefaultConfig()

	f := &startFlags{count: -1}
	count, speed, err := f.resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Animation.DefaultCount, count)
	assert.Equal(t, animation.Medium, speed)

	f = &startFlags{count: 5, speed: "40ms"}
	count, speed, err = f.resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, animation.Speed(40), speed)

	f = &startFlags{count: 5, speed: "warp"}
	_, _, err = f.resolve(cfg)
	assert.Error(t, err)

	f = &startFlags{count: cfg.Animation.MaxCount + 1}
	_, _, err = f.resolve(cfg)
	assert.Error(t, err)
}

// scriptedEngine runs a fixed number of frames.
type scriptedEngine struct {
	frames int
	tps    int
	ran    int
}

func (e *scriptedEngine) SetWindowSize(int, int)  {}
func (e *scriptedEngine) SetWindowTitle(string)   {}
func (e *scriptedEngine) SetWindowResizable(bool) {}
func (e *scriptedEngine) SetTPS(tps int)          { e.tps = tps }
func (e *scriptedEngine) RunGame(g render.Game) error {
	for e.ran = 0; e.ran < e.frames; e.ran++ {
		g.Layout(640, 480)
		if err := g.Update(); err != nil {
			if err == render.ErrQuit {
				return nil
			}
			return err
		}
		g.Draw(nopImage{})
	}
	return nil
}

type nopInput struct{}

func (nopInput) IsKeyPressed(render.Key) bool                     { return false }
func (nopInput) IsKeyJustPressed(render.Key) bool                 { return false }
func (nopInput) GetCursorPosition() (int, int)                    { return 0, 0 }
func (nopInput) IsMouseButtonPressed(render.MouseButton) bool     { return false }
func (nopInput) IsMouseButtonJustPressed(render.MouseButton) bool { return false }
func (nopInput) AppendInputChars(r []rune) []rune                 { return r }

type nopRenderer struct{}

func (nopRenderer) FillCircle(render.Image, float32, float32, float32, color.Color)            {}
func (nopRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {}
func (nopRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color)     {}
func (nopRenderer) DrawText(render.Image, string, int, int, color.Color, float64)              {}
func (nopRenderer) MeasureText(string, float64) (int, int)                                     { return 0, 0 }

type nopImage struct{}

func (nopImage) Bounds() image.Rectangle { return image.Rect(0, 0, 640, 480) }
func (nopImage) Size() (int, int)        { return 640, 480 }
func (nopImage) Fill(color.Color)        {}
func (nopImage) Clear()                  {}
func (nopImage) Dispose()                {}

func TestRunDrivesGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 3
	engine := &scriptedEngine{frames: 10}
	var out, logs bytes.Buffer
	logger := newLogger(&logs, log.InfoLevel)

	s := screen{width: 640, height: 480, tps: 60, maxRadius: 40}
	err := run(context.Background(), &out, engine, nopRenderer{}, nopInput{}, cfg, s, &startFlags{count: 4, speed: "fast"}, logger)
	require.NoError(t, err)

	assert.Equal(t, 10, engine.ran)
	assert.Equal(t, 60, engine.tps)
	assert.Contains(t, out.String(), "Fast")
	assert.Contains(t, logs.String(), "spawned")
	assert.Contains(t, logs.String(), "circles=4")
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	engine := &scriptedEngine{frames: 10}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := screen{width: 640, height: 480, tps: 60, maxRadius: 40}
	err := run(ctx, &bytes.Buffer{}, engine, nopRenderer{}, nopInput{}, cfg, s, &startFlags{count: 1}, log.New(&bytes.Buffer{}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, engine.ran)
}
