package animation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Speed is a tick interval in milliseconds. Smaller is faster.
type Speed int

// Speed presets offered to the user.
const (
	Glacial Speed = 100
	Slow    Speed = 60
	Medium  Speed = 25
	Fast    Speed = 1
)

// Preset pairs a display name with a speed.
type Preset struct {
	Name  string
	Speed Speed
}

// Presets lists the speed choices in display order.
var Presets = []Preset{
	{Name: "Glacial", Speed: Glacial},
	{Name: "Slow", Speed: Slow},
	{Name: "Medium", Speed: Medium},
	{Name: "Fast", Speed: Fast},
}

// Interval converts the speed to a tick interval.
func (s Speed) Interval() time.Duration {
	return time.Duration(s) * time.Millisecond
}

func (s Speed) String() string {
	for _, p := range Presets {
		if p.Speed == s {
			return p.Name
		}
	}
	return fmt.Sprintf("%dms", int(s))
}

// ParseSpeed accepts a preset name (any case) or a positive number of milliseconds.
func ParseSpeed(s string) (Speed, error) {
	s = strings.TrimSpace(s)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, s) {
			return p.Speed, nil
		}
	}
	ms, err := strconv.Atoi(strings.TrimSuffix(s, "ms"))
	if err != nil {
		return 0, fmt.Errorf("unknown speed %q", s)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("speed must be positive, got %d", ms)
	}
	return Speed(ms), nil
}

// PresetIndex returns the position of s in Presets, or -1.
func PresetIndex(s Speed) int {
	for i, p := range Presets {
		if p.Speed == s {
			return i
		}
	}
	return -1
}
