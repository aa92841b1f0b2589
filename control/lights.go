package control

import (
	"errors"
	"image/color"

	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/utils"
)

var black color.RGBA

// Frame is the colour of each strip for one render.
type Frame struct {
	Left  color.RGBA
	Right color.RGBA
}

// Lights renders brake and turn signals. The blink phase is shared by both
// sides so the indicators stay in step.
type Lights struct {
	brake      color.RGBA
	indicator  color.RGBA
	interval   uint32
	phase      bool
	lastToggle uint32
}

func NewLights(cfg settings.Settings) Lights {
	return Lights{
		brake:     cfg.Brake,
		indicator: cfg.Indicator,
		interval:  cfg.BlinkInterval,
		phase:     true,
	}
}

func (l *Lights) Phase() bool {
	return l.phase
}

// Render advances the blink phase and composes the frame. Turn signals win
// over the brake colour on their side.
func (l *Lights) Render(brake, right, left bool, now uint32) Frame {
	if (right || left) && utils.Elapsed(now, l.lastToggle) > l.interval {
		l.phase = !l.phase
		l.lastToggle = now
	}

	var f Frame
	if brake {
		f.Left, f.Right = l.brake, l.brake
	}
	signal := black
	if l.phase {
		signal = l.indicator
	}
	if right {
		f.Right = signal
	}
	if left {
		f.Left = signal
	}
	return f
}

// Show fills both strips and flushes them, right first.
func (f Frame) Show(left, right Strip) error {
	right.Fill(f.Right)
	left.Fill(f.Left)
	return errors.Join(right.Show(), left.Show())
}
