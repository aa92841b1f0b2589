package settings

import (
	"fmt"
	"image/color"
)

type Settings struct {
	DebounceTime     uint32 // unit:ms
	FailsafeInterval uint32 // unit:ms, link timeout
	BatteryFailsafe  uint32 // unit:ms, low battery tolerance
	LowBattery       uint32 // unit:mV, readings at or below count as low
	BlinkInterval    uint32 // unit:ms

	AxisLow   uint16 // below this the stick is deflected low
	AxisHigh  uint16 // above this the stick is deflected high
	AxisMax   uint16 // full scale of axes and sliders
	SpeedMin  int16  // unit:% slowest commanded speed
	SpeedMax  int16  // unit:% top of the slider envelope
	NumLEDs   uint8  // pixels per strip
	Brake     color.RGBA
	Indicator color.RGBA
}

var defaultSettings = Settings{
	DebounceTime:     100,
	FailsafeInterval: 2000,
	BatteryFailsafe:  500,
	LowBattery:       7000,
	BlinkInterval:    500,
	AxisLow:          500,
	AxisHigh:         550,
	AxisMax:          1023,
	SpeedMin:         65,
	SpeedMax:         100,
	NumLEDs:          4,
	Brake:            color.RGBA{R: 255, G: 0, B: 0, A: 255},
	Indicator:        color.RGBA{R: 255, G: 175, B: 0, A: 255},
}

func Default() Settings {
	return defaultSettings
}

func Validate(s Settings) error {
	if s.DebounceTime == 0 || s.DebounceTime > 1000 {
		return fmt.Errorf("invalid debounce time: %d", s.DebounceTime)
	}
	if s.FailsafeInterval == 0 {
		return fmt.Errorf("invalid failsafe interval: %d", s.FailsafeInterval)
	}
	if s.BatteryFailsafe == 0 {
		return fmt.Errorf("invalid battery failsafe: %d", s.BatteryFailsafe)
	}
	if s.BlinkInterval == 0 {
		return fmt.Errorf("invalid blink interval: %d", s.BlinkInterval)
	}
	if s.AxisLow >= s.AxisHigh || s.AxisHigh >= s.AxisMax {
		return fmt.Errorf("invalid dead zone: [%d,%d] of %d", s.AxisLow, s.AxisHigh, s.AxisMax)
	}
	if s.SpeedMin < 0 || s.SpeedMin > s.SpeedMax || s.SpeedMax > 100 {
		return fmt.Errorf("invalid speed range: %d..%d", s.SpeedMin, s.SpeedMax)
	}
	if s.NumLEDs == 0 {
		return fmt.Errorf("invalid led count: %d", s.NumLEDs)
	}
	return nil
}
