package control

import (
	"github.com/Nabinho/OmniTrailer-V2.0/packet"
	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/utils"
)

// Direction of a stick axis relative to its dead zone.
type Direction int8

const (
	Low      Direction = -1
	Centered Direction = 0
	High     Direction = 1
)

// AxisDirection applies the asymmetric dead zone [AxisLow, AxisHigh].
func AxisDirection(v uint16, cfg settings.Settings) Direction {
	switch {
	case v > cfg.AxisHigh:
		return High
	case v < cfg.AxisLow:
		return Low
	}
	return Centered
}

// DriveCommand is what the motors get for one loop iteration. Only the right
// motor is ever commanded; the left one keeps whatever it last had.
type DriveCommand struct {
	Stop  bool
	Right int16
}

// Blink is the pair of turn signal requests.
type Blink struct {
	Right bool
	Left  bool
}

// SpeedEnvelope maps the averaged sliders onto [SpeedMin, SpeedMax]. Sliders
// fully up give the minimum.
func SpeedEnvelope(slider1, slider2 uint16, cfg settings.Settings) int16 {
	avg := (int32(slider1) + int32(slider2)) / 2
	return int16(utils.Map(avg, int32(cfg.AxisMax), 0, int32(cfg.SpeedMin), int32(cfg.SpeedMax)))
}

// MapDrive turns X1 (steer) and Y2 (throttle) into a motor command.
//
// Only the right motor is ever commanded by the turn logic. The sign follows
// X1, flips when Y2 is pulled back, and flips again in reverse steering mode
// (mode false). X1 inside its dead zone stops both motors.
func MapDrive(s packet.Snapshot, mode bool, speedMax int16, cfg settings.Settings) DriveCommand {
	turn := AxisDirection(s.X1, cfg)
	if turn == Centered {
		return DriveCommand{Stop: true}
	}

	var horizontal int16
	if turn == High {
		horizontal = utils.Map(int16(s.X1), int16(cfg.AxisHigh), int16(cfg.AxisMax), cfg.SpeedMin, speedMax)
	} else {
		horizontal = utils.Map(int16(s.X1), int16(cfg.AxisLow), 0, cfg.SpeedMin, speedMax)
	}

	sign := int16(turn)
	if AxisDirection(s.Y2, cfg) == Low {
		sign = -sign
	}
	if !mode {
		sign = -sign
	}
	return DriveCommand{Right: sign * horizontal}
}

// TurnSignals updates the blink requests from X1. Deflecting X1 high asks for
// the left signal, low for the right one. With blinking disabled a deflected
// stick keeps the previous requests; a centred stick clears both.
func TurnSignals(s packet.Snapshot, enabled bool, prev Blink, cfg settings.Settings) Blink {
	switch AxisDirection(s.X1, cfg) {
	case High:
		if enabled {
			return Blink{Left: true}
		}
	case Low:
		if enabled {
			return Blink{Right: true}
		}
	default:
		return Blink{}
	}
	return prev
}
