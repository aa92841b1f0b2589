// Package status drives the on-board indicator LED.
//
// The LED is solid while the radio link is up, flashes slowly while waiting
// for the first packet, flashes fast on a low battery and is dark after the
// link is lost.
package status

import "github.com/Nabinho/OmniTrailer-V2.0/utils"

type Pattern int

const (
	Off Pattern = iota
	On
	SlowFlash
	FastFlash
)

func (p Pattern) String() string {
	switch p {
	case Off:
		return "off"
	case On:
		return "on"
	case SlowFlash:
		return "slow-flash"
	case FastFlash:
		return "fast-flash"
	}
	return "unknown"
}

const (
	slowPeriod = 250 // ms
	fastPeriod = 50  // ms
)

// Pin is satisfied by machine.Pin configured as output.
type Pin interface {
	High()
	Low()
}

type LED struct {
	pin        Pin
	pattern    Pattern
	lastToggle uint32
	isOn       bool
}

func New(pin Pin) *LED {
	pin.Low()
	return &LED{pin: pin, pattern: Off}
}

func (l *LED) SetPattern(p Pattern) {
	l.pattern = p
}

func (l *LED) Pattern() Pattern {
	return l.pattern
}

func (l *LED) IsOn() bool {
	return l.isOn
}

// Update advances the flash cadence. Call it every loop iteration.
func (l *LED) Update(now uint32) {
	switch l.pattern {
	case Off:
		l.set(false)
	case On:
		l.set(true)
	case SlowFlash:
		l.flash(now, slowPeriod)
	case FastFlash:
		l.flash(now, fastPeriod)
	}
}

func (l *LED) flash(now, period uint32) {
	if utils.Elapsed(now, l.lastToggle) >= period {
		l.set(!l.isOn)
		l.lastToggle = now
	}
}

func (l *LED) set(on bool) {
	if on {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	l.isOn = on
}
