//go:build tinygo

package motor

import (
	"machine"

	"tinygo.org/x/drivers/l9110x"
)

// Pins of one H-bridge input pair and the PWM slice driving them.
type Pins struct {
	PWM  l9110x.PWM
	A, B machine.Pin
}

// NewL9110x claims two channels per motor. Both PWM slices must already be
// configured with the same period.
func NewL9110x(left, right Pins) (*Driver, error) {
	bridge := func(p Pins) (*l9110x.PWMDevice, error) {
		ca, err := p.PWM.Channel(p.A)
		if err != nil {
			return nil, err
		}
		cb, err := p.PWM.Channel(p.B)
		if err != nil {
			return nil, err
		}
		dev := l9110x.NewWithSpeed(ca, cb, p.PWM)
		if err := dev.Configure(); err != nil {
			return nil, err
		}
		return &dev, nil
	}
	l, err := bridge(left)
	if err != nil {
		return nil, err
	}
	r, err := bridge(right)
	if err != nil {
		return nil, err
	}
	return New(l, r), nil
}
