// Package motor drives the two wheel motors through H-bridges, taking speeds
// in percent.
package motor

import "github.com/Nabinho/OmniTrailer-V2.0/utils"

// Bridge is one H-bridge with PWM speed control. Speeds are percent of full
// duty, 0..100. *l9110x.PWMDevice satisfies it.
type Bridge interface {
	Forward(speed uint32)
	Backward(speed uint32)
	Stop()
}

type Driver struct {
	left  Bridge
	right Bridge
}

func New(left, right Bridge) *Driver {
	d := &Driver{left: left, right: right}
	d.Stop()
	return d
}

// SetSpeedLeft sets the left motor, -100..100. Values outside are clamped.
func (d *Driver) SetSpeedLeft(speed int16) {
	set(d.left, speed)
}

// SetSpeedRight sets the right motor, -100..100. Values outside are clamped.
func (d *Driver) SetSpeedRight(speed int16) {
	set(d.right, speed)
}

func (d *Driver) Stop() {
	d.left.Stop()
	d.right.Stop()
}

func set(b Bridge, speed int16) {
	speed = utils.Limit(speed, -100, 100)
	switch {
	case speed > 0:
		b.Forward(uint32(speed))
	case speed < 0:
		b.Backward(uint32(-speed))
	default:
		b.Stop()
	}
}
