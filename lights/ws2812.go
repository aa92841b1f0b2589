//go:build tinygo

package lights

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// NewWS2812 returns a cleared strip of n pixels on pin.
func NewWS2812(pin machine.Pin, n int) (*Strip, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	s := New(ws2812.New(pin), n)
	s.Clear()
	return s, s.Show()
}
