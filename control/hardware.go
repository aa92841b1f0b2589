package control

import (
	"image/color"

	"github.com/Nabinho/OmniTrailer-V2.0/packet"
	"github.com/Nabinho/OmniTrailer-V2.0/status"
)

// Clock is a free-running millisecond counter. It is expected to wrap.
type Clock interface {
	Millis() uint32
}

// Receiver polls the radio without blocking. ok is false when no payload is
// queued; err is set when a payload was read but could not be trusted.
type Receiver interface {
	TryReceive() (s packet.Snapshot, ok bool, err error)
}

// Motors takes speeds in percent, sign giving direction. The drive policy
// never calls SetSpeedLeft.
type Motors interface {
	SetSpeedLeft(speed int16)
	SetSpeedRight(speed int16)
	Stop()
}

type Battery interface {
	ReadVoltage() uint32 // mV
}

// Strip is a light strip filled with a single colour.
type Strip interface {
	Fill(c color.RGBA)
	Show() error
}

type Indicator interface {
	SetPattern(p status.Pattern)
}
