// Package packet is the wire format of the controller state sent by the
// handheld transmitter.
package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	NumButtons = 6
	// Size is the nRF24 payload size: 6 button bytes then six uint16 fields,
	// little endian, no padding.
	Size = NumButtons + 6*2

	AxisMax = 1023
)

var (
	ErrPayloadSize = errors.New("packet: wrong payload size")
	ErrOutOfRange  = errors.New("packet: value out of range")
)

// Snapshot is one decoded controller packet.
type Snapshot struct {
	Buttons [NumButtons]bool
	X1      uint16
	Y1      uint16
	X2      uint16
	Y2      uint16
	Slider1 uint16
	Slider2 uint16
}

// Neutral returns a snapshot with both sticks centred, sliders down and no
// buttons pressed.
func Neutral() Snapshot {
	return Snapshot{X1: 525, Y1: 525, X2: 525, Y2: 525}
}

func Decode(b []byte) (Snapshot, error) {
	var s Snapshot
	err := s.UnmarshalBinary(b)
	return s, err
}

func (s *Snapshot) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPayloadSize, len(b), Size)
	}
	var out Snapshot
	for i := 0; i < NumButtons; i++ {
		switch b[i] {
		case 0:
		case 1:
			out.Buttons[i] = true
		default:
			return fmt.Errorf("%w: button%d = %d", ErrOutOfRange, i+1, b[i])
		}
	}
	fields := []*uint16{&out.X1, &out.Y1, &out.X2, &out.Y2, &out.Slider1, &out.Slider2}
	for i, f := range fields {
		v := binary.LittleEndian.Uint16(b[NumButtons+2*i:])
		if v > AxisMax {
			return fmt.Errorf("%w: %s = %d", ErrOutOfRange, fieldNames[i], v)
		}
		*f = v
	}
	*s = out
	return nil
}

var fieldNames = [...]string{"X1", "Y1", "X2", "Y2", "slider1", "slider2"}

func (s Snapshot) MarshalBinary() ([]byte, error) {
	b := make([]byte, Size)
	for i, pressed := range s.Buttons {
		if pressed {
			b[i] = 1
		}
	}
	for i, v := range []uint16{s.X1, s.Y1, s.X2, s.Y2, s.Slider1, s.Slider2} {
		binary.LittleEndian.PutUint16(b[NumButtons+2*i:], v)
	}
	return b, nil
}
