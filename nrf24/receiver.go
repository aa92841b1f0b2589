package nrf24

import (
	"fmt"

	"github.com/Nabinho/OmniTrailer-V2.0/packet"
)

// Receiver polls a listening Device for controller packets.
type Receiver struct {
	dev *Device
	buf [packet.Size]byte
}

// NewReceiver fails unless the radio was configured for packet.Size payloads.
func NewReceiver(dev *Device) (*Receiver, error) {
	if dev.PayloadSize() != packet.Size {
		return nil, fmt.Errorf("%w: radio %d, packet %d", ErrPayloadSize, dev.PayloadSize(), packet.Size)
	}
	return &Receiver{dev: dev}, nil
}

func (r *Receiver) TryReceive() (packet.Snapshot, bool, error) {
	_, ok, err := r.dev.Available()
	if err != nil || !ok {
		return packet.Snapshot{}, false, err
	}
	if err := r.dev.Read(r.buf[:]); err != nil {
		return packet.Snapshot{}, false, err
	}
	s, err := packet.Decode(r.buf[:])
	if err != nil {
		return packet.Snapshot{}, false, err
	}
	return s, true, nil
}
