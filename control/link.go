package control

import (
	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/utils"
)

type PowerState int

const (
	PowerGood PowerState = iota
	// PowerTransient is a low reading still inside the battery window.
	PowerTransient
	PowerFailsafe
)

type LinkState int

const (
	LinkActive LinkState = iota
	// LinkHolding means no new packet this iteration, last one still fresh.
	LinkHolding
	LinkLost
)

// LinkMonitor keeps the timestamps of the last packet and the last healthy
// battery reading.
type LinkMonitor struct {
	failsafeInterval uint32
	batteryFailsafe  uint32
	lowBattery       uint32
	lastPacket       uint32
	lastGoodBattery  uint32
}

func NewLinkMonitor(cfg settings.Settings) LinkMonitor {
	return LinkMonitor{
		failsafeInterval: cfg.FailsafeInterval,
		batteryFailsafe:  cfg.BatteryFailsafe,
		lowBattery:       cfg.LowBattery,
	}
}

func (m *LinkMonitor) IsLinkFresh(now uint32) bool {
	return utils.Elapsed(now, m.lastPacket) <= m.failsafeInterval
}

func (m *LinkMonitor) IsPowerFresh(now uint32) bool {
	return utils.Elapsed(now, m.lastGoodBattery) <= m.batteryFailsafe
}

// EvaluatePower classifies a battery reading in millivolts.
func (m *LinkMonitor) EvaluatePower(mV, now uint32) PowerState {
	if mV > m.lowBattery {
		m.lastGoodBattery = now
		return PowerGood
	}
	if m.IsPowerFresh(now) {
		return PowerTransient
	}
	return PowerFailsafe
}

// EvaluateLink classifies the radio given whether a valid packet arrived.
func (m *LinkMonitor) EvaluateLink(received bool, now uint32) LinkState {
	if received {
		m.lastPacket = now
		return LinkActive
	}
	if m.IsLinkFresh(now) {
		return LinkHolding
	}
	return LinkLost
}
