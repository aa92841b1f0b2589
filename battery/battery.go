// Package battery reads the pack voltage through a resistor divider on an ADC
// pin.
package battery

// ADC is satisfied by machine.ADC. Readings are scaled to 16 bits.
type ADC interface {
	Get() uint16
}

type Config struct {
	RefMillivolts uint32 // ADC full scale
	DividerNum    uint32 // (Rtop+Rbottom)
	DividerDen    uint32 // Rbottom
	Samples       int
}

// DefaultConfig is a 47k/12k divider into a 3.3V ADC.
func DefaultConfig() Config {
	return Config{
		RefMillivolts: 3300,
		DividerNum:    59,
		DividerDen:    12,
		Samples:       4,
	}
}

type Sensor struct {
	adc ADC
	cfg Config
}

func New(adc ADC, cfg Config) *Sensor {
	if cfg.Samples < 1 {
		cfg.Samples = 1
	}
	return &Sensor{adc: adc, cfg: cfg}
}

// ReadVoltage averages a few samples and returns the pack voltage in mV.
func (s *Sensor) ReadVoltage() uint32 {
	var sum uint32
	for i := 0; i < s.cfg.Samples; i++ {
		sum += uint32(s.adc.Get())
	}
	return Millivolts(uint16(sum/uint32(s.cfg.Samples)), s.cfg)
}

func Millivolts(raw uint16, cfg Config) uint32 {
	return uint32(uint64(raw) * uint64(cfg.RefMillivolts) * uint64(cfg.DividerNum) /
		(0xFFFF * uint64(cfg.DividerDen)))
}
