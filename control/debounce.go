package control

import "github.com/Nabinho/OmniTrailer-V2.0/utils"

// Debouncer filters a sampled button. The stable state follows the raw
// sample only after it has held still for longer than the debounce time.
type Debouncer struct {
	delay      uint32
	reading    bool
	stable     bool
	lastRaw    bool
	lastChange uint32
	edge       bool
}

func NewDebouncer(delay uint32) Debouncer {
	return Debouncer{delay: delay}
}

// Update feeds one raw sample taken at now and returns the stable state.
func (d *Debouncer) Update(raw bool, now uint32) bool {
	d.reading = raw
	d.edge = false
	if raw != d.lastRaw {
		d.lastChange = now
	}
	if utils.Elapsed(now, d.lastChange) > d.delay && raw != d.stable {
		d.stable = raw
		d.edge = true
	}
	d.lastRaw = raw
	return d.stable
}

func (d *Debouncer) Stable() bool {
	return d.stable
}

// Edge reports whether the last Update committed a new stable state.
func (d *Debouncer) Edge() bool {
	return d.edge
}
