package status

import "testing"

type fakePin struct {
	high  bool
	edges int
}

func (p *fakePin) High() {
	if !p.high {
		p.edges++
	}
	p.high = true
}

func (p *fakePin) Low() {
	if p.high {
		p.edges++
	}
	p.high = false
}

func TestSolidPatterns(t *testing.T) {
	pin := &fakePin{}
	led := New(pin)
	led.SetPattern(On)
	led.Update(10)
	if !pin.high || !led.IsOn() {
		t.Fatal("expected LED on")
	}
	led.SetPattern(Off)
	led.Update(20)
	if pin.high || led.IsOn() {
		t.Fatal("expected LED off")
	}
}

func TestFlashCadence(t *testing.T) {
	for _, tc := range []struct {
		pattern Pattern
		period  uint32
	}{
		{SlowFlash, slowPeriod},
		{FastFlash, fastPeriod},
	} {
		pin := &fakePin{}
		led := New(pin)
		led.SetPattern(tc.pattern)
		led.Update(tc.period) // first toggle
		start := pin.edges
		for now := tc.period + 1; now < tc.period*5; now++ {
			led.Update(now)
		}
		if got := pin.edges - start; got != 3 {
			t.Errorf("%v: %d toggles in four periods, want 3", tc.pattern, got)
		}
	}
}
