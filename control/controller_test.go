package control

import (
	"errors"
	"image/color"
	"io"
	"log"
	"testing"

	"github.com/Nabinho/OmniTrailer-V2.0/packet"
	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/status"
)

type fakeClock struct{ now uint32 }

func (c *fakeClock) Millis() uint32 { return c.now }

type fakeRadio struct {
	next *packet.Snapshot
	err  error
}

func (r *fakeRadio) TryReceive() (packet.Snapshot, bool, error) {
	if r.err != nil {
		err := r.err
		r.err = nil
		return packet.Snapshot{}, false, err
	}
	if r.next == nil {
		return packet.Snapshot{}, false, nil
	}
	s := *r.next
	r.next = nil
	return s, true, nil
}

type fakeMotors struct {
	right, left int16
	stops       int
	leftCalls   int
}

func (m *fakeMotors) SetSpeedLeft(v int16)  { m.left = v; m.leftCalls++ }
func (m *fakeMotors) SetSpeedRight(v int16) { m.right = v }
func (m *fakeMotors) Stop()                 { m.right, m.left = 0, 0; m.stops++ }

type fakeBattery struct{ mV uint32 }

func (b *fakeBattery) ReadVoltage() uint32 { return b.mV }

type fakeIndicator struct{ pattern status.Pattern }

func (i *fakeIndicator) SetPattern(p status.Pattern) { i.pattern = p }

type rig struct {
	clock   *fakeClock
	radio   *fakeRadio
	motors  *fakeMotors
	battery *fakeBattery
	left    *recordingStrip
	right   *recordingStrip
	led     *fakeIndicator
	c       *Controller
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		clock:   &fakeClock{},
		radio:   &fakeRadio{},
		motors:  &fakeMotors{},
		battery: &fakeBattery{mV: 8000},
		left:    &recordingStrip{},
		right:   &recordingStrip{},
		led:     &fakeIndicator{},
	}
	c, err := New(Hardware{
		Clock:   r.clock,
		Radio:   r.radio,
		Motors:  r.motors,
		Battery: r.battery,
		Left:    r.left,
		Right:   r.right,
		Status:  r.led,
		Logger:  log.New(io.Discard, "", 0),
	}, settings.Default())
	if err != nil {
		t.Fatal(err)
	}
	r.c = c
	return r
}

// step delivers s (if non-nil) at time now and runs one iteration.
func (r *rig) step(now uint32, s *packet.Snapshot) Outcome {
	r.clock.now = now
	r.radio.next = s
	return r.c.Step()
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := settings.Default()
	cfg.NumLEDs = 0
	if _, err := New(Hardware{}, cfg); err == nil {
		t.Error("expected settings error")
	}
	if _, err := New(Hardware{}, settings.Default()); err == nil {
		t.Error("expected hardware error")
	}
}

func TestStepDrivesRightMotor(t *testing.T) {
	r := newRig(t)
	if r.led.pattern != status.SlowFlash {
		t.Errorf("before link: indicator %v", r.led.pattern)
	}
	s := sticks(1023, 1023)
	if got := r.step(0, &s); got != Actuating {
		t.Fatalf("got %v", got)
	}
	if r.motors.right != 100 || r.motors.leftCalls != 0 {
		t.Errorf("right=%d leftCalls=%d", r.motors.right, r.motors.leftCalls)
	}
	if r.led.pattern != status.On {
		t.Errorf("indicator %v, want on", r.led.pattern)
	}

	s.Slider1, s.Slider2 = 1023, 1023
	r.step(20, &s)
	if r.motors.right != 65 {
		t.Errorf("sliders up: right=%d, want 65", r.motors.right)
	}

	centred := sticks(525, 1023)
	r.step(40, &centred)
	if r.motors.stops != 1 {
		t.Errorf("stops=%d after centring X1", r.motors.stops)
	}
	if r.right.shows != 3 || r.left.shows != 3 {
		t.Errorf("strips flushed %d/%d times, want every packet", r.left.shows, r.right.shows)
	}
}

func TestLinkFailsafeOncePerTimeout(t *testing.T) {
	r := newRig(t)
	s := sticks(1023, 1023)
	r.step(0, &s)

	if got := r.step(2000, nil); got != Holding {
		t.Fatalf("at 2000ms got %v, want holding", got)
	}
	if r.motors.right != 100 {
		t.Error("motors touched while holding")
	}
	if got := r.step(2001, nil); got != LinkFailsafe {
		t.Fatalf("at 2001ms got %v", got)
	}
	if r.motors.stops != 1 || r.left.fill != black || r.right.fill != black {
		t.Errorf("stops=%d fills=%v/%v", r.motors.stops, r.left.fill, r.right.fill)
	}
	shows := r.left.shows
	for now := uint32(2002); now < 5000; now += 10 {
		if got := r.step(now, nil); got != LinkFailsafe {
			t.Fatalf("at %dms got %v", now, got)
		}
	}
	if r.motors.stops != 1 || r.left.shows != shows {
		t.Errorf("failsafe re-applied: stops=%d shows=%d->%d", r.motors.stops, shows, r.left.shows)
	}
	if r.led.pattern != status.Off {
		t.Errorf("indicator %v, want off", r.led.pattern)
	}
	st := r.c.State()
	if kind, ok := st.InFailsafe(); !ok || kind != LinkFailsafe {
		t.Errorf("latched %v %v", kind, ok)
	}

	if got := r.step(5000, &s); got != Actuating || r.motors.right != 100 {
		t.Errorf("after recovery got %v right=%d", got, r.motors.right)
	}
	st = r.c.State()
	if _, ok := st.InFailsafe(); ok {
		t.Error("failsafe still latched after a packet")
	}
	for now := uint32(5010); now <= 7000; now += 10 {
		r.step(now, nil)
	}
	if r.step(7011, nil); r.motors.stops != 2 {
		t.Errorf("second timeout: stops=%d, want 2", r.motors.stops)
	}
}

func TestBatteryFailsafe(t *testing.T) {
	r := newRig(t)
	s := sticks(0, 1023)
	r.step(0, &s)
	if r.motors.right != -100 {
		t.Fatalf("right=%d", r.motors.right)
	}

	r.battery.mV = 6800
	if got := r.step(400, &s); got != BatteryTransient {
		t.Fatalf("got %v, want transient", got)
	}
	if r.motors.stops != 0 || r.motors.right != -100 {
		t.Error("actuators touched on a transient dip")
	}
	if got := r.step(501, &s); got != BatteryFailsafe {
		t.Fatalf("got %v", got)
	}
	if r.motors.stops != 1 || r.right.fill != black {
		t.Errorf("stops=%d right=%v", r.motors.stops, r.right.fill)
	}
	if r.led.pattern != status.FastFlash {
		t.Errorf("indicator %v", r.led.pattern)
	}
	r.step(600, &s)
	if r.motors.stops != 1 {
		t.Error("battery failsafe re-applied")
	}

	r.battery.mV = 7400
	if got := r.step(700, &s); got != Actuating {
		t.Errorf("battery back: got %v", got)
	}
}

func TestBatteryGateShortCircuitsRadio(t *testing.T) {
	r := newRig(t)
	r.battery.mV = 5000
	s := sticks(1023, 1023)
	r.step(100, &s)
	if r.radio.next == nil {
		t.Error("radio polled while battery low")
	}
}

func TestModeButtonReversesSteering(t *testing.T) {
	r := newRig(t)
	s := sticks(1023, 1023)
	s.Buttons[ButtonMode] = true
	for now := uint32(0); now <= 100; now += 50 {
		r.step(now, &s)
		if r.motors.right != 100 {
			t.Fatalf("mode flipped before debounce at %dms", now)
		}
	}
	r.step(150, &s)
	if r.motors.right != -100 {
		t.Errorf("right=%d after holding mode button, want -100", r.motors.right)
	}
	st := r.c.State()
	if st.Mode {
		t.Error("mode still true")
	}
}

func TestFailsafeClearsBrakeUntilNextEdge(t *testing.T) {
	r := newRig(t)
	s := sticks(525, 525)
	s.Buttons[ButtonBrake] = true
	r.step(0, &s)
	r.step(200, &s)
	if r.left.fill != red || r.right.fill != red {
		t.Fatalf("brake lights: %v/%v", r.left.fill, r.right.fill)
	}

	r.step(2300, nil)
	if st := r.c.State(); st.Brake {
		t.Fatal("brake survived failsafe")
	}

	r.step(2400, &s)
	if r.left.fill != black {
		t.Errorf("brake back on without a new button edge: %v", r.left.fill)
	}
}

func TestBlinkEnableAndTurnSignal(t *testing.T) {
	r := newRig(t)
	s := sticks(0, 1023)
	s.Buttons[ButtonBlink] = true
	r.step(0, &s)
	r.step(101, &s)
	st := r.c.State()
	if !st.BlinkEnabled || !st.Blink.Right || st.Blink.Left {
		t.Fatalf("blink state %+v enabled=%v", st.Blink, st.BlinkEnabled)
	}
	if r.right.fill != (color.RGBA{R: 255, G: 175, A: 255}) || r.left.fill != black {
		t.Errorf("fills %v/%v", r.left.fill, r.right.fill)
	}

	r.step(2500, nil)
	st = r.c.State()
	if st.BlinkEnabled || st.Blink != (Blink{}) {
		t.Errorf("blink state survived failsafe: %+v enabled=%v", st.Blink, st.BlinkEnabled)
	}
}

func TestRejectedPacketDoesNotRefreshLink(t *testing.T) {
	r := newRig(t)
	s := sticks(1023, 1023)
	r.step(0, &s)
	r.radio.err = errors.New("bad payload")
	if got := r.step(1500, nil); got != Holding {
		t.Errorf("got %v, want holding", got)
	}
	r.radio.err = errors.New("bad payload")
	if got := r.step(2100, nil); got != LinkFailsafe {
		t.Errorf("got %v, want link failsafe", got)
	}
}

func TestLinkFailsafeBeforeFirstPacket(t *testing.T) {
	r := newRig(t)
	if got := r.step(1000, nil); got != Holding {
		t.Errorf("got %v", got)
	}
	if got := r.step(2001, nil); got != LinkFailsafe {
		t.Errorf("got %v", got)
	}
}
