// Package control is the robot's decision loop: battery and link gates,
// button debouncing, drive mapping and lights.
package control

import (
	"fmt"
	"log"

	"github.com/Nabinho/OmniTrailer-V2.0/packet"
	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/status"
)

// Outcome is what one Step did.
type Outcome int

const (
	Actuating Outcome = iota
	Holding
	LinkFailsafe
	BatteryFailsafe
	BatteryTransient
)

func (o Outcome) String() string {
	switch o {
	case Actuating:
		return "actuating"
	case Holding:
		return "holding"
	case LinkFailsafe:
		return "link failsafe"
	case BatteryFailsafe:
		return "battery failsafe"
	case BatteryTransient:
		return "battery transient"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Button roles.
const (
	ButtonMode  = 0
	ButtonBlink = 1
	ButtonBrake = 2
)

// State is everything the loop carries from one iteration to the next.
type State struct {
	Buttons      [packet.NumButtons]Debouncer
	Mode         bool // false is reverse steering
	BlinkEnabled bool
	Brake        bool
	Blink        Blink
	SpeedMax     int16
	Link         LinkMonitor
	Lights       Lights

	failsafe Outcome // LinkFailsafe or BatteryFailsafe while latched, else Actuating
	linkSeen bool
}

func NewState(cfg settings.Settings) State {
	s := State{
		Mode:     true,
		SpeedMax: cfg.SpeedMin,
		Link:     NewLinkMonitor(cfg),
		Lights:   NewLights(cfg),
	}
	for i := range s.Buttons {
		s.Buttons[i] = NewDebouncer(cfg.DebounceTime)
	}
	return s
}

// InFailsafe reports the latched failsafe, if any.
func (s *State) InFailsafe() (Outcome, bool) {
	return s.failsafe, s.failsafe != Actuating
}

type Hardware struct {
	Clock   Clock
	Radio   Receiver
	Motors  Motors
	Battery Battery
	Left    Strip
	Right   Strip
	Status  Indicator // optional
	Logger  *log.Logger
}

type Controller struct {
	cfg   settings.Settings
	hw    Hardware
	log   *log.Logger
	state State
}

func New(hw Hardware, cfg settings.Settings) (*Controller, error) {
	if err := settings.Validate(cfg); err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	if hw.Clock == nil || hw.Radio == nil || hw.Motors == nil || hw.Battery == nil || hw.Left == nil || hw.Right == nil {
		return nil, fmt.Errorf("control: incomplete hardware")
	}
	l := hw.Logger
	if l == nil {
		l = log.Default()
	}
	c := &Controller{cfg: cfg, hw: hw, log: l, state: NewState(cfg)}
	c.indicate(status.SlowFlash)
	return c, nil
}

// State returns a copy of the loop state.
func (c *Controller) State() State {
	return c.state
}

// Step runs one loop iteration: battery, radio, buttons, drive, lights.
func (c *Controller) Step() Outcome {
	now := c.hw.Clock.Millis()
	s := &c.state

	switch s.Link.EvaluatePower(c.hw.Battery.ReadVoltage(), now) {
	case PowerTransient:
		return BatteryTransient
	case PowerFailsafe:
		c.failsafe(BatteryFailsafe)
		return BatteryFailsafe
	}

	snap, ok := c.receive()
	switch s.Link.EvaluateLink(ok, now) {
	case LinkHolding:
		return Holding
	case LinkLost:
		c.failsafe(LinkFailsafe)
		return LinkFailsafe
	}

	if s.failsafe != Actuating {
		c.log.Printf("%s cleared", s.failsafe)
		s.failsafe = Actuating
	}
	if !s.linkSeen {
		c.log.Print("link up")
		s.linkSeen = true
	}
	c.indicate(status.On)
	c.apply(snap, now)
	return Actuating
}

func (c *Controller) receive() (packet.Snapshot, bool) {
	snap, ok, err := c.hw.Radio.TryReceive()
	if err != nil {
		c.log.Printf("dropping packet: %v", err)
		return packet.Snapshot{}, false
	}
	return snap, ok
}

func (c *Controller) apply(snap packet.Snapshot, now uint32) {
	s := &c.state
	for i := range s.Buttons {
		s.Buttons[i].Update(snap.Buttons[i], now)
	}
	if b := &s.Buttons[ButtonMode]; b.Edge() {
		s.Mode = !b.Stable()
	}
	if b := &s.Buttons[ButtonBlink]; b.Edge() {
		s.BlinkEnabled = b.Stable()
	}
	if b := &s.Buttons[ButtonBrake]; b.Edge() {
		s.Brake = b.Stable()
	}

	s.SpeedMax = SpeedEnvelope(snap.Slider1, snap.Slider2, c.cfg)
	cmd := MapDrive(snap, s.Mode, s.SpeedMax, c.cfg)
	s.Blink = TurnSignals(snap, s.BlinkEnabled, s.Blink, c.cfg)
	c.actuate(cmd)
	c.show(s.Lights.Render(s.Brake, s.Blink.Right, s.Blink.Left, now))
}

func (c *Controller) actuate(cmd DriveCommand) {
	if cmd.Stop {
		c.hw.Motors.Stop()
		return
	}
	c.hw.Motors.SetSpeedRight(cmd.Right)
}

// failsafe stops the robot and blanks the lights once per episode.
func (c *Controller) failsafe(kind Outcome) {
	s := &c.state
	if s.failsafe == kind {
		return
	}
	c.log.Printf("%s: stopping", kind)
	s.failsafe = kind
	s.BlinkEnabled = false
	s.Brake = false
	s.Blink = Blink{}
	c.hw.Motors.Stop()
	c.show(Frame{})
	if kind == BatteryFailsafe {
		c.indicate(status.FastFlash)
	} else {
		c.indicate(status.Off)
	}
}

func (c *Controller) show(f Frame) {
	if err := f.Show(c.hw.Left, c.hw.Right); err != nil {
		c.log.Printf("lights: %v", err)
	}
}

func (c *Controller) indicate(p status.Pattern) {
	if c.hw.Status != nil {
		c.hw.Status.SetPattern(p)
	}
}
