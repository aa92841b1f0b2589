//go:build tinygo

package main

import (
	"log"
	"machine"
	"time"

	"github.com/Nabinho/OmniTrailer-V2.0/battery"
	"github.com/Nabinho/OmniTrailer-V2.0/control"
	"github.com/Nabinho/OmniTrailer-V2.0/lights"
	"github.com/Nabinho/OmniTrailer-V2.0/motor"
	"github.com/Nabinho/OmniTrailer-V2.0/nrf24"
	"github.com/Nabinho/OmniTrailer-V2.0/packet"
	"github.com/Nabinho/OmniTrailer-V2.0/settings"
	"github.com/Nabinho/OmniTrailer-V2.0/status"
)

const Version = "2.0.0"

func main() {
	time.Sleep(2 * time.Second)
	log.SetFlags(log.Lmicroseconds)
	println("OmniTrailer - Version", Version)
	println("Radio-controlled trailer robot")

	cfg := settings.Default()

	// --- Hardware Setup ---
	STATUS_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	indicator := status.New(STATUS_LED)

	left, err := lights.NewWS2812(LED_LEFT_PIN, int(cfg.NumLEDs))
	if err != nil {
		println("could not clear left strip:", err.Error())
	}
	right, err := lights.NewWS2812(LED_RIGHT_PIN, int(cfg.NumLEDs))
	if err != nil {
		println("could not clear right strip:", err.Error())
	}

	motors := setupMotors()
	motors.Stop()
	println("Motors stopped.")

	machine.InitADC()
	adc := machine.ADC{Pin: BATTERY_PIN}
	adc.Configure(machine.ADCConfig{})
	pack := battery.New(adc, battery.DefaultConfig())

	rx := setupRadio()
	println("Radio listening on", string(addresses[1-RADIO_NUMBER]))
	// --- End Hardware Setup ---

	clock := control.SystemClock()
	ctrl, err := control.New(control.Hardware{
		Clock:   clock,
		Radio:   rx,
		Motors:  motors,
		Battery: pack,
		Left:    left,
		Right:   right,
		Status:  indicator,
		Logger:  log.Default(),
	}, cfg)
	if err != nil {
		halt("Invalid configuration:", err)
	}

	watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: WATCHDOG_TIMEOUT_MS,
	})
	watchdog.Start()
	println("Initialization complete. Entering control loop...")

	ticker := time.NewTicker(LOOP_INTERVAL)
	defer ticker.Stop()
	for range ticker.C {
		ctrl.Step()
		indicator.Update(clock.Millis())

		// Keep the watchdog happy
		watchdog.Update()
	}
}

func setupMotors() *motor.Driver {
	pwmConfig := machine.PWMConfig{Period: machine.GHz * 1 / MOTOR_PWM_FREQUENCY}
	if err := pwmLeft.Configure(pwmConfig); err != nil {
		halt("could not configure left motor PWM:", err)
	}
	if err := pwmRight.Configure(pwmConfig); err != nil {
		halt("could not configure right motor PWM:", err)
	}
	d, err := motor.NewL9110x(
		motor.Pins{PWM: pwmLeft, A: MOTOR_LEFT_A, B: MOTOR_LEFT_B},
		motor.Pins{PWM: pwmRight, A: MOTOR_RIGHT_A, B: MOTOR_RIGHT_B},
	)
	if err != nil {
		halt("could not claim motor channels:", err)
	}
	return d
}

// setupRadio blocks until the nRF24 answers, then configures it as a
// listening receiver of controller packets.
func setupRadio() *nrf24.Receiver {
	if err := spi.Configure(machine.SPIConfig{
		Frequency: SPI_FREQUENCY,
		SCK:       SPI_SCK_PIN,
		SDO:       SPI_SDO_PIN,
		SDI:       SPI_SDI_PIN,
		Mode:      0,
	}); err != nil {
		halt("could not configure SPI:", err)
	}
	RADIO_CE.Configure(machine.PinConfig{Mode: machine.PinOutput})
	RADIO_CSN.Configure(machine.PinConfig{Mode: machine.PinOutput})

	dev := nrf24.New(spi, RADIO_CE, RADIO_CSN)
	rcfg := nrf24.DefaultConfig()
	rcfg.Channel = RADIO_CHANNEL
	rcfg.PayloadSize = packet.Size

	if err := dev.Configure(rcfg); err != nil {
		println("Radio Initialization Failed!")
		for err != nil {
			print(".")
			time.Sleep(100 * time.Millisecond)
			err = dev.Configure(rcfg)
		}
		println()
	}
	if err := dev.SetPALevel(nrf24.PAMax); err != nil {
		halt("could not set PA level:", err)
	}
	if err := dev.OpenWritingPipe(addresses[RADIO_NUMBER]); err != nil {
		halt("could not open writing pipe:", err)
	}
	if err := dev.OpenReadingPipe(1, addresses[1-RADIO_NUMBER]); err != nil {
		halt("could not open reading pipe:", err)
	}
	rx, err := nrf24.NewReceiver(dev)
	if err != nil {
		halt("Radio payload size mismatch:", err)
	}
	if err := dev.StartListening(); err != nil {
		halt("could not start listening:", err)
	}
	return rx
}

// halt reports a configuration error forever. There is no safe fallback.
func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(time.Second)
	}
}
