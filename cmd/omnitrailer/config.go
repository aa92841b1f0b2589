//go:build tinygo

package main

// OmniTrailer board configuration
// Pin mappings and radio role for a Raspberry Pi Pico carrier

import (
	"machine"
	"time"
)

// --- Radio ---
const (
	RADIO_NUMBER  = 1  // 0 is the handheld controller, 1 is the robot
	RADIO_CHANNEL = 76 // RF24 library default
)

// Pipe addresses, indexed by radio number. The robot writes on its own
// address and listens on the other one.
var addresses = [2][]byte{[]byte("Ctrlr"), []byte("Robot")}

// --- Hardware Mappings ---
const (
	SPI_SCK_PIN = machine.GP2
	SPI_SDO_PIN = machine.GP3
	SPI_SDI_PIN = machine.GP4
	RADIO_CSN   = machine.GP5
	RADIO_CE    = machine.GP6

	LED_LEFT_PIN  = machine.GP7 // WS2812 strip, left
	LED_RIGHT_PIN = machine.GP8 // WS2812 strip, right
	STATUS_LED    = machine.LED

	MOTOR_LEFT_A  = machine.GP10 // PWM5 A
	MOTOR_LEFT_B  = machine.GP11 // PWM5 B
	MOTOR_RIGHT_A = machine.GP12 // PWM6 A
	MOTOR_RIGHT_B = machine.GP13 // PWM6 B

	BATTERY_PIN = machine.ADC0 // GP26, through the divider
)

// --- Timing ---
const (
	MOTOR_PWM_FREQUENCY = 20000 // Hz, above hearing
	SPI_FREQUENCY       = 4 * machine.MHz
	LOOP_INTERVAL       = time.Millisecond
	WATCHDOG_TIMEOUT_MS = 500
)

// --- Hardware Interfaces ---
var (
	spi      = machine.SPI0
	pwmLeft  = machine.PWM5
	pwmRight = machine.PWM6
	watchdog = machine.Watchdog
)
