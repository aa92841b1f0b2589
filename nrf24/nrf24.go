// Package nrf24 is a small polling driver for the nRF24L01(+) transceiver,
// enough to receive fixed-size payloads on one pipe.
package nrf24

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

var (
	ErrNotConnected = errors.New("nrf24: chip not responding")
	ErrPayloadSize  = errors.New("nrf24: payload size mismatch")
	ErrAddress      = errors.New("nrf24: address must be 5 bytes")
	ErrPipe         = errors.New("nrf24: pipe out of range")
)

type PALevel uint8

const (
	PAMin PALevel = iota // -18dBm
	PALow                // -12dBm
	PAHigh               // -6dBm
	PAMax                // 0dBm
)

type DataRate uint8

const (
	DataRate1Mbps DataRate = iota
	DataRate2Mbps
	DataRate250Kbps
)

// Pin is satisfied by machine.Pin configured as output.
type Pin interface {
	High()
	Low()
}

type Config struct {
	Channel     uint8
	PALevel     PALevel
	DataRate    DataRate
	PayloadSize uint8
}

// DefaultConfig matches the RF24 Arduino library defaults.
func DefaultConfig() Config {
	return Config{
		Channel:     76,
		PALevel:     PAMax,
		DataRate:    DataRate1Mbps,
		PayloadSize: MaxPayloadSize,
	}
}

type Device struct {
	bus         drivers.SPI
	ce          Pin
	csn         Pin
	payloadSize uint8
	tx          [1 + MaxPayloadSize]byte
	rx          [1 + MaxPayloadSize]byte
	sleep       func(time.Duration)
}

// Standby settle time after PWR_UP, as the RF24 library waits.
const powerUpDelay = 5 * time.Millisecond

func New(bus drivers.SPI, ce, csn Pin) *Device {
	return &Device{bus: bus, ce: ce, csn: csn, payloadSize: MaxPayloadSize, sleep: time.Sleep}
}

// Configure resets the radio into a powered-up, idle transmitter. It fails
// with ErrNotConnected when nothing answers on the bus.
func (d *Device) Configure(cfg Config) error {
	d.ce.Low()
	d.csn.High()

	if !d.Connected() {
		return ErrNotConnected
	}
	if cfg.Channel > MaxChannel {
		return fmt.Errorf("nrf24: channel %d out of range", cfg.Channel)
	}
	steps := []struct {
		reg, val byte
	}{
		{regSetupRetr, 5<<4 | 15},
		{regRFSetup, rfSetup(cfg.PALevel, cfg.DataRate)},
		{regFeature, 0},
		{regDynPD, 0},
		{regEnAA, 0x3F},
		{regEnRxAddr, 0x03},
		{regSetupAW, AddressWidth - 2},
		{regRFCh, cfg.Channel},
		{regStatus, statusRxDR | statusTxDS | statusMaxRT},
	}
	for _, s := range steps {
		if err := d.writeRegister(s.reg, s.val); err != nil {
			return err
		}
	}
	if err := d.SetPayloadSize(cfg.PayloadSize); err != nil {
		return err
	}
	if err := d.command(cmdFlushRx); err != nil {
		return err
	}
	if err := d.command(cmdFlushTx); err != nil {
		return err
	}
	if err := d.writeRegister(regConfig, configEnCRC|configCRCO|configPwrUp); err != nil {
		return err
	}
	d.sleep(powerUpDelay)
	return nil
}

// Connected checks the address width register holds a legal value.
func (d *Device) Connected() bool {
	aw, err := d.readRegister(regSetupAW)
	return err == nil && aw >= 1 && aw <= 3
}

func rfSetup(pa PALevel, dr DataRate) byte {
	v := byte(pa&0x03)<<1 | rfSetupLNA
	switch dr {
	case DataRate2Mbps:
		v |= rfSetupDRHigh
	case DataRate250Kbps:
		v |= rfSetupDRLow
	}
	return v
}

func (d *Device) SetPALevel(pa PALevel) error {
	v, err := d.readRegister(regRFSetup)
	if err != nil {
		return err
	}
	return d.writeRegister(regRFSetup, v&^0x06|byte(pa&0x03)<<1)
}

// SetPayloadSize sets the static payload width of pipes 0 and 1 and reads it
// back.
func (d *Device) SetPayloadSize(n uint8) error {
	if n == 0 || n > MaxPayloadSize {
		return fmt.Errorf("%w: %d", ErrPayloadSize, n)
	}
	for _, reg := range []byte{regRxPwP0, regRxPwP1} {
		if err := d.writeRegister(reg, n); err != nil {
			return err
		}
		got, err := d.readRegister(reg)
		if err != nil {
			return err
		}
		if got != n {
			return fmt.Errorf("%w: wrote %d, read back %d", ErrPayloadSize, n, got)
		}
	}
	d.payloadSize = n
	return nil
}

func (d *Device) PayloadSize() uint8 {
	return d.payloadSize
}

func (d *Device) OpenWritingPipe(addr []byte) error {
	if len(addr) != AddressWidth {
		return ErrAddress
	}
	if err := d.writeRegister(regRxAddrP0, addr...); err != nil {
		return err
	}
	return d.writeRegister(regTxAddr, addr...)
}

func (d *Device) OpenReadingPipe(pipe uint8, addr []byte) error {
	if pipe != 1 {
		return fmt.Errorf("%w: %d", ErrPipe, pipe)
	}
	if len(addr) != AddressWidth {
		return ErrAddress
	}
	if err := d.writeRegister(regRxAddrP1, addr...); err != nil {
		return err
	}
	en, err := d.readRegister(regEnRxAddr)
	if err != nil {
		return err
	}
	return d.writeRegister(regEnRxAddr, en|1<<pipe)
}

func (d *Device) StartListening() error {
	cfg, err := d.readRegister(regConfig)
	if err != nil {
		return err
	}
	if err := d.writeRegister(regConfig, cfg|configPrimRx); err != nil {
		return err
	}
	if err := d.writeRegister(regStatus, statusRxDR|statusTxDS|statusMaxRT); err != nil {
		return err
	}
	d.ce.High()
	return nil
}

// Available reports whether a payload waits in the RX FIFO and which pipe it
// came in on.
func (d *Device) Available() (pipe uint8, ok bool, err error) {
	fifo, err := d.readRegister(regFIFOStatus)
	if err != nil || fifo&fifoRxEmpty != 0 {
		return 0, false, err
	}
	status, err := d.status()
	if err != nil {
		return 0, false, err
	}
	pipe = (status & statusRxPNo) >> 1
	if pipe == rxPNoEmpty {
		return 0, false, nil
	}
	return pipe, true, nil
}

// Read pops one payload. buf must be exactly the configured payload size.
func (d *Device) Read(buf []byte) error {
	n := int(d.payloadSize)
	if len(buf) != n {
		return fmt.Errorf("%w: buffer %d, payload %d", ErrPayloadSize, len(buf), n)
	}
	d.tx[0] = cmdRRxPayload
	for i := 1; i <= n; i++ {
		d.tx[i] = cmdNOP
	}
	if err := d.transfer(n + 1); err != nil {
		return err
	}
	copy(buf, d.rx[1:n+1])
	return d.writeRegister(regStatus, statusRxDR)
}

func (d *Device) status() (byte, error) {
	d.tx[0] = cmdNOP
	err := d.transfer(1)
	return d.rx[0], err
}

func (d *Device) command(cmd byte) error {
	d.tx[0] = cmd
	return d.transfer(1)
}

func (d *Device) readRegister(reg byte) (byte, error) {
	d.tx[0] = cmdRRegister | reg&registerMask
	d.tx[1] = cmdNOP
	err := d.transfer(2)
	return d.rx[1], err
}

func (d *Device) writeRegister(reg byte, data ...byte) error {
	d.tx[0] = cmdWRegister | reg&registerMask
	copy(d.tx[1:], data)
	return d.transfer(1 + len(data))
}

// transfer clocks n bytes of tx out while filling rx, framed by CSN.
func (d *Device) transfer(n int) error {
	d.csn.Low()
	err := d.bus.Tx(d.tx[:n], d.rx[:n])
	d.csn.High()
	return err
}
