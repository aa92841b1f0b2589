package nrf24

// Commands.
const (
	cmdRRegister  = 0x00
	cmdWRegister  = 0x20
	cmdRRxPayload = 0x61
	cmdWTxPayload = 0xA0
	cmdFlushTx    = 0xE1
	cmdFlushRx    = 0xE2
	cmdNOP        = 0xFF

	registerMask = 0x1F
)

// Registers.
const (
	regConfig     = 0x00
	regEnAA       = 0x01
	regEnRxAddr   = 0x02
	regSetupAW    = 0x03
	regSetupRetr  = 0x04
	regRFCh       = 0x05
	regRFSetup    = 0x06
	regStatus     = 0x07
	regRxAddrP0   = 0x0A
	regRxAddrP1   = 0x0B
	regTxAddr     = 0x10
	regRxPwP0     = 0x11
	regRxPwP1     = 0x12
	regFIFOStatus = 0x17
	regDynPD      = 0x1C
	regFeature    = 0x1D
)

// Bits.
const (
	configPrimRx = 1 << 0
	configPwrUp  = 1 << 1
	configCRCO   = 1 << 2
	configEnCRC  = 1 << 3

	statusMaxRT   = 1 << 4
	statusTxDS    = 1 << 5
	statusRxDR    = 1 << 6
	statusRxPNo   = 0x0E
	rxPNoEmpty    = 0x07
	fifoRxEmpty   = 1 << 0
	rfSetupLNA    = 1 << 0
	rfSetupDRHigh = 1 << 3
	rfSetupDRLow  = 1 << 5
)

const (
	AddressWidth   = 5
	MaxPayloadSize = 32
	MaxChannel     = 125
)
