package dev

// Bus gives word access to peripheral registers.
type Bus interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, v uint32)
}

// Trigger selects what a PWM slice counts on its B input.
type Trigger uint8

const (
	High        Trigger = 1 // count cycles while the input is high
	RisingEdge  Trigger = 2
	FallingEdge Trigger = 3
)

const (
	ioBank0Base = 0x40014000
	pwmBase     = 0x40050000
	sliceStride = 0x14

	regCSR = 0x00
	regDIV = 0x04
	regCTR = 0x08
	regTOP = 0x0C

	aliasSet   = 0x2000
	aliasClear = 0x3000

	funcPWM    = 4
	csrEnable  = 1
	csrDivMode = 4 // bit offset of DIVMODE

	counterMask = 0xFFFF
)

// CounterConfig describes a PWM slice used as an edge counter.
type CounterConfig struct {
	Pin     uint8
	Trigger Trigger
	// Divisor is the integer clock divisor, 1 to 256.
	Divisor uint16
}

// Validate checks the config without touching any register. Only the B
// channel of a slice can count, hence odd pins.
func (c CounterConfig) Validate() error {
	if c.Pin >= 30 || c.Pin%2 == 0 {
		return ErrInvalidPin
	}
	if c.Divisor < 1 || c.Divisor > 256 {
		return ErrInvalidDivisor
	}
	switch c.Trigger {
	case High, RisingEdge, FallingEdge:
	default:
		return ErrInvalidTrigger
	}
	return nil
}

// encodeDivisor packs an integer divisor into the 8.4 DIV register. 256 is
// encoded as an integer part of 0.
func encodeDivisor(div uint16, frac uint8) uint32 {
	return uint32(div&0xff)<<4 | uint32(frac&0xf)
}

// PWMCounter counts input edges with an RP2040 PWM slice. The hardware
// counter runs freely; ReadAndReset moves a software reference instead of
// clearing the register so no edge is lost between read and reset.
type PWMCounter struct {
	bus  Bus
	cfg  CounterConfig
	gpio uintptr
	csr  uintptr
	div  uintptr
	ctr  uintptr
	top  uintptr
	ref  uint32
}

// NewPWMCounter validates cfg and binds it to the slice of its pin. No
// register is accessed until Configure.
func NewPWMCounter(bus Bus, cfg CounterConfig) (*PWMCounter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slice := uintptr(pwmBase + (uint32(cfg.Pin)%16)/2*sliceStride)
	return &PWMCounter{
		bus:  bus,
		cfg:  cfg,
		gpio: ioBank0Base + 0x04 + uintptr(cfg.Pin)*8,
		csr:  slice + regCSR,
		div:  slice + regDIV,
		ctr:  slice + regCTR,
		top:  slice + regTOP,
	}, nil
}

// Configure routes the pin to its slice, selects the trigger and divisor
// and clears the counter. The slice is left stopped.
func (c *PWMCounter) Configure() {
	c.bus.Store(c.gpio, funcPWM)
	c.bus.Store(c.csr, uint32(c.cfg.Trigger)<<csrDivMode)
	c.bus.Store(c.top, counterMask)
	c.SetDivisor(c.cfg.Divisor, 0)
	c.Reset()
}

// SetDivisor changes the clock divisor of the slice.
func (c *PWMCounter) SetDivisor(div uint16, frac uint8) error {
	if div < 1 || div > 256 {
		return ErrInvalidDivisor
	}
	c.bus.Store(c.div, encodeDivisor(div, frac))
	return nil
}

func (c *PWMCounter) Start() {
	c.bus.Store(c.csr+aliasSet, csrEnable)
}

func (c *PWMCounter) Stop() {
	c.bus.Store(c.csr+aliasClear, csrEnable)
}

// Reset zeroes the hardware counter.
func (c *PWMCounter) Reset() {
	c.bus.Store(c.ctr, 0)
	c.ref = 0
}

func (c *PWMCounter) raw() uint32 {
	return c.bus.Load(c.ctr) & counterMask
}

// Read returns the edges counted since the last reset.
func (c *PWMCounter) Read() uint32 {
	return (c.raw() - c.ref) & counterMask
}

// ReadAndReset returns the edges counted since the last reset and starts
// the next period at the same hardware count.
func (c *PWMCounter) ReadAndReset() uint32 {
	now := c.raw()
	n := (now - c.ref) & counterMask
	c.ref = now
	return n
}

func (c *PWMCounter) Pin() uint8 {
	return c.cfg.Pin
}
