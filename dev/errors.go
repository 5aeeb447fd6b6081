package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidPin     = Error("invalid pin number")
	ErrInvalidDivisor = Error("clock divisor out of range")
	ErrInvalidTrigger = Error("invalid trigger condition")
	ErrInvalidPWM     = Error("no PWM slice for pin")
)
