//go:build rp2040

package config

import (
	"machine"

	"github.com/FarisAnsara/Theremin/dev"
	"tinygo.org/x/drivers/tone"
)

var (
	LED = machine.LED
)

var slices = [8]tone.PWM{
	machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
	machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
}

// SpeakerPWM returns the PWM slice that drives pin.
func SpeakerPWM(pin uint8) (tone.PWM, error) {
	if pin >= 30 {
		return nil, dev.ErrInvalidPWM
	}
	return slices[(pin%16)/2], nil
}
