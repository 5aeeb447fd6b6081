//go:build rp2040

package dev

import (
	"machine"

	"tinygo.org/x/drivers/tone"
)

// PWMTone is a square wave speaker output. Amplitude is the duty cycle, so
// 32768 is a symmetric square wave.
type PWMTone struct {
	pwm  tone.PWM
	ch   uint8
	duty uint16
}

// NewPWMTone configures pwm for pin and starts silent.
func NewPWMTone(pwm tone.PWM, pin machine.Pin) (*PWMTone, error) {
	if err := pwm.Configure(machine.PWMConfig{Period: periodFor(440)}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	pwm.Set(ch, 0)
	return &PWMTone{pwm: pwm, ch: ch}, nil
}

// SetFrequency changes the period and reapplies the duty cycle to the new
// counter range.
func (t *PWMTone) SetFrequency(hz uint32) {
	if hz == 0 {
		t.pwm.Set(t.ch, 0)
		return
	}
	if err := t.pwm.SetPeriod(periodFor(hz)); err != nil {
		println("tone: " + err.Error())
		return
	}
	t.pwm.Set(t.ch, dutyFor(t.pwm.Top(), t.duty))
}

func (t *PWMTone) SetAmplitude(duty uint16) {
	t.duty = duty
	t.pwm.Set(t.ch, dutyFor(t.pwm.Top(), duty))
}

// Stop silences the output.
func (t *PWMTone) Stop() {
	t.SetAmplitude(0)
}
