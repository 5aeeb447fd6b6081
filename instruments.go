//go:build rp2040

package main

import (
	"fmt"
	"machine"

	"github.com/FarisAnsara/Theremin/config"
	"github.com/FarisAnsara/Theremin/dev"
	"github.com/FarisAnsara/Theremin/theremin"
)

var (
	pitch   *dev.PWMCounter
	volume  *dev.PWMCounter
	speaker *dev.PWMTone
)

// configureInstruments sets up both plate counters and the speaker. Every
// setting is validated before the first register write.
func configureInstruments(t config.Tuning) (theremin.Devices, error) {
	if err := t.Validate(); err != nil {
		return theremin.Devices{}, err
	}

	var err error
	if pitch, err = configureCounter(t.Pitch); err != nil {
		return theremin.Devices{}, fmt.Errorf("pitch: %w", err)
	}
	if volume, err = configureCounter(t.Volume); err != nil {
		return theremin.Devices{}, fmt.Errorf("volume: %w", err)
	}
	if speaker, err = configureSpeaker(t.Speaker.Pin); err != nil {
		return theremin.Devices{}, fmt.Errorf("speaker: %w", err)
	}

	return theremin.Devices{
		Pitch:  pitch,
		Volume: volume,
		Output: speaker,
		Clock:  dev.Clock{},
	}, nil
}

func configureCounter(t config.CounterTuning) (*dev.PWMCounter, error) {
	cfg, err := t.Counter()
	if err != nil {
		return nil, err
	}
	c, err := dev.NewPWMCounter(dev.MMIO{}, cfg)
	if err != nil {
		return nil, err
	}
	c.Configure()
	c.Start()
	return c, nil
}

func configureSpeaker(pin uint8) (*dev.PWMTone, error) {
	pwm, err := config.SpeakerPWM(pin)
	if err != nil {
		return nil, err
	}
	return dev.NewPWMTone(pwm, machine.Pin(pin))
}
