package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FarisAnsara/Theremin/dev"
	"github.com/FarisAnsara/Theremin/theremin"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Tuning is the compiled-in profile of the instrument.
type Tuning struct {
	Pitch        CounterTuning `yaml:"pitch"`
	Volume       CounterTuning `yaml:"volume"`
	Speaker      SpeakerTuning `yaml:"speaker"`
	CountDesired uint32        `yaml:"count_desired"`
	SamplePeriod time.Duration `yaml:"sample_period"`
	LogLevel     string        `yaml:"log_level"`
}

// CounterTuning selects the pin and counting mode of one plate oscillator.
type CounterTuning struct {
	Pin     uint8  `yaml:"pin"`
	Trigger string `yaml:"trigger"`
	Divisor uint16 `yaml:"divisor"`
}

type SpeakerTuning struct {
	Pin uint8 `yaml:"pin"`
}

// Default parses the embedded profile.
func Default() (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuning, &t); err != nil {
		return Tuning{}, fmt.Errorf("default tuning: %w", err)
	}
	return t, t.Validate()
}

// Parse overlays data onto the embedded profile and validates the result.
func Parse(data []byte) (Tuning, error) {
	t, err := Default()
	if err != nil {
		return Tuning{}, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	return t, t.Validate()
}

func sliceOf(pin uint8) uint8 {
	return (pin % 16) / 2
}

// Validate rejects any setting the hardware cannot run with.
func (t Tuning) Validate() error {
	if _, err := t.Pitch.Counter(); err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	if _, err := t.Volume.Counter(); err != nil {
		return fmt.Errorf("volume: %w", err)
	}
	// every device needs a PWM slice of its own
	if sliceOf(t.Pitch.Pin) == sliceOf(t.Volume.Pin) {
		return fmt.Errorf("volume: %w: pin %d shares a slice with pitch", dev.ErrInvalidPin, t.Volume.Pin)
	}
	if t.Speaker.Pin >= 30 || sliceOf(t.Speaker.Pin) == sliceOf(t.Pitch.Pin) || sliceOf(t.Speaker.Pin) == sliceOf(t.Volume.Pin) {
		return fmt.Errorf("speaker: %w: %d", dev.ErrInvalidPin, t.Speaker.Pin)
	}
	if t.CountDesired == 0 {
		return theremin.ErrCountDesired
	}
	if t.SamplePeriod <= 0 {
		return theremin.ErrSamplePeriod
	}
	if _, err := t.Level(); err != nil {
		return err
	}
	return nil
}

// Counter converts the tuning into a counter config and validates it.
func (c CounterTuning) Counter() (dev.CounterConfig, error) {
	cfg := dev.CounterConfig{Pin: c.Pin, Divisor: c.Divisor}
	switch strings.ToLower(c.Trigger) {
	case "high":
		cfg.Trigger = dev.High
	case "rising":
		cfg.Trigger = dev.RisingEdge
	case "falling":
		cfg.Trigger = dev.FallingEdge
	default:
		return cfg, fmt.Errorf("%w: %q", dev.ErrInvalidTrigger, c.Trigger)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: pin %d divisor %d", err, c.Pin, c.Divisor)
	}
	return cfg, nil
}

// Controller returns the sampling cadence of the control loop.
func (t Tuning) Controller() theremin.Config {
	return theremin.Config{
		CountDesired: t.CountDesired,
		SamplePeriod: t.SamplePeriod,
	}
}

// Level returns the console log level.
func (t Tuning) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(t.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
