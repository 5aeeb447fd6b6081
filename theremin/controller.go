package theremin

import (
	"io"
	"log/slog"
	"time"
)

// Mode is the interaction mode of the instrument.
type Mode uint8

const (
	Continuous Mode = iota // direct pitch and volume
	Quantized              // piano: notes of NoteTable at fixed loudness
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Quantized:
		return "quantized"
	}
	return "unknown"
}

const (
	DefaultCountDesired = 10000
	DefaultSamplePeriod = 50 * time.Millisecond
)

// Config holds the sampling cadence of both modes.
type Config struct {
	// CountDesired is the pitch count that triggers a continuous mode tick.
	CountDesired uint32
	// SamplePeriod is the wall clock period of quantized mode ticks.
	SamplePeriod time.Duration
}

func DefaultConfig() Config {
	return Config{
		CountDesired: DefaultCountDesired,
		SamplePeriod: DefaultSamplePeriod,
	}
}

// Devices are the peripherals the controller drives.
type Devices struct {
	Pitch  EdgeCounter
	Volume EdgeCounter
	Output ToneOutput
	Clock  Clock
}

// Option customizes a Controller.
type Option func(*Controller)

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

func WithNoteSink(sink NoteSink) Option {
	return func(c *Controller) {
		c.notes.sink = sink
	}
}

// Controller is the instrument state machine. It owns the mode, the
// calibration and the gesture state and is driven by calling Step from a
// single loop.
type Controller struct {
	cfg     Config
	log     *slog.Logger
	sampler sampler
	stage   *Stage
	clock   Clock

	mode    Mode
	cal     Calibrator
	gesture GestureDetector
	notes   noteTracker
}

// NewController validates the devices and config and starts sampling from
// the current instant.
func NewController(devs Devices, cfg Config, opts ...Option) (*Controller, error) {
	switch {
	case devs.Pitch == nil:
		return nil, ErrNoPitchCounter
	case devs.Volume == nil:
		return nil, ErrNoVolumeCounter
	case devs.Output == nil:
		return nil, ErrNoToneOutput
	case devs.Clock == nil:
		return nil, ErrNoClock
	case cfg.CountDesired == 0:
		return nil, ErrCountDesired
	case cfg.SamplePeriod <= 0:
		return nil, ErrSamplePeriod
	}

	c := &Controller{
		cfg:   cfg,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock: devs.Clock,
		stage: NewStage(devs.Output, devs.Clock),
		mode:  Continuous,
		sampler: sampler{
			pitch:  devs.Pitch,
			volume: devs.Volume,
			clock:  devs.Clock,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sampler.restart()

	return c, nil
}

// Step runs one tick if one is due and reports whether it did.
func (c *Controller) Step() bool {
	if !c.due() {
		return false
	}

	s := c.sampler.take()
	if !s.Valid() {
		c.log.Warn("skipped tick", "elapsed", s.Elapsed)
		return false
	}
	c.Tick(s)
	return true
}

func (c *Controller) due() bool {
	if c.mode == Continuous {
		return c.sampler.pitch.Read() >= c.cfg.CountDesired
	}
	return c.sampler.elapsed() >= c.cfg.SamplePeriod
}

// Tick processes one sample in the current mode.
func (c *Controller) Tick(s RawSample) {
	if !s.Valid() {
		return
	}
	switch c.mode {
	case Continuous:
		c.tickContinuous(s)
	case Quantized:
		c.tickQuantized(s)
	}
}

func (c *Controller) tickContinuous(s RawSample) {
	raw := Baseline{}.Calibrate(s)
	c.log.Debug("sample", "tone", raw.Tone, "vol", raw.Vol)

	if c.cal.Add(raw) {
		b := c.cal.Baseline()
		c.log.Info("ready", "tone", b.Tone, "vol", b.Vol)
	}

	r := c.cal.Baseline().Calibrate(s)
	pitch := int(-r.Tone)
	volume := int(-r.Vol)

	if c.gesture.Observe(volume, c.clock.Now()) {
		c.switchMode()
		return
	}

	c.stage.Play(ClampPitch(pitch), ClampVolume(volume))
}

func (c *Controller) tickQuantized(s RawSample) {
	tone, vol := s.Rates()
	c.log.Debug("sample", "tone", tone, "vol", vol)

	// piano mode works in tenths of the continuous volume scale
	b := c.cal.Baseline()
	r := Reading{Tone: tone - b.Tone, Vol: (vol - b.Vol) / pianoVolumeDiv}
	volume := int(-r.Vol)

	if c.gesture.Observe(volume, c.clock.Now()) {
		c.switchMode()
		return
	}

	octave := SelectOctave(volume)
	index := -r.Tone / pianoPitchDiv
	if index < 0 {
		index = 0
	}
	slot := NoteSlot(int(index))
	c.notes.play(octave, slot)
	c.stage.Play(QuantizeNote(int(index), NoteTable[octave]), PianoVolume)
}

// switchMode flips the mode behind a silent pause and resynchronizes the
// counters with the sampling clock.
func (c *Controller) switchMode() {
	c.log.Info("switch", "from", c.mode)
	c.notes.release()

	next := Quantized
	if c.mode == Quantized {
		next = Continuous
	}
	if c.cal.Collecting() {
		c.log.Warn("calibration aborted", "collected", c.cal.Collected())
		c.cal.Abort()
	}
	c.mode = next
	c.gesture.Reset()

	c.stage.Hold(SwitchHoldPause)
	c.sampler.restart()
	c.log.Info("mode", "mode", c.mode)
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Baseline() Baseline {
	return c.cal.Baseline()
}

func (c *Controller) Calibrated() bool {
	return c.cal.Done()
}
