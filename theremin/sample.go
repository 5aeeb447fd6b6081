package theremin

import "time"

// Normalization is the ratio between the raw pitch pulse rate and the
// musical pitch in Hz.
const Normalization = 21

// RawSample is one matched pair of counter readings. Pitch is always read
// before volume.
type RawSample struct {
	Pitch   uint32
	Volume  uint32
	Elapsed time.Duration
}

// Valid reports whether the sample spans a positive amount of time.
func (s RawSample) Valid() bool {
	return s.Elapsed > 0
}

// Rates converts the counts into per second rates. Tone is normalized by
// Normalization, volume is not.
func (s RawSample) Rates() (tone, vol float64) {
	sec := s.Elapsed.Seconds()
	return float64(s.Pitch) / sec / Normalization, float64(s.Volume) / sec
}

// Baseline is the ambient offset measured during calibration.
type Baseline struct {
	Tone float64
	Vol  float64
}

// Reading is a sample with the baseline removed.
type Reading struct {
	Tone float64
	Vol  float64
}

// Calibrate removes the baseline from a sample.
func (b Baseline) Calibrate(s RawSample) Reading {
	tone, vol := s.Rates()
	return Reading{Tone: tone - b.Tone, Vol: vol - b.Vol}
}

// sampler reads both counters as a pair and tracks the sampling clock.
type sampler struct {
	pitch  EdgeCounter
	volume EdgeCounter
	clock  Clock
	last   time.Duration
}

// elapsed returns the time since the previous sample.
func (s *sampler) elapsed() time.Duration {
	return s.clock.Now() - s.last
}

// take reads and resets both counters, pitch first. An empty sample is
// returned without touching the counters when no time has passed.
func (s *sampler) take() RawSample {
	now := s.clock.Now()
	d := now - s.last
	if d <= 0 {
		return RawSample{}
	}
	p := s.pitch.ReadAndReset()
	v := s.volume.ReadAndReset()
	s.last = now
	return RawSample{Pitch: p, Volume: v, Elapsed: d}
}

// restart drops everything counted so far and restarts the sampling clock.
func (s *sampler) restart() {
	s.pitch.Reset()
	s.volume.Reset()
	s.last = s.clock.Now()
}
