package theremin

import "time"

const (
	MinPitch    = 33
	MaxPitch    = 4186
	MinVolume   = 2000
	MaxVolume   = 32768
	PianoVolume = 20000

	pianoPitchDiv  = 10
	pianoVolumeDiv = 10
)

// ClampPitch limits a continuous pitch to the playable range. Anything
// below MinPitch is silence.
func ClampPitch(pitch int) uint32 {
	switch {
	case pitch > MaxPitch:
		return MaxPitch
	case pitch < MinPitch:
		return Silence
	}
	return uint32(pitch)
}

// ClampVolume gates quiet input to zero and caps loud input.
func ClampVolume(volume int) uint16 {
	switch {
	case volume < MinVolume:
		return 0
	case volume > MaxVolume:
		return MaxVolume
	}
	return uint16(volume)
}

// Stage owns the tone output. Playing the Silence frequency always mutes
// the speaker.
type Stage struct {
	out   ToneOutput
	clock Clock
	muted bool

	freq uint32
	amp  uint16
}

func NewStage(out ToneOutput, clock Clock) *Stage {
	return &Stage{out: out, clock: clock}
}

// Play sets frequency then amplitude. Calls are dropped while the stage is
// held.
func (s *Stage) Play(hz uint32, amp uint16) {
	if s.muted {
		return
	}
	s.play(hz, amp)
}

func (s *Stage) play(hz uint32, amp uint16) {
	if hz == Silence {
		amp = 0
	}
	s.out.SetFrequency(hz)
	s.out.SetAmplitude(amp)
	s.freq, s.amp = hz, amp
}

// Silence mutes the speaker.
func (s *Stage) Silence() {
	s.play(Silence, 0)
}

// Hold silences the speaker and blocks for d. The speaker stays silent
// until the next Play after Hold returns.
func (s *Stage) Hold(d time.Duration) {
	s.Silence()
	s.muted = true
	defer func() {
		s.muted = false
	}()
	s.clock.Sleep(d)
}

// Last returns the most recent frequency and amplitude sent to the output.
func (s *Stage) Last() (uint32, uint16) {
	return s.freq, s.amp
}
