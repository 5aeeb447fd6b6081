package theremin

import "time"

// EdgeCounter counts oscillator edges. Counting is free-running: reading
// must never pause it.
type EdgeCounter interface {
	Read() uint32
	Reset()
	// ReadAndReset returns the count accumulated since the previous reset
	// and starts a new period without losing edges in between.
	ReadAndReset() uint32
}

// ToneOutput drives the speaker.
type ToneOutput interface {
	SetFrequency(hz uint32)
	SetAmplitude(duty uint16)
}

// Clock is a monotonic time source measured from boot.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}
