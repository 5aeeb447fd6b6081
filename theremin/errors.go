package theremin

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoPitchCounter  = Error("pitch counter missing")
	ErrNoVolumeCounter = Error("volume counter missing")
	ErrNoToneOutput    = Error("tone output missing")
	ErrNoClock         = Error("clock missing")
	ErrCountDesired    = Error("desired count must be positive")
	ErrSamplePeriod    = Error("sample period must be positive")
)
