package theremin

// CalibrationSamples is the number of readings averaged into the baseline.
const CalibrationSamples = 100

type calibrationState uint8

const (
	calCollecting calibrationState = iota
	calDone
	calAborted
)

// Calibrator averages the first CalibrationSamples readings after start into
// a Baseline. Once finished the baseline never changes.
type Calibrator struct {
	tones    [CalibrationSamples]float64
	vols     [CalibrationSamples]float64
	n        int
	state    calibrationState
	baseline Baseline
}

// Add records a reading taken against a zero baseline. It reports true on
// the sample that completes calibration.
func (c *Calibrator) Add(r Reading) bool {
	if c.state != calCollecting {
		return false
	}
	c.tones[c.n] = r.Tone
	c.vols[c.n] = r.Vol
	c.n++
	if c.n < CalibrationSamples {
		return false
	}

	c.baseline = Baseline{Tone: mean(c.tones[:]), Vol: mean(c.vols[:])}
	c.state = calDone
	return true
}

// Abort stops collection. The baseline stays at zero.
func (c *Calibrator) Abort() {
	if c.state == calCollecting {
		c.state = calAborted
	}
}

// Baseline returns the current baseline, zero until calibration completes.
func (c *Calibrator) Baseline() Baseline {
	return c.baseline
}

func (c *Calibrator) Done() bool {
	return c.state == calDone
}

func (c *Calibrator) Collecting() bool {
	return c.state == calCollecting
}

// Collected returns how many readings were recorded so far.
func (c *Calibrator) Collected() int {
	return c.n
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
