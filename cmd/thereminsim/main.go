// Command thereminsim runs the theremin control loop on a desktop. Two
// simulated plates replace the oscillators and the tone plays on the sound
// card.
//
//	w/s  pitch hand closer/farther
//	a/d  volume hand closer/farther
//	space  volume hand taps the plate (five taps switch modes)
//	q  quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/FarisAnsara/Theremin/config"
	"github.com/FarisAnsara/Theremin/theremin"
)

const (
	pitchRest   = 84000 // 4000 Hz after normalization
	pitchDepth  = 63000
	volumeRest  = 400000
	volumeDepth = 350000
	handStep    = 0.05
	tapLength   = 150 * time.Millisecond
)

type wallClock struct {
	start time.Time
}

func (c wallClock) Now() time.Duration    { return time.Since(c.start) }
func (c wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// logTone stands in for the speaker when no sound device is available.
type logTone struct {
	log  *slog.Logger
	freq uint32
}

func (t *logTone) SetFrequency(hz uint32) { t.freq = hz }

func (t *logTone) SetAmplitude(duty uint16) {
	t.log.Debug("tone", "hz", t.freq, "duty", duty)
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the default tuning")
	flag.Parse()

	if err := run(*tuningPath); err != nil {
		fmt.Fprintln(os.Stderr, "thereminsim:", err)
		os.Exit(1)
	}
}

func run(tuningPath string) error {
	tuning, err := loadTuning(tuningPath)
	if err != nil {
		return err
	}
	level, _ := tuning.Level()

	var out io.Writer = os.Stderr
	var keys <-chan byte
	if term.IsTerminal(int(os.Stdin.Fd())) {
		k, restore, err := rawKeys()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		defer restore()
		keys = k
		out = crlfWriter{w: os.Stderr}
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	var output theremin.ToneOutput = &logTone{log: log}
	if spk, err := NewSpeaker(); err != nil {
		log.Warn("no sound device, logging tones", "err", err)
	} else {
		defer spk.Close()
		output = spk
	}

	clock := wallClock{start: time.Now()}
	pitch := NewPlate(pitchRest, pitchDepth, time.Now)
	volume := NewPlate(volumeRest, volumeDepth, time.Now)

	ctl, err := theremin.NewController(theremin.Devices{
		Pitch:  pitch,
		Volume: volume,
		Output: output,
		Clock:  clock,
	}, tuning.Controller(),
		theremin.WithLogger(log),
		theremin.WithNoteSink(theremin.LogNotes(log)),
	)
	if err != nil {
		return err
	}

	log.Info("calibrating, keep hands away", "samples", theremin.CalibrationSamples)
	for {
		select {
		case k, ok := <-keys:
			if !ok || k == 'q' || k == 3 {
				return nil
			}
			handle(log, k, pitch, volume)
		default:
		}
		if !ctl.Step() {
			time.Sleep(time.Millisecond)
		}
	}
}

func handle(log *slog.Logger, k byte, pitch, volume *Plate) {
	switch k {
	case 'w':
		log.Info("pitch hand", "near", pitch.Move(handStep))
	case 's':
		log.Info("pitch hand", "near", pitch.Move(-handStep))
	case 'a':
		log.Info("volume hand", "near", volume.Move(handStep))
	case 'd':
		log.Info("volume hand", "near", volume.Move(-handStep))
	case ' ':
		volume.Spike(tapLength)
	}
}

func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Tuning{}, err
	}
	return config.Parse(data)
}
