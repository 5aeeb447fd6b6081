package main

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"

	"github.com/FarisAnsara/Theremin/theremin"
)

const sampleRate = 44100

// squareWave renders the PWM speaker as float32 samples. Amplitude is the
// duty cycle, as on the device.
type squareWave struct {
	freq  atomic.Uint32
	duty  atomic.Uint32
	phase float64
	gain  float32
}

func (w *squareWave) SetFrequency(hz uint32) { w.freq.Store(hz) }

func (w *squareWave) SetAmplitude(duty uint16) { w.duty.Store(uint32(duty)) }

func (w *squareWave) sample() float32 {
	hz, duty := w.freq.Load(), w.duty.Load()
	if hz == theremin.Silence || hz == 0 || duty == 0 {
		return 0
	}
	w.phase += float64(hz) / sampleRate
	w.phase -= math.Floor(w.phase)

	d := float64(duty) / 0xFFFF
	if w.phase < d {
		return w.gain * float32(1-d)
	}
	return -w.gain * float32(d)
}

// Read implements io.Reader over little endian float32 mono samples.
func (w *squareWave) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(w.sample()))
	}
	return n * 4, nil
}

// Speaker plays a squareWave on the default sound device.
type Speaker struct {
	*squareWave
	ctx    *oto.Context
	player *oto.Player
}

func NewSpeaker() (*Speaker, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &Speaker{squareWave: &squareWave{gain: 0.3}, ctx: ctx}
	s.player = ctx.NewPlayer(s.squareWave)
	s.player.Play()
	return s, nil
}

func (s *Speaker) Close() error {
	return s.player.Close()
}
