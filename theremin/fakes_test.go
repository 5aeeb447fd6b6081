package theremin

import (
	"time"

	"gitlab.com/gomidi/midi/v2"
)

type fakeCounter struct {
	count  uint32
	resets int
}

func (f *fakeCounter) Read() uint32 { return f.count }

func (f *fakeCounter) Reset() {
	f.count = 0
	f.resets++
}

func (f *fakeCounter) ReadAndReset() uint32 {
	n := f.count
	f.count = 0
	return n
}

type toneCall struct {
	freq uint32
	amp  uint16
}

type fakeOutput struct {
	freq  uint32
	amp   uint16
	calls []toneCall
}

func (f *fakeOutput) SetFrequency(hz uint32) { f.freq = hz }

func (f *fakeOutput) SetAmplitude(duty uint16) {
	f.amp = duty
	f.calls = append(f.calls, toneCall{freq: f.freq, amp: duty})
}

type fakeClock struct {
	now     time.Duration
	sleeps  []time.Duration
	onSleep func()
}

func (f *fakeClock) Now() time.Duration { return f.now }

func (f *fakeClock) Sleep(d time.Duration) {
	if f.onSleep != nil {
		f.onSleep()
	}
	f.sleeps = append(f.sleeps, d)
	f.now += d
}

type fakeSink struct {
	msgs []midi.Message
}

func (f *fakeSink) Send(msg midi.Message) { f.msgs = append(f.msgs, msg) }
