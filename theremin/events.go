package theremin

import (
	"log/slog"

	"gitlab.com/gomidi/midi/v2"
)

// NoteSink receives the note events of piano mode.
type NoteSink interface {
	Send(msg midi.Message)
}

// LogNotes writes note events to a logger.
func LogNotes(log *slog.Logger) NoteSink {
	return logSink{log: log}
}

type logSink struct {
	log *slog.Logger
}

func (s logSink) Send(msg midi.Message) {
	s.log.Info("note", "msg", msg.String())
}

// noteTracker turns the stream of quantized notes into NoteOn/NoteOff pairs.
type noteTracker struct {
	sink    NoteSink
	channel uint8
	key     uint8
	on      bool
}

// velocity of the fixed piano amplitude on the 0..127 MIDI scale
const pianoVelocity = uint8(PianoVolume * 127 / 65535)

func (t *noteTracker) play(octave, slot int) {
	if t.sink == nil {
		return
	}
	if slot < 0 {
		t.release()
		return
	}
	key := MIDIKey(octave, slot)
	if t.on && key == t.key {
		return
	}
	t.release()
	t.sink.Send(midi.NoteOn(t.channel, key, pianoVelocity))
	t.key = key
	t.on = true
}

func (t *noteTracker) release() {
	if t.sink == nil || !t.on {
		return
	}
	t.sink.Send(midi.NoteOff(t.channel, t.key))
	t.on = false
}
