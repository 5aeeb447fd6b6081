package theremin

// Silence is the reserved frequency meaning "no tone". The output stage
// forces zero amplitude whenever it is played.
const Silence uint32 = 10

const (
	Octaves         = 5
	NotesPerOctave  = 12
	firstOctaveMIDI = 36 // C2, the first entry of NoteTable
)

// Octave holds the twelve semitone frequencies of one octave in Hz.
type Octave [NotesPerOctave]uint32

// NoteTable spans five octaves starting at C2. The values are the tuned
// table of the instrument and are kept exactly, uneven entries included.
var NoteTable = [Octaves]Octave{
	{65, 69, 73, 77, 82, 87, 92, 97, 103, 110, 116, 123},
	{130, 138, 146, 155, 164, 174, 184, 195, 207, 220, 223, 246},
	{261, 277, 293, 311, 329, 349, 369, 391, 415, 440, 466, 493},
	{523, 544, 587, 622, 659, 698, 739, 789, 830, 880, 932, 987},
	{1046, 1108, 1174, 1244, 1318, 1396, 1480, 1568, 1661, 1760, 1864, 1975},
}

// SelectOctave picks an octave from the loudness hand position.
// Loudness between 900 and 1500 falls through to octave 3.
func SelectOctave(loudness int) int {
	switch {
	case loudness < 200:
		return 0
	case loudness < 400:
		return 1
	case loudness < 700:
		return 2
	case loudness < 900:
		return 3
	case loudness > 1500:
		return 4
	}
	return 3
}

// noteBounds are the exclusive upper bounds of each semitone bucket. The
// first bucket is silence.
var noteBounds = [NotesPerOctave]int{9, 12, 16, 20, 25, 32, 39, 47, 55, 70, 100}

const silentBelow = 4

// NoteSlot maps a pitch index onto a semitone slot of an octave, or -1 when
// the index is in the silent bucket.
func NoteSlot(index int) int {
	if index < silentBelow {
		return -1
	}
	for slot, bound := range noteBounds[:NotesPerOctave-1] {
		if index < bound {
			return slot
		}
	}
	return NotesPerOctave - 1
}

// QuantizeNote snaps a pitch index to a note of the given octave.
func QuantizeNote(index int, octave Octave) uint32 {
	slot := NoteSlot(index)
	if slot < 0 {
		return Silence
	}
	return octave[slot]
}

// MIDIKey returns the MIDI key number of a NoteTable entry.
func MIDIKey(octave, slot int) uint8 {
	return uint8(firstOctaveMIDI + octave*NotesPerOctave + slot)
}
