package theremin

import "testing"

func TestQuantizeNoteBuckets(t *testing.T) {
	var octave Octave
	for i := range octave {
		octave[i] = uint32(1000 + i)
	}

	buckets := []struct {
		from, to int
		want     uint32
	}{
		{0, 3, Silence},
		{4, 8, octave[0]},
		{9, 11, octave[1]},
		{12, 15, octave[2]},
		{16, 19, octave[3]},
		{20, 24, octave[4]},
		{25, 31, octave[5]},
		{32, 38, octave[6]},
		{39, 46, octave[7]},
		{47, 54, octave[8]},
		{55, 69, octave[9]},
		{70, 99, octave[10]},
		{100, 500, octave[11]},
	}
	for _, b := range buckets {
		for i := b.from; i <= b.to; i++ {
			if got := QuantizeNote(i, octave); got != b.want {
				t.Fatalf("QuantizeNote(%d) = %d, want %d", i, got, b.want)
			}
		}
	}
}

func TestQuantizeNoteNegativeIsSilent(t *testing.T) {
	if got := QuantizeNote(-5, NoteTable[2]); got != Silence {
		t.Fatalf("expected silence, got %d", got)
	}
}

func TestSelectOctave(t *testing.T) {
	cases := []struct {
		loudness int
		want     int
	}{
		{-100, 0},
		{0, 0},
		{199, 0},
		{200, 1},
		{399, 1},
		{400, 2},
		{699, 2},
		{700, 3},
		{899, 3},
		{900, 3},
		{1200, 3},
		{1500, 3},
		{1501, 4},
		{30000, 4},
	}
	for _, tc := range cases {
		if got := SelectOctave(tc.loudness); got != tc.want {
			t.Errorf("SelectOctave(%d) = %d, want %d", tc.loudness, got, tc.want)
		}
	}
}

func TestNoteTableShape(t *testing.T) {
	if NoteTable[2][9] != 440 {
		t.Fatalf("expected A4 at octave 2 slot 9, got %d", NoteTable[2][9])
	}
	if NoteTable[1][10] != 223 || NoteTable[3][1] != 544 || NoteTable[3][7] != 789 {
		t.Fatalf("tuned table entries changed")
	}
}

func TestMIDIKey(t *testing.T) {
	if got := MIDIKey(0, 0); got != 36 {
		t.Fatalf("MIDIKey(0,0) = %d, want 36", got)
	}
	if got := MIDIKey(2, 9); got != 69 {
		t.Fatalf("MIDIKey(2,9) = %d, want 69 (A4)", got)
	}
	if got := MIDIKey(4, 11); got != 95 {
		t.Fatalf("MIDIKey(4,11) = %d, want 95", got)
	}
}
