package dev

// maxDuty is full scale of the 16 bit amplitude.
const maxDuty = 0xFFFF

// periodFor returns the PWM period in nanoseconds for a frequency.
func periodFor(hz uint32) uint64 {
	return 1e9 / uint64(hz)
}

// dutyFor scales a 16 bit amplitude onto the counter range of a slice.
func dutyFor(top uint32, duty uint16) uint32 {
	return uint32(uint64(top) * uint64(duty) / maxDuty)
}
