//go:build rp2040

package dev

import (
	"time"
	_ "unsafe"
)

//go:linkname ticks runtime.ticks
func ticks() uint64

//go:linkname ticksToNanoseconds runtime.ticksToNanoseconds
func ticksToNanoseconds(ticks uint64) int64

//go:inline
func Now() time.Duration {
	return time.Duration(ticksToNanoseconds(ticks()))
}

// Clock reads the 64 bit microsecond timer, which does not wrap during the
// lifetime of the device.
type Clock struct{}

func (Clock) Now() time.Duration {
	return Now()
}

func (Clock) Sleep(d time.Duration) {
	time.Sleep(d)
}
