//go:build rp2040

package dev

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the memory mapped register bus of the chip.
type MMIO struct{}

func (MMIO) Load(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}

func (MMIO) Store(addr uintptr, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(v)
}
