// Package wow64 detects 32-bit-on-64-bit emulation at run time. The query
// functions only exist on some Windows releases, so they are resolved by name
// on every call and any failure is reported as "not emulated".
package wow64

import (
	"emperror.dev/errors"
	"github.com/apex/log"
)

// ErrCapabilityAbsent is returned by a Lookup when the module or the symbol
// backing a capability is missing.
var ErrCapabilityAbsent = errors.Sentinel("optional capability is not available")

// Query invokes a resolved capability.
type Query[T any] func() (T, error)

// Lookup resolves a capability. Absence is reported as an error wrapping
// ErrCapabilityAbsent.
type Lookup[T any] func() (Query[T], error)

// Image file machine types reported by NativeMachine.
const (
	MachineUnknown uint16 = 0
	MachineI386    uint16 = 0x014c
	MachineARM     uint16 = 0x01c4
	MachineAMD64   uint16 = 0x8664
	MachineARM64   uint16 = 0xaa64
)

// Probe resolves and invokes a capability. Every failure, including a panic
// raised while calling into the OS, yields the zero value of T.
func Probe[T any](lookup Lookup[T]) (v T) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Debug("capability query panicked")
			var zero T
			v = zero
		}
	}()

	query, err := lookup()
	if err != nil {
		log.WithError(err).Debug("optional capability not present")
		return v
	}
	if query == nil {
		return v
	}
	res, err := query()
	if err != nil {
		log.WithError(err).Debug("optional capability query failed")
		return v
	}
	return res
}

// IsEmulated reports whether the current process is a 32-bit process running
// under WOW64 on a 64-bit host.
func IsEmulated() bool {
	return Probe[bool](isWow64Lookup)
}

// NativeMachine returns the image file machine type of the host, or
// MachineUnknown when the host cannot report it.
func NativeMachine() uint16 {
	return Probe[uint16](nativeMachineLookup)
}

// MachineName returns a short label for an image file machine type.
func MachineName(machine uint16) string {
	switch machine {
	case MachineI386:
		return "x86"
	case MachineARM:
		return "arm"
	case MachineAMD64:
		return "x64"
	case MachineARM64:
		return "arm64"
	default:
		return ""
	}
}
