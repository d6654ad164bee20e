//go:build windows

package wow64

import (
	"unsafe"

	"emperror.dev/errors"
	"golang.org/x/sys/windows"
)

var modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

// findProc loads dll and resolves name from it without panicking when either
// is missing.
func findProc(dll *windows.LazyDLL, name string) (*windows.LazyProc, error) {
	if err := dll.Load(); err != nil {
		return nil, errors.WithMessagef(ErrCapabilityAbsent, "load %s: %v", dll.Name, err)
	}
	proc := dll.NewProc(name)
	if err := proc.Find(); err != nil {
		return nil, errors.WithMessagef(ErrCapabilityAbsent, "resolve %s!%s: %v", dll.Name, name, err)
	}
	return proc, nil
}

func isWow64Lookup() (Query[bool], error) {
	return isWow64LookupFrom(modkernel32, "IsWow64Process")
}

func isWow64LookupFrom(dll *windows.LazyDLL, name string) (Query[bool], error) {
	proc, err := findProc(dll, name)
	if err != nil {
		return nil, err
	}
	return func() (bool, error) {
		var wow64 uint32
		r1, _, e := proc.Call(uintptr(windows.CurrentProcess()), uintptr(unsafe.Pointer(&wow64)))
		if r1 == 0 {
			return false, errors.WithStack(e)
		}
		return wow64 != 0, nil
	}, nil
}

// nativeMachineLookup uses IsWow64Process2, which only exists on Windows 10
// 1511 and later.
func nativeMachineLookup() (Query[uint16], error) {
	proc, err := findProc(modkernel32, "IsWow64Process2")
	if err != nil {
		return nil, err
	}
	return func() (uint16, error) {
		var processMachine, nativeMachine uint16
		r1, _, e := proc.Call(
			uintptr(windows.CurrentProcess()),
			uintptr(unsafe.Pointer(&processMachine)),
			uintptr(unsafe.Pointer(&nativeMachine)),
		)
		if r1 == 0 {
			return MachineUnknown, errors.WithStack(e)
		}
		return nativeMachine, nil
	}, nil
}
