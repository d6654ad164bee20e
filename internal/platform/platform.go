package platform

import (
	"runtime"

	"emperror.dev/errors"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const Windows SupportedOS = "windows"

// Architecture is the CPU architecture the binary was built for.
type Architecture string

const (
	ArchX86   Architecture = "386"
	ArchAMD64 Architecture = "amd64"
	ArchARM64 Architecture = "arm64"
)

// ErrUnsupportedOS is returned by ValidateSupport on hosts without a native
// settings namespace.
var ErrUnsupportedOS = errors.Sentinel("unsupported operating system")

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// CurrentArch returns the architecture of the running binary. A 32-bit build
// reports ArchX86 even on a 64-bit host; see the wow64 package for that case.
func CurrentArch() Architecture {
	return Architecture(runtime.GOARCH)
}

// IsSupported returns true if the current OS has a native implementation of
// the system facade.
func IsSupported() bool {
	return GetOS() == Windows
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return errors.WithMessagef(ErrUnsupportedOS, "%s (supported: windows)", runtime.GOOS)
	}
	return nil
}
