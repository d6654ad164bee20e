//go:build !windows

package wow64

func isWow64Lookup() (Query[bool], error) {
	return nil, ErrCapabilityAbsent
}

func nativeMachineLookup() (Query[uint16], error) {
	return nil, ErrCapabilityAbsent
}
