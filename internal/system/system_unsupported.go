//go:build !windows

package system

// newPlatformReader creates a reader that only has host details; the OS name
// resolves to the unknown label
func newPlatformReader() Reader {
	return newReader()
}
