//go:build !windows

package osversion

// Query is not available outside Windows.
func Query() (VersionRecord, error) {
	return VersionRecord{}, ErrUnsupported
}
