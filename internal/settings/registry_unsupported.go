//go:build !windows

package settings

import "emperror.dev/errors"

// RegistryBackend has no store to talk to outside Windows. Every open fails,
// so reads return "" and writes return a WriteError.
type RegistryBackend struct{}

// NewRegistryBackend returns the fallback backend.
func NewRegistryBackend() *RegistryBackend {
	return &RegistryBackend{}
}

func (b *RegistryBackend) OpenKey(Path, bool) (Key, error) {
	return nil, errors.WithStack(ErrUnsupported)
}

func (b *RegistryBackend) CreateKey(Path) (Key, error) {
	return nil, errors.WithStack(ErrUnsupported)
}
