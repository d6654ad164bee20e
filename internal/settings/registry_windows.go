//go:build windows

package settings

import (
	"emperror.dev/errors"
	"github.com/apex/log"
	"golang.org/x/sys/windows/registry"
)

// RegistryBackend stores settings under HKEY_LOCAL_MACHINE.
type RegistryBackend struct {
	root registry.Key
}

// NewRegistryBackend returns a backend rooted at HKEY_LOCAL_MACHINE.
func NewRegistryBackend() *RegistryBackend {
	return &RegistryBackend{root: registry.LOCAL_MACHINE}
}

// OpenKey opens an existing key, read-only unless writable is set.
func (b *RegistryBackend) OpenKey(path Path, writable bool) (Key, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	access := uint32(registry.QUERY_VALUE)
	if writable {
		access |= registry.SET_VALUE
	}
	k, err := registry.OpenKey(b.root, path.String(), access)
	if err != nil {
		return nil, convertError(err)
	}
	return &registryKey{key: k}, nil
}

// CreateKey opens the key one segment at a time, creating the segments that
// do not exist yet.
func (b *RegistryBackend) CreateKey(path Path) (Key, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}

	parent := b.root
	for i, segment := range path {
		k, existed, err := registry.CreateKey(parent, segment, registry.QUERY_VALUE|registry.SET_VALUE|registry.CREATE_SUB_KEY)
		// The root is a predefined handle and is never closed.
		if i > 0 {
			parent.Close()
		}
		if err != nil {
			return nil, errors.WrapIff(convertError(err), "create key %s", path[:i+1])
		}
		if !existed {
			log.WithField("key", `HKLM\`+path[:i+1].String()).Debug("created registry key")
		}
		parent = k
	}
	return &registryKey{key: parent}, nil
}

type registryKey struct {
	key registry.Key
}

func (k *registryKey) StringValue(name string) (string, error) {
	v, _, err := k.key.GetStringValue(name)
	if err != nil {
		return "", convertError(err)
	}
	return v, nil
}

func (k *registryKey) SetStringValue(name, value string) error {
	return convertError(k.key.SetStringValue(name, value))
}

func (k *registryKey) DeleteValue(name string) error {
	return convertError(k.key.DeleteValue(name))
}

func (k *registryKey) Close() error {
	return k.key.Close()
}

func convertError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, registry.ErrNotExist) {
		return errors.WithStack(ErrNotExist)
	}
	return errors.WithStack(err)
}
