package settings

import (
	"strings"
	"sync"

	"emperror.dev/errors"
)

// MemoryBackend keeps keys in process memory. Key and value names are
// matched case-insensitively, like the registry.
type MemoryBackend struct {
	mu   sync.Mutex
	keys map[string]map[string]string
	// open counts handles that have not been closed yet.
	open int
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{keys: make(map[string]map[string]string)}
}

func fold(p Path) string {
	return strings.ToLower(p.String())
}

// OpenKey opens an existing key.
func (b *MemoryBackend) OpenKey(path Path, _ bool) (Key, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range path {
		if _, ok := b.keys[fold(path[:i+1])]; !ok {
			return nil, errors.WithMessagef(ErrNotExist, "key %s", path[:i+1])
		}
	}
	b.open++
	return &memoryKey{backend: b, id: fold(path)}, nil
}

// CreateKey opens a key, creating every missing segment on the way.
func (b *MemoryBackend) CreateKey(path Path) (Key, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range path {
		id := fold(path[:i+1])
		if _, ok := b.keys[id]; !ok {
			b.keys[id] = make(map[string]string)
		}
	}
	b.open++
	return &memoryKey{backend: b, id: fold(path)}, nil
}

type memoryKey struct {
	backend *MemoryBackend
	id      string
	closed  bool
}

var errKeyClosed = errors.Sentinel("key is closed")

func (k *memoryKey) StringValue(name string) (string, error) {
	k.backend.mu.Lock()
	defer k.backend.mu.Unlock()
	if k.closed {
		return "", errors.WithStack(errKeyClosed)
	}
	v, ok := k.backend.keys[k.id][strings.ToLower(name)]
	if !ok {
		return "", errors.WithMessagef(ErrNotExist, "value %q", name)
	}
	return v, nil
}

func (k *memoryKey) SetStringValue(name, value string) error {
	k.backend.mu.Lock()
	defer k.backend.mu.Unlock()
	if k.closed {
		return errors.WithStack(errKeyClosed)
	}
	// Callers may hand in strings backed by reused buffers.
	k.backend.keys[k.id][strings.Clone(strings.ToLower(name))] = strings.Clone(value)
	return nil
}

func (k *memoryKey) DeleteValue(name string) error {
	k.backend.mu.Lock()
	defer k.backend.mu.Unlock()
	if k.closed {
		return errors.WithStack(errKeyClosed)
	}
	values := k.backend.keys[k.id]
	if _, ok := values[strings.ToLower(name)]; !ok {
		return errors.WithMessagef(ErrNotExist, "value %q", name)
	}
	delete(values, strings.ToLower(name))
	return nil
}

func (k *memoryKey) Close() error {
	k.backend.mu.Lock()
	defer k.backend.mu.Unlock()
	if k.closed {
		return nil
	}
	k.closed = true
	k.backend.open--
	return nil
}
