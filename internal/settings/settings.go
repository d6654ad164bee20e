// Package settings persists small text values for the product under a fixed
// machine-wide namespace.
//
// On Windows the namespace is HKEY_LOCAL_MACHINE\SOFTWARE\Synergy. The path is
// shared with other components of the product, so it must not change.
package settings

import (
	"strings"

	"emperror.dev/errors"
	"github.com/apex/log"
)

// Product is the product's own segment of the namespace.
const Product = "Synergy"

var (
	// ErrNotExist is returned by a backend when a key or a value is missing.
	ErrNotExist = errors.Sentinel("settings key or value does not exist")
	// ErrUnsupported is returned by the registry backend outside Windows.
	ErrUnsupported = errors.Sentinel("settings registry is not supported on this platform")
	// ErrInvalidPath is returned for an empty path or a path with an empty segment.
	ErrInvalidPath = errors.Sentinel("invalid settings path")
)

// Path is an ordered list of namespace segments, outermost first.
type Path []string

var namespace = Path{"SOFTWARE", Product}

// Namespace returns the settings namespace. Each call returns a new copy.
func Namespace() Path {
	return append(Path(nil), namespace...)
}

// Validate checks that the path has at least one segment and no empty ones.
func (p Path) Validate() error {
	if len(p) == 0 {
		return errors.WithStack(ErrInvalidPath)
	}
	for i, s := range p {
		if s == "" {
			return errors.WithMessagef(ErrInvalidPath, "segment %d is empty", i)
		}
	}
	return nil
}

func (p Path) String() string {
	return strings.Join(p, `\`)
}

// Key is an open namespace level. It is only valid until Close.
type Key interface {
	// StringValue returns the named text value, ErrNotExist if it is missing.
	StringValue(name string) (string, error)
	SetStringValue(name, value string) error
	// DeleteValue removes the named value, ErrNotExist if it is missing.
	DeleteValue(name string) error
	Close() error
}

// Backend is a hierarchical key-value store.
type Backend interface {
	// OpenKey opens an existing key. It fails with ErrNotExist when any
	// segment of the path is missing.
	OpenKey(path Path, writable bool) (Key, error)
	// CreateKey opens a key for writing, creating every missing segment.
	CreateKey(path Path) (Key, error)
}

// Backend kinds accepted by NewBackend.
const (
	BackendRegistry = "registry"
	BackendMemory   = "memory"
)

// NewBackend returns the backend registered under kind.
func NewBackend(kind string) (Backend, error) {
	switch kind {
	case BackendRegistry:
		return NewRegistryBackend(), nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, errors.Errorf("unknown settings backend %q", kind)
	}
}

// WriteError is returned when a setting could not be written.
type WriteError struct {
	// Name of the setting.
	Name string
	// Op is "open" when the namespace could not be opened or created and
	// "write" when the value itself was rejected.
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	if e.Op == "write" {
		return "could not write registry value: " + e.Name + ": " + e.Err.Error()
	}
	return "could not access registry key: " + e.Name + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Store reads and writes settings under the fixed namespace. It holds no
// state besides the backend; every call opens and closes its own key.
type Store struct {
	backend Backend
	path    Path
}

// New returns a store over the given backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		path:    Namespace(),
	}
}

// Get returns the named setting. A missing namespace, a missing value or a
// value that is not text all read as "".
func (s *Store) Get(name string) string {
	key, err := s.backend.OpenKey(s.path, false)
	if err != nil {
		s.logger(name).WithError(err).Debug("settings namespace not readable")
		return ""
	}
	defer key.Close()

	v, err := key.StringValue(name)
	if err != nil {
		if !errors.Is(err, ErrNotExist) {
			s.logger(name).WithError(err).Debug("could not read setting")
		}
		return ""
	}
	return v
}

// Set writes the named setting, creating the namespace if needed and
// replacing any previous value.
func (s *Store) Set(name, value string) error {
	key, err := s.backend.CreateKey(s.path)
	if err != nil {
		return &WriteError{Name: name, Op: "open", Err: err}
	}
	defer key.Close()

	if err := key.SetStringValue(name, value); err != nil {
		return &WriteError{Name: name, Op: "write", Err: err}
	}
	s.logger(name).Debug("wrote setting")
	return nil
}

// Delete removes the named setting. Deleting a setting that does not exist
// is not an error.
func (s *Store) Delete(name string) error {
	key, err := s.backend.OpenKey(s.path, true)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			return nil
		}
		return &WriteError{Name: name, Op: "open", Err: err}
	}
	defer key.Close()

	if err := key.DeleteValue(name); err != nil && !errors.Is(err, ErrNotExist) {
		return &WriteError{Name: name, Op: "write", Err: err}
	}
	return nil
}

func (s *Store) logger(name string) *log.Entry {
	return log.WithFields(log.Fields{"namespace": s.path.String(), "setting": name})
}
