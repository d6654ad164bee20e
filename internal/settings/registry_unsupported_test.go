//go:build !windows

package settings

import (
	"testing"

	"emperror.dev/errors"
)

func TestRegistryBackend_Unsupported(t *testing.T) {
	s := New(NewRegistryBackend())
	if got := s.Get("theme"); got != "" {
		t.Fatalf("Get() = %q, want empty", got)
	}
	err := s.Set("theme", "dark")
	var werr *WriteError
	if !errors.As(err, &werr) || !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Set() error = %v, want *WriteError wrapping ErrUnsupported", err)
	}
}
