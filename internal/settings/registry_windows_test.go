//go:build windows

package settings

import (
	"testing"

	"golang.org/x/sys/windows/registry"
)

// newUserStore writes below HKEY_CURRENT_USER so the test does not need
// administrator rights.
func newUserStore(t *testing.T) *Store {
	t.Helper()
	path := Path{"SOFTWARE", "picoArchTest", t.Name()}
	t.Cleanup(func() {
		for i := len(path); i > 1; i-- {
			_ = registry.DeleteKey(registry.CURRENT_USER, path[:i].String())
		}
	})
	return &Store{
		backend: &RegistryBackend{root: registry.CURRENT_USER},
		path:    path,
	}
}

func TestRegistryBackend_RoundTrip(t *testing.T) {
	s := newUserStore(t)
	if got := s.Get("theme"); got != "" {
		t.Fatalf("Get() before Set() = %q, want empty", got)
	}
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if got := s.Get("theme"); got != "dark" {
		t.Fatalf("Get() = %q, want %q", got, "dark")
	}
	if err := s.Set("theme", ""); err != nil {
		t.Fatalf("Set(empty) = %v", err)
	}
	if got := s.Get("theme"); got != "" {
		t.Fatalf("Get() = %q, want empty", got)
	}
	if err := s.Delete("theme"); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if err := s.Delete("theme"); err != nil {
		t.Fatalf("second Delete() = %v", err)
	}
}

func TestRegistryBackend_NonStringValueReadsEmpty(t *testing.T) {
	s := newUserStore(t)
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	k, err := registry.OpenKey(registry.CURRENT_USER, s.path.String(), registry.SET_VALUE)
	if err != nil {
		t.Fatalf("OpenKey() = %v", err)
	}
	defer k.Close()
	if err := k.SetDWordValue("count", 7); err != nil {
		t.Fatalf("SetDWordValue() = %v", err)
	}
	if got := s.Get("count"); got != "" {
		t.Fatalf("Get() on a DWORD value = %q, want empty", got)
	}
}
