package platform

import (
	"runtime"
	"testing"

	"emperror.dev/errors"
)

func TestCurrentArch(t *testing.T) {
	if got := CurrentArch(); string(got) != runtime.GOARCH {
		t.Fatalf("CurrentArch() = %q, want %q", got, runtime.GOARCH)
	}
}

func TestValidateSupport(t *testing.T) {
	err := ValidateSupport()
	if runtime.GOOS == "windows" {
		if err != nil {
			t.Fatalf("ValidateSupport() on windows = %v, want nil", err)
		}
		return
	}
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("ValidateSupport() = %v, want ErrUnsupportedOS", err)
	}
}
