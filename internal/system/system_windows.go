//go:build windows

package system

import (
	"context"

	"emperror.dev/errors"
	"github.com/StackExchange/wmi"
)

// Win32_OperatingSystem represents the WMI operating system class
type Win32_OperatingSystem struct {
	Caption     string
	Version     string
	BuildNumber string
}

// newPlatformReader creates a new Windows reader with the WMI caption lookup
func newPlatformReader() Reader {
	r := newReader()
	r.caption = operatingSystemCaption
	return r
}

// operatingSystemCaption returns the marketing name Windows reports for
// itself, e.g. "Microsoft Windows 11 Pro"
func operatingSystemCaption(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var systems []Win32_OperatingSystem
	if err := wmi.Query("SELECT Caption, Version, BuildNumber FROM Win32_OperatingSystem", &systems); err != nil {
		return "", errors.WrapIf(err, "query Win32_OperatingSystem")
	}
	if len(systems) == 0 {
		return "", nil
	}
	return systems[0].Caption, nil
}
