//go:build windows

package osversion

import (
	"golang.org/x/sys/windows"
)

// Query reads the version record with RtlGetVersion, which is not subject to
// the manifest based version lie of GetVersionEx.
func Query() (VersionRecord, error) {
	info := windows.RtlGetVersion()
	return VersionRecord{
		Family:      PlatformFamily(info.PlatformId),
		Major:       info.MajorVersion,
		Minor:       info.MinorVersion,
		Build:       info.BuildNumber,
		ProductType: ProductType(info.ProductType),
		ServicePack: windows.UTF16ToString(info.CsdVersion[:]),
	}, nil
}
