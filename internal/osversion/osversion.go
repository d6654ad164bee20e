// Package osversion turns the raw version record reported by Windows into a
// human readable product name and a CPU platform label.
package osversion

import (
	"fmt"
	"strings"

	"emperror.dev/errors"

	"github.com/CristiGvl/picoArch/internal/platform"
)

// PlatformFamily is the OS lineage, numerically equal to dwPlatformId.
type PlatformFamily uint32

const (
	FamilyWin32s  PlatformFamily = 0
	FamilyWindows PlatformFamily = 1 // 95, 98, ME
	FamilyNT      PlatformFamily = 2
)

func (f PlatformFamily) String() string {
	switch f {
	case FamilyWin32s:
		return "win32s"
	case FamilyWindows:
		return "windows"
	case FamilyNT:
		return "nt"
	default:
		return "unknown"
	}
}

// ProductType distinguishes workstation and server editions of the NT family.
type ProductType uint8

const (
	ProductUnspecified      ProductType = 0
	ProductWorkstation      ProductType = 1
	ProductDomainController ProductType = 2
	ProductServer           ProductType = 3
)

func (p ProductType) String() string {
	switch p {
	case ProductWorkstation:
		return "workstation"
	case ProductDomainController:
		return "domain_controller"
	case ProductServer:
		return "server"
	default:
		return "unspecified"
	}
}

// VersionRecord is a snapshot of the OS version information. It is built
// fresh on every Query.
type VersionRecord struct {
	Family      PlatformFamily
	Major       uint32
	Minor       uint32
	Build       uint32
	ProductType ProductType
	// ServicePack is the CSD version text. On the 95 family its second
	// character encodes the OSR2 and SE sub-releases.
	ServicePack string
}

// Unknown is returned for any record that no rule recognises.
const Unknown = "Microsoft Windows <unknown>"

// ErrUnsupported is returned by Query on hosts that are not Windows.
var ErrUnsupported = errors.Sentinel("os version query is not supported on this platform")

type rule struct {
	match func(VersionRecord) bool
	label func(VersionRecord) string
}

// rules is evaluated top to bottom and the first match wins.
var rules = []rule{
	{nt(is(6, 0)), byProductType("Microsoft Windows Vista", "Microsoft Windows Server 2008")},
	{nt(is(6, 1)), byProductType("Microsoft Windows 7", "Microsoft Windows Server 2008 R2")},
	{nt(is(5, 2)), fixed("Microsoft Windows Server 2003")},
	{nt(is(5, 1)), fixed("Microsoft Windows XP")},
	{nt(is(5, 0)), fixed("Microsoft Windows Server 2000")},
	{nt(func(r VersionRecord) bool { return r.Major <= 4 }), fixed("Microsoft Windows NT")},
	{nt(func(VersionRecord) bool { return true }), func(r VersionRecord) string {
		return fmt.Sprintf("Microsoft Windows %d.%d", r.Major, r.Minor)
	}},
	{legacy(is(4, 0)), byServicePack("CB", "Microsoft Windows 95 OSR2", "Microsoft Windows 95")},
	{legacy(is(4, 10)), byServicePack("A", "Microsoft Windows 98 SE", "Microsoft Windows 98")},
	{legacy(is(4, 90)), fixed("Microsoft Windows ME")},
	{legacy(func(r VersionRecord) bool { return r.Major == 4 }), fixed("Microsoft Windows unknown 95 family")},
}

// ResolveName maps a version record to a display name. It is total and pure:
// every record yields a label and equal records yield equal labels.
func ResolveName(r VersionRecord) string {
	for _, rl := range rules {
		if rl.match(r) {
			return rl.label(r)
		}
	}
	return Unknown
}

// ResolvePlatformLabel maps the build architecture and the WOW64 state to the
// platform label shown to users.
func ResolvePlatformLabel(arch platform.Architecture, emulated bool) string {
	switch arch {
	case platform.ArchX86:
		if emulated {
			return "x86 (WOW64)"
		}
		return "x86"
	case platform.ArchAMD64:
		return "x64"
	default:
		return "Unknown"
	}
}

func is(major, minor uint32) func(VersionRecord) bool {
	return func(r VersionRecord) bool {
		return r.Major == major && r.Minor == minor
	}
}

func nt(m func(VersionRecord) bool) func(VersionRecord) bool {
	return func(r VersionRecord) bool {
		return r.Family == FamilyNT && m(r)
	}
}

func legacy(m func(VersionRecord) bool) func(VersionRecord) bool {
	return func(r VersionRecord) bool {
		return r.Family == FamilyWindows && m(r)
	}
}

func fixed(label string) func(VersionRecord) string {
	return func(VersionRecord) string { return label }
}

// byProductType picks the workstation label only for ProductWorkstation; domain
// controllers and unspecified editions get the server label.
func byProductType(workstation, server string) func(VersionRecord) string {
	return func(r VersionRecord) string {
		if r.ProductType == ProductWorkstation {
			return workstation
		}
		return server
	}
}

// byServicePack inspects the second character of the CSD version.
func byServicePack(letters, variant, base string) func(VersionRecord) string {
	return func(r VersionRecord) string {
		if len(r.ServicePack) > 1 && strings.IndexByte(letters, r.ServicePack[1]) >= 0 {
			return variant
		}
		return base
	}
}
