package system

import (
	"context"

	"github.com/apex/log"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/CristiGvl/picoArch/internal/osversion"
	"github.com/CristiGvl/picoArch/internal/platform"
	"github.com/CristiGvl/picoArch/internal/wow64"
)

// Info describes the host operating system
type Info struct {
	OSName        string       `json:"os_name"`
	Platform      string       `json:"platform"`
	Architecture  string       `json:"architecture"`
	Emulated      bool         `json:"emulated"`
	NativeMachine string       `json:"native_machine,omitempty"`
	Version       *VersionInfo `json:"version,omitempty"`
	Host          *HostInfo    `json:"host,omitempty"`
}

// VersionInfo is the raw version record behind OSName
type VersionInfo struct {
	Family      string `json:"family"`
	Major       uint32 `json:"major"`
	Minor       uint32 `json:"minor"`
	Build       uint32 `json:"build"`
	ProductType string `json:"product_type"`
	ServicePack string `json:"service_pack,omitempty"`
}

// HostInfo holds details that are not needed to resolve the OS name
type HostInfo struct {
	Hostname      string `json:"hostname"`
	Caption       string `json:"caption,omitempty"`
	KernelVersion string `json:"kernel_version"`
	KernelArch    string `json:"kernel_arch"`
	Uptime        uint64 `json:"uptime_seconds"`
}

// Reader interface for OS identity
type Reader interface {
	OSName() string
	PlatformName() string
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new OS identity reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

type reader struct {
	queryVersion  func() (osversion.VersionRecord, error)
	emulated      func() bool
	nativeMachine func() uint16
	arch          func() platform.Architecture
	hostInfo      func(ctx context.Context) (*host.InfoStat, error)
	caption       func(ctx context.Context) (string, error)
}

func newReader() *reader {
	return &reader{
		queryVersion:  osversion.Query,
		emulated:      wow64.IsEmulated,
		nativeMachine: wow64.NativeMachine,
		arch:          platform.CurrentArch,
		hostInfo:      host.InfoWithContext,
		caption:       func(context.Context) (string, error) { return "", nil },
	}
}

// OSName returns the display name of the running OS
func (r *reader) OSName() string {
	rec, err := r.queryVersion()
	if err != nil {
		log.WithError(err).Debug("could not query os version")
		return osversion.Unknown
	}
	return osversion.ResolveName(rec)
}

// PlatformName returns the CPU platform label, e.g. "x86 (WOW64)"
func (r *reader) PlatformName() string {
	return osversion.ResolvePlatformLabel(r.arch(), r.emulated())
}

// GetInfo returns everything known about the host. Only a cancelled context
// is reported as an error; missing details are left empty.
func (r *reader) GetInfo(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emulated := r.emulated()
	info := &Info{
		OSName:        osversion.Unknown,
		Platform:      osversion.ResolvePlatformLabel(r.arch(), emulated),
		Architecture:  string(r.arch()),
		Emulated:      emulated,
		NativeMachine: wow64.MachineName(r.nativeMachine()),
	}

	if rec, err := r.queryVersion(); err == nil {
		info.OSName = osversion.ResolveName(rec)
		info.Version = &VersionInfo{
			Family:      rec.Family.String(),
			Major:       rec.Major,
			Minor:       rec.Minor,
			Build:       rec.Build,
			ProductType: rec.ProductType.String(),
			ServicePack: rec.ServicePack,
		}
	} else {
		log.WithError(err).Debug("could not query os version")
	}

	hostInfo, err := r.hostInfo(ctx)
	if err != nil {
		log.WithError(err).Warn("could not read host information")
	} else if hostInfo != nil {
		info.Host = &HostInfo{
			Hostname:      hostInfo.Hostname,
			KernelVersion: hostInfo.KernelVersion,
			KernelArch:    hostInfo.KernelArch,
			Uptime:        hostInfo.Uptime,
		}
		caption, err := r.caption(ctx)
		if err != nil {
			log.WithError(err).Debug("could not read os caption")
		}
		info.Host.Caption = caption
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return info, nil
}
