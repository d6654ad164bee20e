package osversion

import (
	"runtime"
	"testing"

	"emperror.dev/errors"

	"github.com/CristiGvl/picoArch/internal/platform"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name   string
		record VersionRecord
		want   string
	}{
		{
			name:   "vista",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 0, ProductType: ProductWorkstation},
			want:   "Microsoft Windows Vista",
		},
		{
			name:   "server2008",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 0, ProductType: ProductServer},
			want:   "Microsoft Windows Server 2008",
		},
		{
			name:   "windows7",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 1, ProductType: ProductWorkstation},
			want:   "Microsoft Windows 7",
		},
		{
			name:   "server2008R2",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 1, ProductType: ProductServer},
			want:   "Microsoft Windows Server 2008 R2",
		},
		{
			name:   "domainControllerUsesServerLabel",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 1, ProductType: ProductDomainController},
			want:   "Microsoft Windows Server 2008 R2",
		},
		{
			name:   "unspecifiedProductUsesServerLabel",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 0},
			want:   "Microsoft Windows Server 2008",
		},
		{
			name:   "server2003",
			record: VersionRecord{Family: FamilyNT, Major: 5, Minor: 2, ProductType: ProductServer},
			want:   "Microsoft Windows Server 2003",
		},
		{
			name:   "xp",
			record: VersionRecord{Family: FamilyNT, Major: 5, Minor: 1, ProductType: ProductWorkstation},
			want:   "Microsoft Windows XP",
		},
		{
			name:   "server2000",
			record: VersionRecord{Family: FamilyNT, Major: 5, Minor: 0, ProductType: ProductWorkstation},
			want:   "Microsoft Windows Server 2000",
		},
		{
			name:   "nt4",
			record: VersionRecord{Family: FamilyNT, Major: 4, Minor: 0},
			want:   "Microsoft Windows NT",
		},
		{
			name:   "nt351",
			record: VersionRecord{Family: FamilyNT, Major: 3, Minor: 51},
			want:   "Microsoft Windows NT",
		},
		{
			name:   "windows8Synthesized",
			record: VersionRecord{Family: FamilyNT, Major: 6, Minor: 2, ProductType: ProductWorkstation},
			want:   "Microsoft Windows 6.2",
		},
		{
			name:   "windows10Synthesized",
			record: VersionRecord{Family: FamilyNT, Major: 10, Minor: 0, Build: 22631, ProductType: ProductWorkstation},
			want:   "Microsoft Windows 10.0",
		},
		{
			name:   "unknownMinorOfKnownMajor",
			record: VersionRecord{Family: FamilyNT, Major: 5, Minor: 3},
			want:   "Microsoft Windows 5.3",
		},
		{
			name:   "windows95",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 0, ServicePack: " A"},
			want:   "Microsoft Windows 95",
		},
		{
			name:   "windows95OSR2C",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 0, ServicePack: " C"},
			want:   "Microsoft Windows 95 OSR2",
		},
		{
			name:   "windows95OSR2B",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 0, ServicePack: " B"},
			want:   "Microsoft Windows 95 OSR2",
		},
		{
			name:   "windows98",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 10},
			want:   "Microsoft Windows 98",
		},
		{
			name:   "windows98SE",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 10, ServicePack: " A "},
			want:   "Microsoft Windows 98 SE",
		},
		{
			name:   "windows98LetterAtWrongPosition",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 10, ServicePack: "A"},
			want:   "Microsoft Windows 98",
		},
		{
			name:   "windowsME",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 90},
			want:   "Microsoft Windows ME",
		},
		{
			name:   "unknown95Family",
			record: VersionRecord{Family: FamilyWindows, Major: 4, Minor: 3},
			want:   "Microsoft Windows unknown 95 family",
		},
		{
			name:   "legacyFamilyOtherMajorFallsThrough",
			record: VersionRecord{Family: FamilyWindows, Major: 5, Minor: 0},
			want:   Unknown,
		},
		{
			name:   "win32s",
			record: VersionRecord{Family: FamilyWin32s, Major: 1, Minor: 30},
			want:   Unknown,
		},
		{
			name:   "unknownFamily",
			record: VersionRecord{Family: PlatformFamily(7), Major: 6, Minor: 1, ProductType: ProductWorkstation},
			want:   Unknown,
		},
		{
			name: "zeroRecord",
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(tt.record); got != tt.want {
				t.Errorf("ResolveName(%+v) = %q, want %q", tt.record, got, tt.want)
			}
		})
	}
}

func TestResolveName_HistoricalPairsIgnoreProductType(t *testing.T) {
	want := map[[2]uint32]string{
		{5, 2}: "Microsoft Windows Server 2003",
		{5, 1}: "Microsoft Windows XP",
		{5, 0}: "Microsoft Windows Server 2000",
	}
	products := []ProductType{ProductUnspecified, ProductWorkstation, ProductDomainController, ProductServer}
	for pair, label := range want {
		for _, p := range products {
			r := VersionRecord{Family: FamilyNT, Major: pair[0], Minor: pair[1], ProductType: p}
			if got := ResolveName(r); got != label {
				t.Errorf("ResolveName(%+v) = %q, want %q", r, got, label)
			}
		}
	}
}

func TestResolveName_TotalAndDeterministic(t *testing.T) {
	families := []PlatformFamily{FamilyWin32s, FamilyWindows, FamilyNT, PlatformFamily(3)}
	products := []ProductType{ProductUnspecified, ProductWorkstation, ProductDomainController, ProductServer}
	servicePacks := []string{"", "A", " A", " B", " C", " Z"}
	for _, f := range families {
		for major := uint32(0); major <= 11; major++ {
			for _, minor := range []uint32{0, 1, 2, 3, 10, 51, 90} {
				for _, p := range products {
					for _, sp := range servicePacks {
						r := VersionRecord{Family: f, Major: major, Minor: minor, ProductType: p, ServicePack: sp}
						first := ResolveName(r)
						if first == "" {
							t.Fatalf("ResolveName(%+v) returned an empty label", r)
						}
						if second := ResolveName(r); second != first {
							t.Fatalf("ResolveName(%+v) not deterministic: %q then %q", r, first, second)
						}
					}
				}
			}
		}
	}
}

func TestResolvePlatformLabel(t *testing.T) {
	tests := []struct {
		arch     platform.Architecture
		emulated bool
		want     string
	}{
		{platform.ArchX86, false, "x86"},
		{platform.ArchX86, true, "x86 (WOW64)"},
		{platform.ArchAMD64, false, "x64"},
		{platform.ArchAMD64, true, "x64"},
		{platform.ArchARM64, false, "Unknown"},
		{platform.Architecture("mips"), true, "Unknown"},
	}
	for _, tt := range tests {
		if got := ResolvePlatformLabel(tt.arch, tt.emulated); got != tt.want {
			t.Errorf("ResolvePlatformLabel(%q, %v) = %q, want %q", tt.arch, tt.emulated, got, tt.want)
		}
	}
}

func TestQuery(t *testing.T) {
	r, err := Query()
	if runtime.GOOS != "windows" {
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Query() error = %v, want ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if r.Family != FamilyNT {
		t.Errorf("Query().Family = %v, want %v", r.Family, FamilyNT)
	}
	if got := ResolveName(r); got == Unknown {
		t.Errorf("ResolveName(Query()) = %q on a running windows host", got)
	}
}
