// Package buildinfo exposes version metadata for the CLI. Values are normally
// injected at build time, e.g.:
//
//	-ldflags "-X 'mytool/internal/buildinfo.Version=1.2.3' -X 'mytool/internal/buildinfo.Date=2026-02-09'"
//
// When they are not, module and VCS data embedded by the Go toolchain is used.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the semantic version or custom string. Defaults to "dev".
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info is the resolved build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
	BuiltBy string `json:"built_by,omitempty"`
	Go      string `json:"go"`
	GoOS    string `json:"go_os"`
	GoArch  string `json:"go_arch"`
}

// Current resolves build metadata, preferring ldflags values over data
// embedded by the toolchain.
func Current() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		BuiltBy: BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok && bi != nil {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

// Summary returns a concise single-line version string.
func Summary() string {
	info := Current()
	v := info.Version

	parts := make([]string, 0, 2)
	if info.Commit != "" {
		c := info.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if info.Date != "" {
		parts = append(parts, "date="+info.Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
