package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
}

func TestString(t *testing.T) {
	s := String()
	info := Get()

	if !strings.HasPrefix(s, info.Version+" (") {
		t.Errorf("String() = %q, want version prefix %q", s, info.Version)
	}
	if !strings.Contains(s, "built at "+info.BuildTime) {
		t.Errorf("String() = %q, missing build time", s)
	}
}

func TestResolve(t *testing.T) {
	stamped := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.24.4",
			Main:      debug.Module{Version: "v0.3.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true
	}

	tests := []struct {
		name    string
		version string
		commit  string
		read    func() (*debug.BuildInfo, bool)
		want    Info
	}{
		{
			name:    "ldflags win",
			version: "v1.0.0",
			commit:  "abc123",
			read:    stamped,
			want:    Info{Version: "v1.0.0", Commit: "abc123", BuildTime: "2026-01-02T03:04:05Z", GoVersion: "go1.24.4", Modified: true},
		},
		{
			name:    "vcs stamp fills defaults",
			version: "dev",
			commit:  "unknown",
			read:    stamped,
			want:    Info{Version: "v0.3.0", Commit: "0123456789ab", BuildTime: "2026-01-02T03:04:05Z", GoVersion: "go1.24.4", Modified: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, "unknown", tt.read)
			if got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_NoBuildInfo(t *testing.T) {
	got := resolve("dev", "unknown", "unknown", func() (*debug.BuildInfo, bool) { return nil, false })
	if got.Version != "dev" || got.Commit != "unknown" || got.GoVersion == "" {
		t.Errorf("resolve() = %+v", got)
	}
}
