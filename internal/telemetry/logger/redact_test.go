package logger

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestRedactSensitive_TokenValues(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("issued",
		"value", "mhtk_ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklm",
		"hash", "mhth_0123456789abcdef",
	)

	entry := decodeLines(t, &buf)[0]
	if entry["value"] != "mhtk_ABC...klm" {
		t.Errorf("token mask = %v", entry["value"])
	}
	if entry["hash"] != "mhth_012...def" {
		t.Errorf("hash mask = %v", entry["hash"])
	}
}

func TestRedactSensitive_SensitiveKeyName(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		redacted bool
	}{
		{"password", "art123", true},
		{"Authorization", "Bearer abc", true},
		{"client_secret", "s", true},
		{"token", "", false},
		{"activity", "Chess Club", false},
		{"email", "michael@mergington.edu", false},
		{"teacher_name", "Mr. Chen", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := redactSensitive(slog.String(tt.key, tt.value))
			if tt.redacted && got.Value.String() != redactedValue {
				t.Errorf("%s should be redacted, got %q", tt.key, got.Value.String())
			}
			if !tt.redacted && got.Value.String() != tt.value {
				t.Errorf("%s should be kept, got %q", tt.key, got.Value.String())
			}
		})
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	l.Info("login", slog.Group("req", slog.String("password", "x"), slog.Int("status", 200)))

	req, ok := decodeLines(t, &buf)[0]["req"].(map[string]any)
	if !ok {
		t.Fatal("req group missing")
	}
	if req["password"] != redactedValue {
		t.Errorf("nested password = %v", req["password"])
	}
	if req["status"] != float64(200) {
		t.Errorf("nested status = %v", req["status"])
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		in, want string
		masked   bool
	}{
		{"mhtk_ABCDEFGHIJ", "mhtk_ABC...HIJ", true},
		{"mhtk_AB", "mhtk_***", true},
		{"mhth_abc", "mhth_***", true},
		{"tmtk_abc", "tmtk_abc", false},
		{"plain text", "plain text", false},
	}

	for _, tt := range tests {
		got, masked := mask(tt.in)
		if got != tt.want || masked != tt.masked {
			t.Errorf("mask(%q) = %q, %v, want %q, %v", tt.in, got, masked, tt.want, tt.masked)
		}
	}
}

func TestIsSensitive(t *testing.T) {
	if !IsSensitiveKey("X-Auth-Token") {
		t.Error("IsSensitiveKey(X-Auth-Token) = false")
	}
	if IsSensitiveKey("schedule") {
		t.Error("IsSensitiveKey(schedule) = true")
	}
}
