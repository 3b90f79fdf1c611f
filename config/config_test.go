package config

import "testing"

func TestNormalizeCaptureMode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"raw", "raw"},
		{"RAW", "raw"},
		{"  raw ", "raw"},
		{"parse", "parse"},
		{"", "parse"},
		{"lasso", "parse"},
	}

	for _, tt := range tests {
		if got := normalizeCaptureMode(tt.in); got != tt.want {
			t.Fatalf("Expected %q for input %q, got %q", tt.want, tt.in, got)
		}
	}
}

func TestAccentColorOverrideWinsOverEnv(t *testing.T) {
	t.Setenv(accentColorEnvVar, "#112233")

	got := resolveAccentColor(LoadOptions{AccentColorOverride: "#AABBCC"})
	if got != "#AABBCC" {
		t.Fatalf("Expected override to win, got %q", got)
	}

	got = resolveAccentColor(LoadOptions{})
	if got != "#112233" {
		t.Fatalf("Expected env value, got %q", got)
	}
}

func TestAccentColorDefault(t *testing.T) {
	t.Setenv(accentColorEnvVar, "")

	if got := resolveAccentColor(LoadOptions{}); got != DefaultAccentColor {
		t.Fatalf("Expected default %q, got %q", DefaultAccentColor, got)
	}
}

func TestLoadReadsDeadline(t *testing.T) {
	t.Setenv("CAPTURE_DEADLINE_SEC", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CaptureDeadlineSec != 45 {
		t.Fatalf("Expected deadline 45, got %d", cfg.CaptureDeadlineSec)
	}
}

func TestLoadDeadlineDefaultOnInvalid(t *testing.T) {
	t.Setenv("CAPTURE_DEADLINE_SEC", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CaptureDeadlineSec != 20 {
		t.Fatalf("Expected default deadline 20, got %d", cfg.CaptureDeadlineSec)
	}
}
