package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAccentColor is the selection border color used when none is
	// configured.
	DefaultAccentColor = "#FF2E88"

	accentColorEnvVar = "ACCENT_COLOR"
	captureModeEnvVar = "CAPTURE_MODE"
	configPathEnvVar  = "SCREEN_CAPTURE_ENV"
)

// LoadOptions carry command-line overrides into Load.
type LoadOptions struct {
	AccentColorOverride string
	CaptureModeOverride string
}

type Config struct {
	AccentColor        string
	CaptureMode        string
	Hotkey             string
	EnableFileLogging  bool
	CaptureDeadlineSec int
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions reads configuration from, in priority order: explicit
// overrides, process environment, then a .env file next to the
// executable (or the file named by SCREEN_CAPTURE_ENV).
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// Deadline for the downstream capture pipeline, with a sane default.
	deadlineSec := 20
	if v := os.Getenv("CAPTURE_DEADLINE_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			deadlineSec = n
		}
	}

	cfg := &Config{
		AccentColor:        resolveAccentColor(opts),
		CaptureMode:        resolveCaptureMode(opts),
		Hotkey:             getEnvWithDefault("HOTKEY", "Ctrl+Alt+Q"),
		EnableFileLogging:  strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		CaptureDeadlineSec: deadlineSec,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(configPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveAccentColor(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.AccentColorOverride); override != "" {
		return override
	}
	return getEnvWithDefault(accentColorEnvVar, DefaultAccentColor)
}

func resolveCaptureMode(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.CaptureModeOverride); override != "" {
		return normalizeCaptureMode(override)
	}
	return normalizeCaptureMode(os.Getenv(captureModeEnvVar))
}

// normalizeCaptureMode maps config spellings onto the two pipeline
// modes. Anything unrecognized defaults to parse, the richer mode.
func normalizeCaptureMode(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "raw":
		return "raw"
	default:
		return "parse"
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
