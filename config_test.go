package celest

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Routes[0].Path != "/work.html" || cfg.Routes[1].Path != "/project.html" || cfg.Routes[2].Path != "/contact.html" {
		t.Errorf("routes = %v", cfg.Routes)
	}
}

func TestParseConfigOverridesAndDefaults(t *testing.T) {
	data := []byte(`
debounce: 80ms
rotationDuration: 2s
navigationEnabled: false
shipTilts: [0.5, 1.0]
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Debounce != 80*time.Millisecond {
		t.Errorf("Debounce = %v, want 80ms", cfg.Debounce)
	}
	if cfg.RotationDuration != 2*time.Second {
		t.Errorf("RotationDuration = %v, want 2s", cfg.RotationDuration)
	}
	if cfg.NavigationEnabled {
		t.Error("NavigationEnabled should be false")
	}
	if len(cfg.ShipTilts) != 2 {
		t.Errorf("ShipTilts = %v", cfg.ShipTilts)
	}
	// Untouched keys keep defaults.
	if cfg.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %v, want default 250ms", cfg.SettleDelay)
	}
	if math.Abs(cfg.ShipRestPitch-math.Pi/4) > 1e-12 {
		t.Errorf("ShipRestPitch = %v", cfg.ShipRestPitch)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "debounce: [", "parse celest config"},
		{"zero duration", "rotationDuration: 0s", "rotationDuration must be positive"},
		{"negative settle", "settleDelay: -1s", "settleDelay"},
		{"negative bob", "shipBobRange: -0.2", "shipBobRange"},
		{"empty tilts", "shipTilts: []", "shipTilts"},
		{"short routes", "routes: [{name: Work, path: /w}]", "routes"},
		{"empty path", "routes: [{name: A, path: /a}, {name: B}, {name: C, path: /c}]", "routes[1]"},
		{"bad easing", "shipEase: wobble", "unknown easing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "celest.yaml")
	if err := os.WriteFile(path, []byte("debounce: 20ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Debounce != 20*time.Millisecond {
		t.Errorf("Debounce = %v, want 20ms", cfg.Debounce)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}
