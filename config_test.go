package opengate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigDeniesEverything(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	scope := ResolveScope(nil, nil, cfg.GlobalAllows, cfg.GlobalDenies)
	if scope.IsURLAllowed("https://example.com/") {
		t.Error("default config must deny urls")
	}
	allowed, err := scope.IsPathAllowed(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Error("default config must deny paths")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "valid entries",
			cfg: &Config{
				GlobalAllows: []Entry{URLEntry("https://example.com/*"), PathEntry("/srv/docs/**")},
				GlobalDenies: []Entry{URLEntry("https://evil.example.com/*")},
			},
		},
		{
			name:    "bad allow entry",
			cfg:     &Config{GlobalAllows: []Entry{URLEntry("no-scheme")}},
			wantErr: true,
		},
		{
			name:    "bad deny entry",
			cfg:     &Config{GlobalDenies: []Entry{PathEntry("")}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrConfigInvalid) {
				t.Errorf("error %v does not wrap ErrConfigInvalid", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scope.yaml")
	data := `
open:
  allow:
    - url: "https://*.example.com/*"
    - path: "/srv/docs/**"
  deny:
    - url: "https://evil.example.com/*"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	wantAllows := []Entry{
		URLEntry("https://*.example.com/*"),
		PathEntry("/srv/docs/**"),
	}
	if len(cfg.GlobalAllows) != len(wantAllows) {
		t.Fatalf("GlobalAllows = %v, want %v", cfg.GlobalAllows, wantAllows)
	}
	for i, want := range wantAllows {
		if cfg.GlobalAllows[i] != want {
			t.Errorf("GlobalAllows[%d] = %v, want %v", i, cfg.GlobalAllows[i], want)
		}
	}
	if len(cfg.GlobalDenies) != 1 || cfg.GlobalDenies[0] != URLEntry("https://evil.example.com/*") {
		t.Errorf("GlobalDenies = %v", cfg.GlobalDenies)
	}

	// The loaded scope behaves as configured.
	scope := ResolveScope(nil, nil, cfg.GlobalAllows, cfg.GlobalDenies)
	if !scope.IsURLAllowed("https://ok.example.com/x") {
		t.Error("allowed subdomain denied")
	}
	if scope.IsURLAllowed("https://evil.example.com/x") {
		t.Error("denied subdomain allowed")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scope.yaml")
	if err := os.WriteFile(path, []byte("open: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigInvalid) {
		t.Errorf("error = %v, want ErrConfigInvalid", err)
	}
}

func TestLoadConfigBadEntry(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"both keys", "open:\n  allow:\n    - url: \"https://a.example.com/\"\n      path: \"/x\"\n"},
		{"neither key", "open:\n  allow:\n    - {}\n"},
		{"invalid pattern", "open:\n  allow:\n    - url: \"no-scheme\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scope.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}
