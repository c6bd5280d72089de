package opengate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application-wide configuration for a Gate.
type Config struct {
	// GlobalAllows lists scope entries that permit resources for every
	// request, regardless of the caller's own grants.
	GlobalAllows []Entry

	// GlobalDenies lists scope entries that refuse resources for every
	// request. A deny always wins over any allow.
	GlobalDenies []Entry

	// Opener launches permitted resources. If nil, the platform system
	// opener is used.
	Opener Opener

	// Logger is the structured logger for denial and launch diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with an empty global scope. With no allow
// entries configured, every gated request is denied until the host
// application grants something.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks the configuration and returns a descriptive error if any
// entry is malformed. The returned error wraps ErrConfigInvalid.
func (c *Config) Validate() error {
	var errs []string

	for i, e := range c.GlobalAllows {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("GlobalAllows[%d]: %v", i, err))
		}
	}
	for i, e := range c.GlobalDenies {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("GlobalDenies[%d]: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// scopeFile is the on-disk YAML schema for a declarative global scope:
//
//	open:
//	  allow:
//	    - url: "https://*.example.com/*"
//	    - path: "/home/user/docs/**"
//	  deny:
//	    - url: "https://evil.example.com/*"
type scopeFile struct {
	Open struct {
		Allow []Entry `yaml:"allow"`
		Deny  []Entry `yaml:"deny"`
	} `yaml:"open"`
}

// LoadConfig reads a YAML scope file into a validated Config. The Opener and
// Logger fields are left nil so the platform defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opengate: read config: %w", err)
	}

	var f scopeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	cfg := DefaultConfig()
	cfg.GlobalAllows = f.Open.Allow
	cfg.GlobalDenies = f.Open.Deny
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UnmarshalYAML decodes a scope entry from its file form, a mapping with
// exactly one of the "url" or "path" keys.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		URL  string `yaml:"url"`
		Path string `yaml:"path"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.URL != "" && raw.Path != "":
		return errors.New("scope entry must set exactly one of url or path")
	case raw.URL != "":
		*e = URLEntry(raw.URL)
	case raw.Path != "":
		*e = PathEntry(raw.Path)
	default:
		return errors.New("scope entry must set url or path")
	}
	return nil
}
