package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/mrbrightsides/mermaind/internal/embed"
)

// EnvPrefix is the prefix of environment variable overrides. Nested keys are
// separated by a double underscore: MERMAIND_EMBED__HIDE_TOP_PX -> embed.hide_top_px.
const EnvPrefix = "MERMAIND_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MERMAIND_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// A missing file is not an error; defaults apply.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps MERMAIND_EMBED__HIDE_TOP_PX to embed.hide_top_px.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLayouts = map[LayoutMode]bool{
	LayoutWide:     true,
	LayoutCentered: true,
}

var validThemes = map[Theme]bool{
	ThemeDark:  true,
	ThemeLight: true,
}

// Frame converts the embed section into the frame it describes.
func (e EmbedConfig) Frame() embed.Frame {
	return embed.Frame{
		Src:           e.URL,
		HideTopPx:     e.HideTopPx,
		HideBottomPx:  e.HideBottomPx,
		Height:        e.Height,
		Breakpoint:    e.Breakpoint,
		MobileMessage: e.MobileMessage,
	}
}

// Validate checks that the configuration contains valid values, including
// the geometry of the embed frame.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Page.Title) == "" {
		return fmt.Errorf("page.title is required")
	}
	if !validLayouts[c.Page.Layout] {
		return fmt.Errorf("invalid page.layout %q: must be one of wide, centered", c.Page.Layout)
	}
	if !validThemes[c.Page.Theme] {
		return fmt.Errorf("invalid page.theme %q: must be one of dark, light", c.Page.Theme)
	}

	if c.Embed.URL == "" {
		return fmt.Errorf("embed.url is required")
	}
	if c.Embed.Height <= 0 {
		return fmt.Errorf("embed.height must be positive")
	}
	if c.Embed.Breakpoint <= 0 {
		return fmt.Errorf("embed.breakpoint must be positive")
	}
	if err := c.Embed.Frame().Validate(); err != nil {
		return fmt.Errorf("invalid embed: %w", err)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	return nil
}
