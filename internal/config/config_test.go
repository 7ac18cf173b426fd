package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrbrightsides/mermaind/internal/embed"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Page.Title != "Mermaind" {
		t.Errorf("expected default title %q, got %q", "Mermaind", cfg.Page.Title)
	}
	if cfg.Page.Layout != LayoutWide {
		t.Errorf("expected default layout %q, got %q", LayoutWide, cfg.Page.Layout)
	}
	if cfg.Embed.URL != DefaultEmbedURL {
		t.Errorf("expected default url %q, got %q", DefaultEmbedURL, cfg.Embed.URL)
	}
	if cfg.Embed.HideTopPx != 0 || cfg.Embed.HideBottomPx != -105 || cfg.Embed.Height != 800 {
		t.Errorf("unexpected default geometry: top=%d bottom=%d height=%d",
			cfg.Embed.HideTopPx, cfg.Embed.HideBottomPx, cfg.Embed.Height)
	}
	if cfg.Embed.Breakpoint != 768 {
		t.Errorf("expected default breakpoint 768, got %d", cfg.Embed.Breakpoint)
	}
	if !strings.Contains(cfg.Sidebar.Markdown, "Vision Statement") {
		t.Error("default sidebar markdown should contain the vision statement")
	}
}

func TestDefaultConfigDoesNotShareMobileMessage(t *testing.T) {
	a := DefaultConfig()
	a.Embed.MobileMessage[0] = "changed"
	b := DefaultConfig()
	if b.Embed.MobileMessage[0] == "changed" {
		t.Error("DefaultConfig should return an independent mobile message slice")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mermaind.yml")

	original := DefaultConfig()
	original.Page.Title = "Diagrams"
	original.Page.Theme = ThemeLight
	original.Embed.URL = "https://example.com/app"
	original.Embed.HideTopPx = 60
	original.Embed.HideBottomPx = 20
	original.Embed.MobileMessage = []string{"Desktop only", "Sorry"}
	original.Server.Port = 9090

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Page.Title != original.Page.Title {
		t.Errorf("title: got %q, want %q", loaded.Page.Title, original.Page.Title)
	}
	if loaded.Page.Theme != original.Page.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Page.Theme, original.Page.Theme)
	}
	if loaded.Embed.URL != original.Embed.URL {
		t.Errorf("url: got %q, want %q", loaded.Embed.URL, original.Embed.URL)
	}
	if loaded.Embed.HideTopPx != 60 || loaded.Embed.HideBottomPx != 20 {
		t.Errorf("hide px: got %d/%d, want 60/20", loaded.Embed.HideTopPx, loaded.Embed.HideBottomPx)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if len(loaded.Embed.MobileMessage) != 2 || loaded.Embed.MobileMessage[1] != "Sorry" {
		t.Errorf("mobile_message: got %v", loaded.Embed.MobileMessage)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	data := "embed:\n  url: https://example.org/\n  hide_top_px: 40\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Embed.URL != "https://example.org/" {
		t.Errorf("url: got %q", cfg.Embed.URL)
	}
	if cfg.Embed.HideTopPx != 40 {
		t.Errorf("hide_top_px: got %d, want 40", cfg.Embed.HideTopPx)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Embed.Height != 800 {
		t.Errorf("height: got %d, want default 800", cfg.Embed.Height)
	}
	if cfg.Page.Title != "Mermaind" {
		t.Errorf("title: got %q, want default", cfg.Page.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Embed.URL != DefaultEmbedURL {
		t.Errorf("expected default url, got %q", cfg.Embed.URL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("embed: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("MERMAIND_EMBED__HIDE_TOP_PX", "42")
	t.Setenv("MERMAIND_PAGE__THEME", "light")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Embed.HideTopPx != 42 {
		t.Errorf("env override failed: got %d, want 42", loaded.Embed.HideTopPx)
	}
	if loaded.Page.Theme != ThemeLight {
		t.Errorf("env override failed: got %q, want %q", loaded.Page.Theme, ThemeLight)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"MERMAIND_EMBED__HIDE_TOP_PX", "embed.hide_top_px"},
		{"MERMAIND_SERVER__PORT", "server.port"},
		{"MERMAIND_PAGE__TITLE", "page.title"},
	}
	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty title", func(c *Config) { c.Page.Title = "  " }, true},
		{"invalid layout", func(c *Config) { c.Page.Layout = "narrow" }, true},
		{"invalid theme", func(c *Config) { c.Page.Theme = "sepia" }, true},
		{"empty url", func(c *Config) { c.Embed.URL = "" }, true},
		{"zero height", func(c *Config) { c.Embed.Height = 0 }, true},
		{"negative breakpoint", func(c *Config) { c.Embed.Breakpoint = -1 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative hide bottom", func(c *Config) { c.Embed.HideBottomPx = -200 }, false},
		{"collapsed frame", func(c *Config) { c.Embed.HideBottomPx = -1000 }, true},
		{"zero iframe height", func(c *Config) { c.Embed.HideTopPx = -400; c.Embed.HideBottomPx = -400 }, true},
		{"ftp url", func(c *Config) { c.Embed.URL = "ftp://x" }, true},
		{"relative url", func(c *Config) { c.Embed.URL = "/app" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWrapsFrameErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Embed.HideBottomPx = -1000
	if err := cfg.Validate(); !errors.Is(err, embed.ErrCollapsedFrame) {
		t.Errorf("Validate() = %v, want ErrCollapsedFrame", err)
	}

	cfg = DefaultConfig()
	cfg.Embed.URL = "ftp://x"
	if err := cfg.Validate(); !errors.Is(err, embed.ErrInvalidSource) {
		t.Errorf("Validate() = %v, want ErrInvalidSource", err)
	}
}

func TestEmbedConfigFrame(t *testing.T) {
	c := DefaultConfig().Embed
	f := c.Frame()
	if f.Src != c.URL || f.HideTopPx != c.HideTopPx || f.HideBottomPx != c.HideBottomPx || f.Height != c.Height || f.Breakpoint != c.Breakpoint {
		t.Errorf("frame %+v does not match config %+v", f, c)
	}
	if l := f.Layout(); l.ComponentHeight != 695 {
		t.Errorf("ComponentHeight = %d, want 695", l.ComponentHeight)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://mermaind.elpeef.com/", false},
		{"http://localhost:3000", false},
		{"ftp://example.com", true},
		{"/relative/path", true},
		{"https://", true},
	}
	for _, tt := range tests {
		err := validateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
