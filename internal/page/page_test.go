package page

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mrbrightsides/mermaind/internal/config"
	"github.com/mrbrightsides/mermaind/internal/embed"
)

func TestNewDefaultPage(t *testing.T) {
	r, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, etag := r.Bytes()
	html := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Mermaind</title>",
		`data-theme="dark"`,
		`class="layout-wide"`,
		`<iframe src="https://mermaind.elpeef.com/"`,
		`src="https://i.imgur.com/pwYe3ox.png"`,
		"<strong>About</strong>",
		"Vision Statement",
		"Versi UI",
		"@media (max-width: 768px)",
		`rel="icon" href="data:image/svg&#43;xml,`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !strings.HasPrefix(etag, `"`) || !strings.HasSuffix(etag, `"`) || len(etag) != 18 {
		t.Errorf("unexpected etag %q", etag)
	}
}

func TestRender(t *testing.T) {
	r, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, _ := r.Bytes()
	if !bytes.Equal(buf.Bytes(), b) {
		t.Error("Render should write the cached page")
	}
}

func TestCenteredLightLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Page.Layout = config.LayoutCentered
	cfg.Page.Theme = config.ThemeLight
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, _ := r.Bytes()
	if !strings.Contains(string(out), `class="layout-centered"`) {
		t.Error("expected centered layout class")
	}
	if !strings.Contains(string(out), `data-theme="light"`) {
		t.Error("expected light theme")
	}
	if strings.Contains(string(out), "Theme Dark") {
		t.Error("default footer should not name a theme")
	}
}

func TestReload(t *testing.T) {
	cfg := config.DefaultConfig()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, oldTag := r.Bytes()

	next := config.DefaultConfig()
	next.Embed.URL = "https://example.com/diagram"
	next.Page.Title = "Other"
	if err := r.Reload(next); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	out, newTag := r.Bytes()
	if newTag == oldTag {
		t.Error("etag should change when the page changes")
	}
	if !strings.Contains(string(out), `<iframe src="https://example.com/diagram"`) {
		t.Error("reloaded page should use the new URL")
	}
	if r.Frame().Src != "https://example.com/diagram" {
		t.Errorf("Frame().Src = %q", r.Frame().Src)
	}
	if r.Title() != "Other" {
		t.Errorf("Title() = %q, want Other", r.Title())
	}
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	r, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before, tag := r.Bytes()

	bad := config.DefaultConfig()
	bad.Embed.URL = "not-a-url"
	if err := r.Reload(bad); !errors.Is(err, embed.ErrInvalidSource) {
		t.Fatalf("Reload() = %v, want ErrInvalidSource", err)
	}
	after, afterTag := r.Bytes()
	if !bytes.Equal(before, after) || tag != afterTag {
		t.Error("failed reload must keep the previous page")
	}
}

func TestNewInvalidGeometry(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Embed.HideBottomPx = -1000
	if _, err := New(cfg); !errors.Is(err, embed.ErrCollapsedFrame) {
		t.Fatalf("New() = %v, want ErrCollapsedFrame", err)
	}
}

func TestDefaultPageComponentHeight(t *testing.T) {
	r, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l := r.Frame().Layout(); l.IframeTop != 0 || l.IframeHeight != 695 || l.ComponentHeight != 695 {
		t.Errorf("production layout = %+v, want top 0, iframe and component height 695", l)
	}

	out, _ := r.Bytes()
	html := string(out)
	for _, want := range []string{
		`<div class="embed-component" style="height:695px; overflow:hidden;">`,
		"height:800px; overflow:hidden; position:relative;",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestFavicon(t *testing.T) {
	if got := Favicon(""); got != "" {
		t.Errorf("Favicon(\"\") = %q, want empty", got)
	}
	if got := Favicon("https://example.com/icon.png"); got != "https://example.com/icon.png" {
		t.Errorf("URL icon should be used as is, got %q", got)
	}
	got := string(Favicon("🧜‍♀️"))
	if !strings.HasPrefix(got, "data:image/svg+xml,") {
		t.Errorf("emoji icon should become an SVG data URI, got %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("data URI should be escaped, got %q", got)
	}
}
