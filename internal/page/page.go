// Package page composes the sidebar and the embedded application into a
// single HTML document and caches the result.
package page

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"html/template"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/mrbrightsides/mermaind/internal/config"
	"github.com/mrbrightsides/mermaind/internal/embed"
	"github.com/mrbrightsides/mermaind/internal/sidebar"
)

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData holds the data passed to pageTemplate.
type pageData struct {
	Title   string
	Theme   config.Theme
	Layout  config.LayoutMode
	Favicon template.URL
	CSS     template.CSS
	Sidebar *sidebar.Sidebar
	Embed   template.HTML
}

// Renderer holds the rendered page for the current configuration. It is
// safe for concurrent use; Reload swaps the page atomically.
type Renderer struct {
	mu    sync.RWMutex
	cfg   *config.Config
	frame embed.Frame
	html  []byte
	etag  string
}

// New renders the page for cfg.
func New(cfg *config.Config) (*Renderer, error) {
	r := &Renderer{}
	if err := r.Reload(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-renders the page for cfg. On error the previous page is kept.
func (r *Renderer) Reload(cfg *config.Config) error {
	frame := cfg.Embed.Frame()
	out, err := build(cfg, frame)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(out)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	r.frame = frame
	r.html = out
	r.etag = `"` + hex.EncodeToString(sum[:8]) + `"`
	return nil
}

// Bytes returns the rendered page and its entity tag.
func (r *Renderer) Bytes() ([]byte, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.html, r.etag
}

// Render writes the rendered page to w.
func (r *Renderer) Render(w io.Writer) error {
	b, _ := r.Bytes()
	_, err := w.Write(b)
	return err
}

// Frame returns the embed frame of the current configuration.
func (r *Renderer) Frame() embed.Frame {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frame
}

// Title returns the page title of the current configuration.
func (r *Renderer) Title() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Page.Title
}

func build(cfg *config.Config, frame embed.Frame) ([]byte, error) {
	embedHTML, err := frame.HTML()
	if err != nil {
		return nil, err
	}

	sb, err := sidebar.Build(cfg.Sidebar, codeStyle(cfg.Page.Theme))
	if err != nil {
		return nil, err
	}

	data := pageData{
		Title:   cfg.Page.Title,
		Theme:   cfg.Page.Theme,
		Layout:  cfg.Page.Layout,
		Favicon: Favicon(cfg.Page.Icon),
		CSS:     template.CSS(cssContent),
		Sidebar: sb,
		Embed:   embedHTML,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

func codeStyle(theme config.Theme) string {
	if theme == config.ThemeLight {
		return "github"
	}
	return "monokai"
}

// Favicon turns the configured icon into a link href. URLs are used as is;
// anything else, typically an emoji, is drawn into an inline SVG.
func Favicon(icon string) template.URL {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return ""
	}
	if u, err := url.Parse(icon); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return template.URL(icon)
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` +
		html.EscapeString(icon) + `</text></svg>`
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
