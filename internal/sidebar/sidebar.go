// Package sidebar builds the static sidebar: a branding image, a heading,
// markdown body text and a footer line.
package sidebar

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/mrbrightsides/mermaind/internal/config"
)

// Sidebar is the rendered sidebar content.
type Sidebar struct {
	Image   string
	Heading template.HTML
	Body    template.HTML
	Footer  template.HTML
	// Source is the markdown file the body was read from, if any.
	Source string
}

// Build renders the sidebar described by cfg. codeStyle selects the
// highlighting style for fenced code blocks.
func Build(cfg config.SidebarConfig, codeStyle string) (*Sidebar, error) {
	md := NewMarkdown(codeStyle)

	body := cfg.Markdown
	if cfg.MarkdownFile != "" {
		data, err := os.ReadFile(cfg.MarkdownFile)
		if err != nil {
			return nil, fmt.Errorf("reading sidebar markdown: %w", err)
		}
		body = string(data)
	}

	sb := &Sidebar{
		Image:  strings.TrimSpace(cfg.Image),
		Source: cfg.MarkdownFile,
	}

	var err error
	if sb.Heading, err = Convert(md, cfg.Heading); err != nil {
		return nil, fmt.Errorf("heading: %w", err)
	}
	if sb.Body, err = Convert(md, body); err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	if sb.Footer, err = Convert(md, cfg.Footer); err != nil {
		return nil, fmt.Errorf("footer: %w", err)
	}
	return sb, nil
}
