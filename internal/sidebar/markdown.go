package sidebar

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// NewMarkdown returns the goldmark converter used for sidebar content.
// codeStyle is a chroma style name for fenced code blocks.
func NewMarkdown(codeStyle string) goldmark.Markdown {
	if codeStyle == "" {
		codeStyle = "github"
	}
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(externalLinks{}, 100),
			),
		),
	)
}

// Convert renders markdown source to HTML. Raw HTML in the source is
// omitted by the renderer.
func Convert(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// externalLinks opens absolute links in a new tab so the embedded
// application keeps running.
type externalLinks struct{}

func (externalLinks) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch l := n.(type) {
		case *ast.Link:
			if isExternal(string(l.Destination)) {
				markExternal(l)
			}
		case *ast.AutoLink:
			if l.AutoLinkType == ast.AutoLinkURL && isExternal(string(l.URL(source))) {
				markExternal(l)
			}
		}
		return ast.WalkContinue, nil
	})
}

func markExternal(n ast.Node) {
	n.SetAttributeString("target", []byte("_blank"))
	n.SetAttributeString("rel", []byte("noopener noreferrer"))
}

func isExternal(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	// Linkify produces scheme-less "www." URLs.
	if u.Scheme == "" {
		return len(dest) > 4 && dest[:4] == "www."
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
