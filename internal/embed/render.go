package embed

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

var tmpl = template.Must(template.New("embed").Parse(frameTemplate))

// frameData is the view model for frameTemplate.
type frameData struct {
	Src            string
	Title          string
	Layout         Layout
	ComponentStyle template.CSS
	ContainerStyle template.CSS
	IframeStyle    template.CSS
	Message        []string
}

func (f Frame) data(title string) frameData {
	l := f.Layout()
	return frameData{
		Src:   f.Src,
		Title: title,
		// The styles are built from integers only.
		Layout:         l,
		ComponentStyle: template.CSS(l.ComponentStyle()),
		ContainerStyle: template.CSS(l.ContainerStyle()),
		IframeStyle:    template.CSS(l.IframeStyle()),
		Message:        f.message(),
	}
}

// Render writes the embed as an HTML fragment: a style block with the
// breakpoint media queries, the clipping container with its iframe, and the
// mobile fallback block.
func (f Frame) Render(w io.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, "frame", f.data("Embedded application")); err != nil {
		return fmt.Errorf("rendering embed: %w", err)
	}
	return nil
}

// HTML renders the fragment into a template.HTML for inclusion in a page.
func (f Frame) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderDocument writes a standalone HTML document containing only the embed.
func (f Frame) RenderDocument(w io.Writer, title string) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, "document", f.data(title)); err != nil {
		return fmt.Errorf("rendering embed document: %w", err)
	}
	return nil
}
