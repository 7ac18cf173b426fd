// Package embed renders a responsive iframe that shows an external web
// application with part of its top and bottom chrome cropped away. Below a
// viewport breakpoint the iframe is hidden and a fallback message is shown.
package embed

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const (
	// DefaultHideTopPx is the number of pixels cropped from the top of the
	// embedded page when nothing else is configured.
	DefaultHideTopPx = 100
	// DefaultHeight is the visible height of the frame in pixels.
	DefaultHeight = 800
	// DefaultBreakpoint is the widest viewport, in CSS pixels, that still
	// gets the mobile fallback.
	DefaultBreakpoint = 768
)

// DefaultMobileMessage is shown instead of the iframe on narrow viewports.
// Each element is rendered on its own line.
var DefaultMobileMessage = []string{
	"📱 Tampilan ini tidak tersedia di perangkat seluler.",
	"Silakan buka lewat laptop atau desktop untuk pengalaman penuh 💻",
}

var (
	ErrInvalidSource     = errors.New("embed: source must be an absolute http(s) URL")
	ErrInvalidHeight     = errors.New("embed: height must be positive")
	ErrInvalidBreakpoint = errors.New("embed: breakpoint must be positive")
	ErrCollapsedFrame    = errors.New("embed: iframe height would not be positive")
)

// Frame describes one embedded page. HideTopPx and HideBottomPx may be
// negative, in which case the iframe is shorter than the container instead
// of overflowing it.
type Frame struct {
	Src           string
	HideTopPx     int
	HideBottomPx  int
	Height        int
	Breakpoint    int
	MobileMessage []string
}

// NewFrame returns a Frame for src with the default geometry.
func NewFrame(src string) Frame {
	return Frame{
		Src:           src,
		HideTopPx:     DefaultHideTopPx,
		Height:        DefaultHeight,
		Breakpoint:    DefaultBreakpoint,
		MobileMessage: slices.Clone(DefaultMobileMessage),
	}
}

// Validate reports whether the frame can be rendered.
func (f Frame) Validate() error {
	u, err := url.Parse(strings.TrimSpace(f.Src))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidSource, f.Src)
	}
	if f.Height <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHeight, f.Height)
	}
	if f.Breakpoint <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBreakpoint, f.Breakpoint)
	}
	if h := f.Layout().IframeHeight; h <= 0 {
		return fmt.Errorf("%w: height %d + hidden %d = %d", ErrCollapsedFrame, f.Height, f.HideTopPx+f.HideBottomPx, h)
	}
	return nil
}

// Origin returns the scheme and host of the embedded page, e.g.
// "https://mermaind.elpeef.com". It returns "" for an invalid source.
func (f Frame) Origin() string {
	u, err := url.Parse(strings.TrimSpace(f.Src))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// message returns the configured fallback lines, or the default ones.
func (f Frame) message() []string {
	if len(f.MobileMessage) == 0 {
		return DefaultMobileMessage
	}
	return f.MobileMessage
}
