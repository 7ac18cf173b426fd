package embed

import "fmt"

// Layout is the computed geometry of a Frame, in CSS pixels.
type Layout struct {
	// ContainerHeight is the visible height of the clipping container.
	ContainerHeight int `json:"container_height"`
	// IframeTop is the vertical offset of the iframe inside the container.
	IframeTop int `json:"iframe_top"`
	// IframeExtraHeight is added to the container height to size the iframe.
	IframeExtraHeight int `json:"iframe_extra_height"`
	// IframeHeight is the absolute iframe height.
	IframeHeight int `json:"iframe_height"`
	// ComponentHeight is the height reserved for the whole embed.
	ComponentHeight int `json:"component_height"`
	// Breakpoint is the widest viewport that shows the mobile fallback.
	Breakpoint int `json:"breakpoint"`
	// DesktopMinWidth is the narrowest viewport that shows the iframe.
	DesktopMinWidth int `json:"desktop_min_width"`
}

// Visibility says which of the two blocks is displayed at a viewport width.
type Visibility struct {
	Width   int  `json:"width"`
	Desktop bool `json:"desktop"`
	Mobile  bool `json:"mobile"`
}

// Layout computes the frame geometry.
func (f Frame) Layout() Layout {
	extra := f.HideTopPx + f.HideBottomPx
	bp := f.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	return Layout{
		ContainerHeight:   f.Height,
		IframeTop:         -f.HideTopPx,
		IframeExtraHeight: extra,
		IframeHeight:      f.Height + extra,
		ComponentHeight:   f.Height + extra,
		Breakpoint:        bp,
		DesktopMinWidth:   bp + 1,
	}
}

// VisibilityAt reports which block is shown at the given viewport width.
// Exactly one of Desktop and Mobile is true.
func (l Layout) VisibilityAt(width int) Visibility {
	mobile := width <= l.Breakpoint
	return Visibility{Width: width, Desktop: !mobile, Mobile: mobile}
}

// ComponentStyle is the inline style of the outer frame that holds both
// blocks. It clips the embed to ComponentHeight.
func (l Layout) ComponentStyle() string {
	return fmt.Sprintf("height:%dpx; overflow:hidden;", l.ComponentHeight)
}

// ContainerStyle is the inline style of the clipping container.
func (l Layout) ContainerStyle() string {
	return fmt.Sprintf("height:%dpx; overflow:hidden; position:relative;", l.ContainerHeight)
}

// IframeStyle is the inline style of the iframe.
func (l Layout) IframeStyle() string {
	return fmt.Sprintf("width:100%%; height:calc(100%% + %dpx); border:none; position:relative; top:%dpx;",
		l.IframeExtraHeight, l.IframeTop)
}
