package viewport

// Breakpoint classifies a viewport width into a layout tier.
type Breakpoint string

const (
	BreakpointMobile  Breakpoint = "mobile"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointDesktop Breakpoint = "desktop"
)

// Widths (in CSS pixels) at which the layout tier changes. A width below
// MobileMaxWidth is mobile; below TabletMaxWidth is tablet; anything else
// is desktop.
const (
	MobileMaxWidth = 768
	TabletMaxWidth = 1024
)

// FromWidth returns the breakpoint for the given viewport width.
// Negative widths are treated as zero.
func FromWidth(width int) Breakpoint {
	switch {
	case width < MobileMaxWidth:
		return BreakpointMobile
	case width < TabletMaxWidth:
		return BreakpointTablet
	default:
		return BreakpointDesktop
	}
}

// IsMobile reports whether the given width falls in the mobile tier.
func IsMobile(width int) bool {
	return FromWidth(width) == BreakpointMobile
}
