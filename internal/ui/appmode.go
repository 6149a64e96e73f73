package ui

// LayoutMode selects how the header is drawn for the current terminal width.
type LayoutMode int

const (
	LayoutMobile LayoutMode = iota
	LayoutDesktop
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutMobile:
		return "Mobile"
	case LayoutDesktop:
		return "Desktop"
	default:
		return "Unknown"
	}
}

// LayoutFor returns the layout for a terminal width.
// Widths at or above breakpoint get the desktop header.
func LayoutFor(width, breakpoint int) LayoutMode {
	if width >= breakpoint {
		return LayoutDesktop
	}
	return LayoutMobile
}
