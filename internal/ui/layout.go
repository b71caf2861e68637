package ui

// LayoutMode picks how much of the timer screen fits the terminal.
type LayoutMode int

const (
	LayoutTooSmall LayoutMode = iota
	LayoutMedium
	LayoutWide
)

func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 60 || rows < 20 {
		return LayoutTooSmall
	}
	if cols >= 110 && rows >= 28 {
		return LayoutWide
	}
	return LayoutMedium
}
