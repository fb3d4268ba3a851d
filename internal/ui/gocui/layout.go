package gocui

// -----------------------------------------------------------------------------
// Layout Constants
// -----------------------------------------------------------------------------

const (
	// HeaderHeight is the height of the frameless header view.
	HeaderHeight = 2

	// FooterHeight is the height of the footer view.
	FooterHeight = 2

	// MinTerminalWidth is the narrowest terminal the viewer can lay out.
	MinTerminalWidth = 72

	// The point table needs more columns than the summary, so the split
	// gives it three fifths of the width.
	infoShare = 2
	splitBase = 5
)

// Layout computes view bounds from the current terminal size.
type Layout struct {
	maxX, maxY int
}

// NewLayout creates a layout calculator for the given terminal size.
func NewLayout(maxX, maxY int) *Layout {
	return &Layout{maxX: maxX, maxY: maxY}
}

// HeaderBounds returns x0, y0, x1, y1 for the header view.
func (l *Layout) HeaderBounds() (int, int, int, int) {
	return 0, 0, l.maxX - 1, HeaderHeight - 1
}

// InfoPanelBounds returns the bounds of the slider summary panel.
func (l *Layout) InfoPanelBounds() (int, int, int, int) {
	return 0, HeaderHeight, l.splitX() - 1, HeaderHeight + l.contentHeight()
}

// PointPanelBounds returns the bounds of the control point table panel.
func (l *Layout) PointPanelBounds() (int, int, int, int) {
	return l.splitX(), HeaderHeight, l.maxX - 1, HeaderHeight + l.contentHeight()
}

// FooterBounds returns the bounds of the footer/help view.
func (l *Layout) FooterBounds() (int, int, int, int) {
	return 0, l.maxY - FooterHeight - 1, l.maxX - 1, l.maxY - 1
}

func (l *Layout) splitX() int {
	return l.maxX * infoShare / splitBase
}

func (l *Layout) contentHeight() int {
	return l.maxY - HeaderHeight - FooterHeight - 2
}

// IsTerminalTooSmall reports whether the panels cannot fit.
func (l *Layout) IsTerminalTooSmall() bool {
	return l.maxX < MinTerminalWidth || l.maxY < HeaderHeight+FooterHeight+5
}
