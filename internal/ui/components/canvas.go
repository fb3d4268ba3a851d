/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nanobeat/slidercraft/internal/config"
	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/overlay"
	"github.com/nanobeat/slidercraft/internal/slider"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	// cursorStep is the playfield distance covered by one cursor move.
	cursorStep = 8

	// nudgeStep is the playfield distance covered by one point nudge.
	nudgeStep = 4
)

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// MenuRequestMsg asks the app to open the context menu over the canvas.
type MenuRequestMsg struct {
	Menu overlay.Menu
}

// PathEditedMsg signals that the canvas mutated the path.
type PathEditedMsg struct{}

// -----------------------------------------------------------------------------
// Canvas Component
// -----------------------------------------------------------------------------

// Canvas renders the slider path on a playfield grid and handles editing
// input. It owns the cursor; the path and its overlay are owned by the app.
type Canvas struct {
	editor *overlay.ControlPoints
	path   *slider.Path

	cursor geom.Vec2 // playfield coordinates

	width   int
	height  int
	focused bool
	title   string
}

// NewCanvas creates an empty canvas.
func NewCanvas() Canvas {
	return Canvas{
		title:  "🎯 Canvas",
		cursor: geom.V(config.PlayfieldWidth/2, config.PlayfieldHeight/2),
	}
}

// SetPath points the canvas at a new path and its selection overlay.
func (c *Canvas) SetPath(path *slider.Path, editor *overlay.ControlPoints) {
	c.path = path
	c.editor = editor
}

// SetSize updates the component dimensions.
func (c *Canvas) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetFocused sets the focus state.
func (c *Canvas) SetFocused(focused bool) {
	c.focused = focused
}

// Cursor returns the cursor position in playfield coordinates.
func (c *Canvas) Cursor() geom.Vec2 {
	return c.cursor
}

// HoveredPiece returns the piece under the cursor, or nil.
func (c *Canvas) HoveredPiece() *overlay.Piece {
	if c.editor == nil {
		return nil
	}
	cx, cy := c.cellFor(c.cursor)
	for _, p := range c.editor.Pieces() {
		px, py := c.cellFor(p.Point.Position())
		if px == cx && py == cy {
			return p
		}
	}
	return nil
}

// Update handles input for the canvas.
func (c *Canvas) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || c.editor == nil {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		c.moveCursor(0, -cursorStep)
	case "down", "j":
		c.moveCursor(0, cursorStep)
	case "left", "h":
		c.moveCursor(-cursorStep, 0)
	case "right", "l":
		c.moveCursor(cursorStep, 0)

	case "enter", " ":
		if piece := c.HoveredPiece(); piece != nil {
			c.editor.Select(piece, false)
		} else {
			c.editor.ClearSelection()
		}

	case "x":
		// Toggle membership without dropping the rest of the selection
		if piece := c.HoveredPiece(); piece != nil {
			c.editor.Select(piece, true)
		}

	case "a":
		c.addPointAtCursor()
		return edited

	case "d":
		if c.editor.DeleteSelected() {
			return edited
		}

	case "c":
		c.editor.ClearSelection()

	case "K":
		return c.nudgeSelection(0, -nudgeStep)
	case "J":
		return c.nudgeSelection(0, nudgeStep)
	case "H":
		return c.nudgeSelection(-nudgeStep, 0)
	case "L":
		return c.nudgeSelection(nudgeStep, 0)

	case "m":
		if menu, ok := c.editor.ContextMenu(c.HoveredPiece() != nil); ok {
			return func() tea.Msg { return MenuRequestMsg{Menu: menu} }
		}
	}

	return nil
}

// HandleMouse processes a mouse event with canvas-local coordinates.
func (c *Canvas) HandleMouse(msg tea.MouseMsg, localX, localY int) tea.Cmd {
	if c.editor == nil {
		return nil
	}

	innerW, innerH := c.innerSize()
	if localX < 0 || localY < 0 || localX >= innerW || localY >= innerH {
		return nil
	}

	// Move cursor to click position
	c.cursor = geom.V(
		float64(localX)/float64(innerW-1)*config.PlayfieldWidth,
		float64(localY)/float64(innerH-1)*config.PlayfieldHeight,
	)

	switch msg.Type {
	case tea.MouseLeft:
		if piece := c.HoveredPiece(); piece != nil {
			c.editor.Select(piece, msg.Ctrl)
		} else if !msg.Ctrl {
			c.editor.ClearSelection()
		}

	case tea.MouseRight:
		hovering := c.HoveredPiece() != nil
		if hovering {
			// Right-click acts on the hovered piece; select it first when
			// it is not already part of the selection
			piece := c.HoveredPiece()
			if !piece.Selected {
				c.editor.Select(piece, false)
			}
		}
		if menu, ok := c.editor.ContextMenu(hovering); ok {
			return func() tea.Msg { return MenuRequestMsg{Menu: menu} }
		}
	}

	return nil
}

// edited is the command that reports a path mutation.
func edited() tea.Msg {
	return PathEditedMsg{}
}

// moveCursor shifts the cursor, clamped to the playfield.
func (c *Canvas) moveCursor(dx, dy float64) {
	c.cursor = clampToPlayfield(c.cursor.Add(geom.V(dx, dy)))
}

// addPointAtCursor inserts a control point at the cursor position. The
// point goes after the hovered piece when hovering, otherwise at the end.
// A path's opening point always carries a type.
func (c *Canvas) addPointAtCursor() {
	var point *slider.ControlPoint
	if c.path.ControlPoints.Len() == 0 {
		point = slider.NewTypedControlPoint(c.cursor, slider.TypeBezier)
	} else {
		point = slider.NewControlPoint(c.cursor)
	}

	c.path.BeginChange()
	defer c.path.EndChange()

	if hovered := c.HoveredPiece(); hovered != nil {
		idx := c.path.ControlPoints.IndexOf(hovered.Point)
		if idx >= 0 {
			c.path.ControlPoints.Insert(idx+1, point)
			c.path.EnsureValidTypes()
			return
		}
	}
	c.path.ControlPoints.Add(point)
	c.path.EnsureValidTypes()
}

// nudgeSelection moves every selected point by the given delta.
func (c *Canvas) nudgeSelection(dx, dy float64) tea.Cmd {
	points := c.editor.SelectedPoints()
	if len(points) == 0 {
		return nil
	}

	c.path.BeginChange()
	for _, p := range points {
		p.SetPosition(clampToPlayfield(p.Position().Add(geom.V(dx, dy))))
	}
	c.path.EndChange()

	return edited
}

// clampToPlayfield keeps a position inside the editable area.
func clampToPlayfield(v geom.Vec2) geom.Vec2 {
	if v.X < 0 {
		v.X = 0
	}
	if v.X > config.PlayfieldWidth {
		v.X = config.PlayfieldWidth
	}
	if v.Y < 0 {
		v.Y = 0
	}
	if v.Y > config.PlayfieldHeight {
		v.Y = config.PlayfieldHeight
	}
	return v
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// cell is one styled character of the canvas grid.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// innerSize returns the drawable grid dimensions.
func (c *Canvas) innerSize() (int, int) {
	w := c.width - 4  // borders and padding
	h := c.height - 5 // borders, title, status line
	if w < 16 {
		w = 16
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

// cellFor maps a playfield position to a grid cell.
func (c *Canvas) cellFor(pos geom.Vec2) (int, int) {
	innerW, innerH := c.innerSize()
	cx := int(pos.X / config.PlayfieldWidth * float64(innerW-1))
	cy := int(pos.Y / config.PlayfieldHeight * float64(innerH-1))
	if cx < 0 {
		cx = 0
	}
	if cx >= innerW {
		cx = innerW - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= innerH {
		cy = innerH - 1
	}
	return cx, cy
}

// View renders the canvas.
func (c Canvas) View() string {
	var b strings.Builder

	title := styles.PanelTitleStyle.Render(c.title)
	b.WriteString(title)
	b.WriteString("\n")

	innerW, innerH := c.innerSize()
	grid := make([][]cell, innerH)
	for y := range grid {
		grid[y] = make([]cell, innerW)
		for x := range grid[y] {
			ch := ' '
			if x%8 == 0 && y%4 == 0 {
				ch = '·'
			}
			grid[y][x] = cell{ch: ch, style: styles.GridStyle}
		}
	}

	if c.editor != nil {
		c.drawConnections(grid)
		c.drawPieces(grid)
	}
	c.drawCursor(grid)

	for y := 0; y < innerH; y++ {
		for x := 0; x < innerW; x++ {
			b.WriteString(grid[y][x].style.Render(string(grid[y][x].ch)))
		}
		b.WriteString("\n")
	}

	b.WriteString(c.renderStatusLine())

	return c.applyPanelStyle(b.String())
}

// drawConnections draws line segments between consecutive points.
func (c Canvas) drawConnections(grid [][]cell) {
	conns := c.editor.Connections()
	for _, conn := range conns {
		if conn.PointIndex == 0 {
			continue
		}
		prev := c.path.ControlPoints.At(conn.PointIndex - 1)
		x0, y0 := c.cellFor(prev.Position())
		x1, y1 := c.cellFor(conn.Point.Position())
		drawLine(grid, x0, y0, x1, y1)
	}
}

// drawPieces draws the control point markers on top of connections.
func (c Canvas) drawPieces(grid [][]cell) {
	hovered := c.HoveredPiece()

	for _, p := range c.editor.Pieces() {
		x, y := c.cellFor(p.Point.Position())

		ch := '●'
		style := styles.PieceStyle
		if t := p.Point.PathType(); t != nil {
			ch = '◆'
			style = lipgloss.NewStyle().
				Foreground(styles.CurveTypeColor(t.String())).
				Bold(true)
		}
		if p.Selected {
			style = styles.SelectedPieceStyle
		}
		if p == hovered {
			style = styles.HoveredPieceStyle
		}

		grid[y][x] = cell{ch: ch, style: style}
	}
}

// drawCursor draws the cursor marker into an empty cell.
func (c Canvas) drawCursor(grid [][]cell) {
	x, y := c.cellFor(c.cursor)
	if grid[y][x].ch == ' ' || grid[y][x].ch == '·' {
		grid[y][x] = cell{ch: '+', style: styles.HoveredPieceStyle}
	}
}

// renderStatusLine shows cursor position and selection count.
func (c Canvas) renderStatusLine() string {
	var parts []string
	parts = append(parts, styles.MetricSecondaryStyle.Render(
		fmt.Sprintf("(%.0f, %.0f)", c.cursor.X, c.cursor.Y)))

	if c.editor != nil {
		if n := len(c.editor.SelectedPieces()); n > 0 {
			parts = append(parts, styles.HighlightValueStyle.Render(
				fmt.Sprintf("%d selected", n)))
		}
		if hovered := c.HoveredPiece(); hovered != nil {
			idx := c.path.ControlPoints.IndexOf(hovered.Point)
			parts = append(parts, styles.MetricValueStyle.Render(
				fmt.Sprintf("point %d", idx)))
		}
	}

	return strings.Join(parts, "  ")
}

// drawLine rasterizes a straight segment into the grid (Bresenham).
func drawLine(grid [][]cell, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if grid[y0][x0].ch == ' ' || grid[y0][x0].ch == '·' {
			grid[y0][x0] = cell{ch: '•', style: styles.ConnectionStyle}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// applyPanelStyle applies the appropriate panel style.
func (c Canvas) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if c.focused {
		style = styles.ActivePanelStyle
	}

	return style.
		Width(c.width).
		Height(c.height).
		Render(content)
}
