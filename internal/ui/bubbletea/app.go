/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package bubbletea provides the main editor TUI using Bubble Tea.
package bubbletea

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nanobeat/slidercraft/internal/config"
	"github.com/nanobeat/slidercraft/internal/model"
	"github.com/nanobeat/slidercraft/internal/overlay"
	"github.com/nanobeat/slidercraft/internal/processor"
	"github.com/nanobeat/slidercraft/internal/slider"
	"github.com/nanobeat/slidercraft/internal/ui/components"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
)

// Panel identifiers
const (
	PanelExplorer = iota
	PanelCanvas
	PanelInspector
	PanelCount
)

// Drag targets
const (
	DragNone = iota
	DragExplorer
	DragCanvas
)

// -----------------------------------------------------------------------------
// Edit Session
// -----------------------------------------------------------------------------

// editSession holds the mutable editing state shared across model copies.
// It implements slider.ChangeRecorder so every outermost change bracket
// marks the document dirty.
type editSession struct {
	docPath   string
	doc       *model.Document
	sliderIdx int

	path   *slider.Path
	editor *overlay.ControlPoints

	dirty bool
}

func (s *editSession) BeginChange() {}

func (s *editSession) EndChange() {
	s.dirty = true
}

// openSlider switches the session to the slider at idx, persisting the
// previously edited slider back into the document first.
func (s *editSession) openSlider(idx int) error {
	s.persist()
	if s.editor != nil {
		s.editor.Close()
		s.editor = nil
		s.path = nil
	}

	if idx < 0 || idx >= len(s.doc.Sliders) {
		return fmt.Errorf("slider %d out of range", idx)
	}

	path, err := processor.PathFromSlider(&s.doc.Sliders[idx])
	if err != nil {
		return err
	}
	path.Recorder = s
	path.EnsureValidTypes()

	editor := overlay.NewControlPoints(path, true)
	editor.RemoveRequested = func(points []*slider.ControlPoint) {
		s.removePoints(points)
	}

	s.sliderIdx = idx
	s.path = path
	s.editor = editor
	return nil
}

// persist writes the live path back into the document slider.
func (s *editSession) persist() {
	if s.path == nil || s.doc == nil {
		return
	}
	if s.sliderIdx >= 0 && s.sliderIdx < len(s.doc.Sliders) {
		processor.SliderFromPath(&s.doc.Sliders[s.sliderIdx], s.path)
	}
}

// removePoints deletes the requested points, holding the domain rules:
// the path's opening point stays, and the path keeps at least two points.
func (s *editSession) removePoints(points []*slider.ControlPoint) {
	list := s.path.ControlPoints

	allowed := make([]*slider.ControlPoint, 0, len(points))
	for _, p := range points {
		if list.IndexOf(p) == 0 {
			continue
		}
		allowed = append(allowed, p)
	}

	if remaining := list.Len() - len(allowed); remaining < 2 {
		over := 2 - remaining
		if over > len(allowed) {
			over = len(allowed)
		}
		allowed = allowed[:len(allowed)-over]
	}

	if len(allowed) == 0 {
		return
	}
	list.Remove(allowed...)
	s.path.EnsureValidTypes()
}

// close releases the session's overlay subscriptions. A closed session
// has nothing left to save, so the dirty flag drops with it.
func (s *editSession) close() {
	if s.editor != nil {
		s.editor.Close()
		s.editor = nil
	}
	s.path = nil
	s.doc = nil
	s.docPath = ""
	s.dirty = false
}

// -----------------------------------------------------------------------------
// App Model
// -----------------------------------------------------------------------------

// App is the main application model.
type App struct {
	// Components
	explorer      components.Explorer
	canvas        components.Canvas
	inspector     components.Inspector
	confirmDialog components.ConfirmDialog
	contextMenu   components.ContextMenu

	// State
	session     *editSession
	activePanel int
	loading     bool
	// loadingExplorer marks a user-initiated refresh, so silent
	// background refreshes do not clobber the status line.
	loadingExplorer bool
	statusMsg       string
	errMsg          string

	// Layout and Resizing
	width          int
	height         int
	explorerRatio  float64
	canvasRatio    float64
	dragActive     int
	dragStartMX    int
	dragStartRatio float64

	// Key bindings
	keys KeyMap

	// initialFile, when set, is loaded on startup.
	initialFile string
}

// NewApp creates a new application instance.
func NewApp() App {
	return App{
		explorer:      components.NewExplorer(),
		canvas:        components.NewCanvas(),
		inspector:     components.NewInspector(),
		confirmDialog: components.NewConfirmDialog(),
		contextMenu:   components.NewContextMenu(),
		session:       &editSession{},
		activePanel:   PanelExplorer,
		keys:            DefaultKeyMap(),
		loadingExplorer: true,
		statusMsg:       "Loading documents...",
		explorerRatio: 0.20,
		canvasRatio:   0.50,
		dragActive:    DragNone,
	}
}

// NewAppWithFile creates an application that opens the given document on
// startup.
func NewAppWithFile(path string) App {
	a := NewApp()
	a.initialFile = path
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	refresh := processor.RefreshFilesCmd(config.GetDataPaths(), config.DocumentFileExtension)
	if a.initialFile != "" {
		return tea.Batch(refresh, processor.LoadDocumentCmd(a.initialFile))
	}
	return refresh
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Modal overlays consume input first
	if a.confirmDialog.IsVisible() {
		if result, handled := a.confirmDialog.Update(msg); handled {
			return a.handleConfirm(result)
		}
		if _, sizeMsg := msg.(tea.WindowSizeMsg); !sizeMsg {
			return a, nil
		}
	}

	if a.contextMenu.IsVisible() {
		if result, handled := a.contextMenu.Update(msg); handled {
			return a.handleMenuResult(result)
		}
		if _, keyMsg := msg.(tea.KeyMsg); keyMsg {
			return a, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.confirmDialog.SetSize(msg.Width, msg.Height)
		a.contextMenu.SetSize(msg.Width, msg.Height)
		a.updateComponentSizes()

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case processor.FileListMsg:
		a.loading = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
		} else {
			a.explorer.SetFiles(msg.Files)
			if a.loadingExplorer {
				a.statusMsg = fmt.Sprintf("Found %d documents", len(msg.Files))
			}
			a.loadingExplorer = false
			a.errMsg = ""
			a.inspector.SetSelectedFile(a.explorer.SelectedFile())
		}

	case processor.LoadResultMsg:
		a.loading = false
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			a.statusMsg = "Failed to load document"
			return a, nil
		}
		return a.openDocument(msg.Path, msg.Doc)

	case processor.SaveResultMsg:
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			a.statusMsg = "Save failed"
		} else if msg.Autosave {
			a.statusMsg = "Autosaved"
		} else {
			a.session.dirty = false
			a.statusMsg = fmt.Sprintf("✓ Saved %s", filepath.Base(msg.Path))
			a.errMsg = ""
			// Refresh so the explorer drops the autosave badge.
			return a, processor.RefreshFilesCmd(
				config.GetDataPaths(),
				config.DocumentFileExtension,
			)
		}

	case processor.DeleteResultMsg:
		if msg.Success {
			a.statusMsg = fmt.Sprintf("✓ Document deleted: %s", filepath.Base(msg.Path))
			a.errMsg = ""
			if a.session.docPath == msg.Path {
				a.closeDocument()
			}
			return a, processor.RefreshFilesCmd(
				config.GetDataPaths(),
				config.DocumentFileExtension,
			)
		}
		a.errMsg = msg.Err.Error()
		a.statusMsg = "Failed to delete document"

	case processor.DeleteAllResultMsg:
		a.closeDocument()
		if msg.FailedCount > 0 {
			a.statusMsg = fmt.Sprintf("Deleted %d documents, %d failed", msg.DeletedCount, msg.FailedCount)
		} else {
			a.statusMsg = fmt.Sprintf("✓ All %d documents deleted", msg.DeletedCount)
		}
		a.errMsg = ""
		return a, processor.RefreshFilesCmd(
			config.GetDataPaths(),
			config.DocumentFileExtension,
		)

	case components.MenuRequestMsg:
		a.contextMenu.Show(msg.Menu)

	case components.PathEditedMsg:
		// Persist the edit and keep a working copy next to the document
		a.session.persist()
		if a.session.docPath != "" {
			a.statusMsg = "Edited"
			return a, processor.AutosaveCmd(a.session.docPath, a.session.doc)
		}

	case components.SliderChangedMsg:
		if a.session.doc != nil {
			if err := a.session.openSlider(msg.Index); err != nil {
				a.errMsg = err.Error()
				return a, nil
			}
			a.canvas.SetPath(a.session.path, a.session.editor)
			a.inspector.SetPath(a.session.path)
			a.statusMsg = fmt.Sprintf("Editing slider %d", msg.Index+1)
		}
	}

	return a, tea.Batch(cmds...)
}

// handleKey routes key input.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.session.persist()
		if a.session.dirty && a.session.doc != nil {
			a.confirmDialog.ShowDiscardChanges(a.session.doc.Name)
			return a, nil
		}
		return a, tea.Quit

	case key.Matches(msg, a.keys.Tab):
		a.activePanel = (a.activePanel + 1) % PanelCount
		a.updateFocus()

	case key.Matches(msg, a.keys.Reload):
		if a.activePanel == PanelExplorer {
			a.loading = true
			a.loadingExplorer = true
			a.statusMsg = "Reloading documents..."
			return a, processor.RefreshFilesCmd(config.GetDataPaths(), config.DocumentFileExtension)
		}
		cmds = append(cmds, a.forwardToPanel(msg))

	case key.Matches(msg, a.keys.Save):
		if a.session.doc != nil {
			a.session.persist()
			a.statusMsg = "Saving..."
			return a, processor.SaveDocumentCmd(a.session.docPath, a.session.doc)
		}

	case key.Matches(msg, a.keys.Enter) && a.activePanel == PanelExplorer:
		if path := a.explorer.Selected(); path != "" {
			a.loading = true
			a.statusMsg = "Loading document..."
			return a, processor.LoadDocumentCmd(path)
		}

	case key.Matches(msg, a.keys.Delete) && a.activePanel == PanelExplorer:
		if selected := a.explorer.Selected(); selected != "" {
			a.confirmDialog.ShowDeleteDocument(selected)
		}

	case key.Matches(msg, a.keys.DeleteAll) && a.activePanel == PanelExplorer:
		if a.explorer.FileCount() > 0 {
			a.confirmDialog.ShowDeleteAll(a.explorer.FileCount())
		}

	default:
		cmds = append(cmds, a.forwardToPanel(msg))
	}

	return a, tea.Batch(cmds...)
}

// forwardToPanel sends a message to the focused panel.
func (a *App) forwardToPanel(msg tea.Msg) tea.Cmd {
	switch a.activePanel {
	case PanelExplorer:
		cmd := a.explorer.Update(msg)
		a.inspector.SetSelectedFile(a.explorer.SelectedFile())
		return cmd
	case PanelCanvas:
		return a.canvas.Update(msg)
	case PanelInspector:
		return a.inspector.Update(msg)
	}
	return nil
}

// handleMouse handles splitter dragging, focus and canvas clicks.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.MouseRelease {
		if a.dragActive != DragNone {
			a.dragActive = DragNone
			a.statusMsg = "Ready"
		}
		return a, nil
	}

	if a.dragActive != DragNone && (msg.Type == tea.MouseMotion || msg.Type == tea.MouseLeft) {
		deltaX := msg.X - a.dragStartMX
		deltaRatio := float64(deltaX) / float64(a.width)
		newRatio := a.dragStartRatio + deltaRatio

		switch a.dragActive {
		case DragExplorer:
			if newRatio < 0.10 {
				newRatio = 0.10
			}
			if newRatio > 0.40 {
				newRatio = 0.40
			}
			a.explorerRatio = newRatio

		case DragCanvas:
			if newRatio < 0.30 {
				newRatio = 0.30
			}
			if a.explorerRatio+newRatio > 0.90 {
				newRatio = 0.90 - a.explorerRatio
			}
			a.canvasRatio = newRatio
		}
		a.updateComponentSizes()
		return a, nil
	}

	s1 := int(float64(a.width) * a.explorerRatio)
	s2 := int(float64(a.width)*a.explorerRatio) + int(float64(a.width)*a.canvasRatio)

	if msg.Type == tea.MouseLeft && a.dragActive == DragNone {
		switch {
		case msg.X >= s1-1 && msg.X <= s1+1:
			a.dragActive = DragExplorer
			a.dragStartMX = msg.X
			a.dragStartRatio = a.explorerRatio
			a.statusMsg = "Resizing explorer..."
			return a, nil
		case msg.X >= s2-1 && msg.X <= s2+1:
			a.dragActive = DragCanvas
			a.dragStartMX = msg.X
			a.dragStartRatio = a.canvasRatio
			a.statusMsg = "Resizing canvas..."
			return a, nil
		}
	}

	if msg.Type == tea.MouseLeft || msg.Type == tea.MouseRight {
		switch {
		case msg.X < s1:
			a.activePanel = PanelExplorer
		case msg.X < s2:
			a.activePanel = PanelCanvas
		default:
			a.activePanel = PanelInspector
		}
		a.updateFocus()

		if a.activePanel == PanelCanvas {
			// Grid starts after the header line, panel border and title row
			localX := msg.X - s1 - 2
			localY := msg.Y - 3
			return a, a.canvas.HandleMouse(msg, localX, localY)
		}
	}

	return a, nil
}

// handleConfirm applies a confirmed (or cancelled) dialog result.
func (a App) handleConfirm(result components.ConfirmResult) (tea.Model, tea.Cmd) {
	if !result.Confirmed {
		a.statusMsg = "Cancelled"
		return a, nil
	}

	switch result.Action {
	case components.ConfirmDeleteDocument:
		a.statusMsg = "Deleting document..."
		return a, processor.DeleteDocumentCmd(result.Data)
	case components.ConfirmDeleteAllDocuments:
		a.statusMsg = "Deleting all documents..."
		return a, processor.DeleteAllDocumentsCmd()
	case components.ConfirmDiscardChanges:
		return a, tea.Quit
	}
	return a, nil
}

// handleMenuResult applies a context menu pick to the selection.
func (a App) handleMenuResult(result components.MenuResult) (tea.Model, tea.Cmd) {
	if a.session.editor == nil {
		return a, nil
	}

	switch {
	case result.ApplyType:
		a.session.editor.ApplyTypeToSelection(result.Type)
		a.statusMsg = "Curve type applied"
	case result.Delete:
		if a.session.editor.DeleteSelected() {
			a.statusMsg = "Points deleted"
		}
	default:
		return a, nil
	}

	a.session.persist()
	if a.session.docPath != "" {
		return a, processor.AutosaveCmd(a.session.docPath, a.session.doc)
	}
	return a, nil
}

// openDocument installs a freshly loaded document into the session.
func (a App) openDocument(path string, doc *model.Document) (tea.Model, tea.Cmd) {
	a.session.close()
	a.session.docPath = path
	a.session.doc = doc

	a.explorer.SetOpenPath(path)
	a.inspector.SetDocument(doc)

	if len(doc.Sliders) == 0 {
		a.statusMsg = "Document has no sliders"
		a.canvas.SetPath(nil, nil)
		a.inspector.SetPath(nil)
		return a, nil
	}

	if err := a.session.openSlider(0); err != nil {
		a.errMsg = err.Error()
		a.statusMsg = "Failed to open slider"
		return a, nil
	}

	a.canvas.SetPath(a.session.path, a.session.editor)
	a.inspector.SetPath(a.session.path)
	a.activePanel = PanelCanvas
	a.updateFocus()
	a.statusMsg = fmt.Sprintf("✓ Loaded: %d sliders", len(doc.Sliders))
	a.errMsg = ""
	return a, nil
}

// closeDocument drops the edit session.
func (a *App) closeDocument() {
	a.session.close()
	a.explorer.SetOpenPath("")
	a.canvas.SetPath(nil, nil)
	a.inspector.SetDocument(nil)
	a.inspector.SetPath(nil)
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	header := a.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.explorer.View(),
		a.canvas.View(),
		a.inspector.View(),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	statusBar := a.renderStatusBar()
	b.WriteString(statusBar)

	// Overlays replace the frame while visible
	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.View()
	}
	if a.contextMenu.IsVisible() {
		return a.contextMenu.View()
	}

	return b.String()
}

// updateComponentSizes recalculates component dimensions.
func (a *App) updateComponentSizes() {
	contentHeight := a.height - 4

	explorerWidth := int(float64(a.width) * a.explorerRatio)
	canvasWidth := int(float64(a.width) * a.canvasRatio)
	inspectorWidth := a.width - explorerWidth - canvasWidth - 6

	a.explorer.SetSize(explorerWidth, contentHeight)
	a.canvas.SetSize(canvasWidth, contentHeight)
	a.inspector.SetSize(inspectorWidth, contentHeight)

	a.updateFocus()
}

// updateFocus sets focus states on components.
func (a *App) updateFocus() {
	a.explorer.SetFocused(a.activePanel == PanelExplorer)
	a.canvas.SetFocused(a.activePanel == PanelCanvas)
	a.inspector.SetFocused(a.activePanel == PanelInspector)
}

// renderHeader renders the application header.
func (a App) renderHeader() string {
	title := "◆ Slidercraft"
	if a.session.doc != nil {
		title += "  " + a.session.doc.Name
		if a.session.dirty {
			title += " *"
		}
	}
	return styles.PanelTitleStyle.Render(title)
}

// renderStatusBar renders the status bar.
func (a App) renderStatusBar() string {
	var left, right string

	if a.errMsg != "" {
		left = styles.ErrorStyle.Render(a.errMsg)
	} else if a.loading {
		left = styles.LoadingStyle.Render(a.statusMsg)
	} else {
		left = styles.DimItemStyle.Render(a.statusMsg)
	}

	hints := []string{
		styles.HelpKeyStyle.Render("Tab") + styles.HelpDescStyle.Render(":panel"),
		styles.HelpKeyStyle.Render("↑↓←→") + styles.HelpDescStyle.Render(":nav"),
		styles.HelpKeyStyle.Render("a") + styles.HelpDescStyle.Render(":add"),
		styles.HelpKeyStyle.Render("x") + styles.HelpDescStyle.Render(":multi"),
		styles.HelpKeyStyle.Render("m") + styles.HelpDescStyle.Render(":menu"),
		styles.HelpKeyStyle.Render("d") + styles.HelpDescStyle.Render(":del"),
		styles.HelpKeyStyle.Render("^s") + styles.HelpDescStyle.Render(":save"),
		styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(":quit"),
	}
	right = strings.Join(hints, "  ")

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}
