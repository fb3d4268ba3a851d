/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package gocui provides the legacy gocui-based read-only viewer.
package gocui

import (
	"fmt"

	"github.com/nanobeat/slidercraft/internal/app"
	"github.com/nanobeat/slidercraft/internal/ui/render"
	lib "github.com/jroimartin/gocui"
)

// -----------------------------------------------------------------------------
// View Names
// -----------------------------------------------------------------------------

const (
	ViewHeader   = "header"
	ViewInfo     = "info"
	ViewPoints   = "points"
	ViewFooter   = "footer"
	ViewTooSmall = "toosmall"
)

// -----------------------------------------------------------------------------
// Adapter Implementation
// -----------------------------------------------------------------------------

// Adapter implements ui.UI using gocui.
type Adapter struct {
	gui    *lib.Gui
	state  *app.State
	layout *Layout
}

// New creates a new gocui adapter.
func New() (*Adapter, error) {
	g, err := lib.NewGui(lib.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = false
	return &Adapter{gui: g}, nil
}

// Run implements ui.UI.
func (a *Adapter) Run(state *app.State) error {
	a.state = state
	a.gui.SetManagerFunc(a.layoutManager)
	if err := a.setupBindings(); err != nil {
		return err
	}
	err := a.gui.MainLoop()
	if err == lib.ErrQuit {
		return nil
	}
	return err
}

// Close implements ui.UI.
func (a *Adapter) Close() {
	a.gui.Close()
}

// -----------------------------------------------------------------------------
// Layout Management
// -----------------------------------------------------------------------------

// viewSpec describes one view: where it goes and how it is framed.
type viewSpec struct {
	name   string
	bounds func() (int, int, int, int)
	title  string
	frame  bool
}

func (a *Adapter) views() []viewSpec {
	return []viewSpec{
		{ViewHeader, a.layout.HeaderBounds, "", false},
		{ViewInfo, a.layout.InfoPanelBounds, " Slider ", true},
		{ViewPoints, a.layout.PointPanelBounds, " Points ", true},
		{ViewFooter, a.layout.FooterBounds, "", false},
	}
}

// layoutManager creates and updates all views.
func (a *Adapter) layoutManager(g *lib.Gui) error {
	maxX, maxY := g.Size()
	a.layout = NewLayout(maxX, maxY)

	if a.layout.IsTerminalTooSmall() {
		return a.renderTooSmall(g, maxX, maxY)
	}
	if err := g.DeleteView(ViewTooSmall); err != nil && err != lib.ErrUnknownView {
		return err
	}

	for _, spec := range a.views() {
		x0, y0, x1, y1 := spec.bounds()
		v, err := g.SetView(spec.name, x0, y0, x1, y1)
		if err != nil && err != lib.ErrUnknownView {
			return err
		}
		v.Frame = spec.frame
		v.Title = spec.title
		v.Wrap = spec.frame
	}

	return a.renderAll()
}

// renderTooSmall replaces the panels with a resize hint until the
// terminal can fit them again.
func (a *Adapter) renderTooSmall(g *lib.Gui, maxX, maxY int) error {
	for _, spec := range a.views() {
		if err := g.DeleteView(spec.name); err != nil && err != lib.ErrUnknownView {
			return err
		}
	}

	v, err := g.SetView(ViewTooSmall, 0, 0, maxX-1, maxY-1)
	if err != nil && err != lib.ErrUnknownView {
		return err
	}
	v.Frame = false
	v.Clear()
	fmt.Fprintf(v, "Terminal too small (%dx%d), need %d columns. q: quit\n",
		maxX, maxY, MinTerminalWidth)
	return nil
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// renderAll updates all view contents.
func (a *Adapter) renderAll() error {
	doc := a.state.Document()
	sl := a.state.CurrentSlider()
	idx := a.state.SelectedIdx()

	a.fill(ViewHeader, render.Header(doc, idx))

	info := ""
	points := ""
	if sl != nil {
		info = render.SliderInfo(sl) + "\n" + render.Stability(sl)
		points = render.PointTable(sl)
	}
	a.fill(ViewInfo, info)
	a.fill(ViewPoints, points)

	if a.state.ShowHelp() {
		a.fill(ViewFooter, render.Help())
	} else {
		a.fill(ViewFooter, "?: help  q: quit\n")
	}

	return nil
}

// fill replaces a view's content, ignoring views not yet created.
func (a *Adapter) fill(name, content string) {
	if v, err := a.gui.View(name); err == nil {
		v.Clear()
		v.Write([]byte(content))
	}
}

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// setupBindings configures keybindings.
func (a *Adapter) setupBindings() error {
	bindings := []struct {
		key     interface{}
		handler func(*lib.Gui, *lib.View) error
	}{
		{lib.KeyCtrlC, a.quit},
		{'q', a.quit},
		{lib.KeyArrowDown, a.nextSlider},
		{'j', a.nextSlider},
		{lib.KeyArrowUp, a.prevSlider},
		{'k', a.prevSlider},
		{'?', a.toggleHelp},
	}

	for _, b := range bindings {
		if err := a.gui.SetKeybinding("", b.key, lib.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (a *Adapter) quit(g *lib.Gui, v *lib.View) error {
	return lib.ErrQuit
}

func (a *Adapter) nextSlider(g *lib.Gui, v *lib.View) error {
	a.state.SelectNext()
	return nil
}

func (a *Adapter) prevSlider(g *lib.Gui, v *lib.View) error {
	a.state.SelectPrev()
	return nil
}

func (a *Adapter) toggleHelp(g *lib.Gui, v *lib.View) error {
	a.state.ToggleHelp()
	return nil
}
