/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package app provides core application state for the read-only viewer.
package app

import (
	"sync"

	"github.com/nanobeat/slidercraft/internal/model"
)

// State holds the viewer state in a thread-safe manner.
type State struct {
	mu          sync.RWMutex
	doc         *model.Document
	selectedIdx int
	showHelp    bool
}

// NewState creates a new viewer state with the given document.
func NewState(doc *model.Document) *State {
	return &State{
		doc:         doc,
		selectedIdx: 0,
		showHelp:    false,
	}
}

// Document returns the loaded document (read-only).
func (s *State) Document() *model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// SelectedIdx returns the currently selected slider index.
func (s *State) SelectedIdx() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedIdx
}

// CurrentSlider returns the currently selected slider.
func (s *State) CurrentSlider() *model.Slider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedIdx >= 0 && s.selectedIdx < len(s.doc.Sliders) {
		return &s.doc.Sliders[s.selectedIdx]
	}
	return nil
}

// SelectNext moves to the next slider.
func (s *State) SelectNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedIdx < len(s.doc.Sliders)-1 {
		s.selectedIdx++
	}
}

// SelectPrev moves to the previous slider.
func (s *State) SelectPrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedIdx > 0 {
		s.selectedIdx--
	}
}

// ToggleHelp toggles the help display.
func (s *State) ToggleHelp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHelp = !s.showHelp
}

// ShowHelp returns whether help is currently shown.
func (s *State) ShowHelp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showHelp
}
