/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// slidercraft-edit is a terminal editor for slider path documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/docopt/docopt-go"
	"github.com/nanobeat/slidercraft/internal/app"
	"github.com/nanobeat/slidercraft/internal/config"
	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/model"
	"github.com/nanobeat/slidercraft/internal/ui"
	"github.com/nanobeat/slidercraft/internal/ui/bubbletea"
	"github.com/nanobeat/slidercraft/internal/ui/gocui"
)

const version = "0.3.0"

func main() {
	usage := `Slider path editor.

Documents are discovered from configured data paths; pass a file to open
it directly. --legacy opens the read-only gocui viewer instead of the
editor. Set ` + config.EnvDataDir + ` to override the data directory.

Usage:
    slidercraft-edit [--legacy] [<file>]
    slidercraft-edit --new
    slidercraft-edit -h | --help
    slidercraft-edit --version

Options:
    -h --help   Show this screen.
    --version   Show version.
    --legacy    Open the read-only legacy viewer.
    --new       Create a new document interactively.`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		panic(err)
	}

	if newDoc, _ := opts.Bool("--new"); newDoc {
		createDocument()
		return
	}

	config.CleanupStaleAutosaves()

	file, _ := opts.String("<file>")

	if legacy, _ := opts.Bool("--legacy"); legacy {
		runLegacyViewer(file)
		return
	}

	var editor tea.Model
	if file != "" {
		editor = bubbletea.NewAppWithFile(file)
	} else {
		editor = bubbletea.NewApp()
	}

	p := tea.NewProgram(
		editor,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Fatal("Error running editor", "err", err)
	}
}

// createDocument prompts for document metadata and writes a starter file.
func createDocument() {
	var name, label string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Document name").
				Placeholder("my-map").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}).
				Value(&name),
			huh.NewInput().
				Title("First slider label").
				Placeholder("slider 1").
				Value(&label),
		),
	)

	if err := form.Run(); err != nil {
		log.Fatal("Failed to read document details", "err", err)
	}

	doc := model.NewDocument(name)
	sl := model.NewSlider(label)
	sl.Points = starterPoints()
	doc.Sliders = append(doc.Sliders, sl)

	dir := config.DefaultSaveDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal("Failed to create data directory", "dir", dir, "err", err)
	}

	path := filepath.Join(dir, name+config.DocumentFileExtension)
	if _, err := os.Stat(path); err == nil {
		log.Fatal("Document already exists", "path", path)
	}

	if err := model.SaveDocument(path, doc); err != nil {
		log.Fatal("Failed to save document", "path", path, "err", err)
	}

	log.Info("Document created", "path", path)
}

// starterPoints returns the minimal editable path: a typed opening point
// and one trailing point across the playfield center.
func starterPoints() []model.PointRecord {
	mid := geom.V(config.PlayfieldWidth/2, config.PlayfieldHeight/2)
	return []model.PointRecord{
		{X: mid.X - 64, Y: mid.Y, Type: "bezier"},
		{X: mid.X + 64, Y: mid.Y},
	}
}

// runLegacyViewer opens the read-only gocui interface.
func runLegacyViewer(file string) {
	if file == "" {
		discovered, err := config.DiscoverLatestDocument()
		if err != nil {
			log.Fatal("No document found", "err", err)
		}
		file = discovered
	}

	doc, err := model.LoadDocument(file)
	if err != nil {
		log.Fatal("Failed to load document", "path", file, "err", err)
	}

	var viewer ui.UI
	viewer, err = gocui.New()
	if err != nil {
		log.Fatal("Failed to initialize terminal", "err", err)
	}
	defer viewer.Close()

	if err := viewer.Run(app.NewState(doc)); err != nil {
		log.Fatal("Viewer error", "err", err)
	}
}
