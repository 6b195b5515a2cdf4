// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neonxyz

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/text/textcore"
	"cogentcore.org/core/tree"
	"github.com/neongraph/neongraph/highlight"
	"github.com/neongraph/neongraph/neon"
	"github.com/neongraph/neongraph/store"
)

// App is the main window: a side panel with the text editor and the node
// list, and the 3D view.
type App struct {

	// Body is the window body.
	Body *core.Body

	// View is the 3D view.
	View *View

	// Viewer owns the graph state.
	Viewer *neon.Viewer

	// Editor holds the input text.
	Editor *textcore.Editor

	// Store saves the text on generate. It may be nil.
	Store *store.Store

	panel  *core.Frame
	nodes  *core.Frame
	info   *core.Text
	roam   *core.Button
	filter string
	shown  bool
}

// NewApp builds the main window with the given settings, store and
// initial text, and generates the graph for the text.
func NewApp(st neon.Settings, sto *store.Store, text string) *App {
	app := &App{Store: sto}
	b := core.NewBody("neongraph")
	app.Body = b
	b.OnShow(func(e events.Event) {
		app.shown = true
	})

	bar := core.NewFrame(b)
	bar.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
		s.Align.Items = styles.Center
	})
	app.roam = core.NewButton(bar)
	app.roam.OnClick(func(e events.Event) {
		app.Viewer.ToggleFreeRoam()
	})
	app.roam.Updater(func() {
		if app.Viewer != nil && app.Viewer.FreeRoam() {
			app.roam.SetText("Guided").SetIcon(icons.Navigation)
		} else {
			app.roam.SetText("Free roam").SetIcon(icons.OpenWith)
		}
	})
	app.info = core.NewText(bar)
	app.info.Updater(func() {
		app.info.SetText(app.infoText())
	})

	split := core.NewSplits(b)
	app.panel = core.NewFrame(split)
	app.panel.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Min.X.Em(20)
		if app.Viewer != nil && app.Viewer.FreeRoam() {
			s.Display = styles.DisplayNone
		}
	})

	app.Editor = textcore.NewEditor(app.panel)
	app.Editor.Styler(func(s *styles.Style) {
		s.Min.Y.Em(12)
		s.Grow.Set(1, 1)
	})

	btns := core.NewFrame(app.panel)
	core.NewButton(btns).SetText("Generate").SetIcon(icons.PlayArrow).OnClick(func(e events.Event) {
		app.Generate()
	})
	core.NewButton(btns).SetText("Clear").SetIcon(icons.Delete).SetType(core.ButtonOutlined).OnClick(func(e events.Event) {
		app.Editor.Lines.SetString("")
		app.Viewer.Clear()
	})

	tf := core.NewTextField(app.panel).SetPlaceholder("Filter nodes")
	tf.SetLeadingIcon(icons.Search)
	tf.Styler(func(s *styles.Style) {
		s.Min.X.Em(15)
	})
	tf.OnInput(func(e events.Event) {
		app.filter = tf.Text()
		app.nodes.Update()
	})

	app.nodes = core.NewFrame(app.panel)
	app.nodes.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Overflow.Y = styles.OverflowAuto
		s.Gap.Y = units.Dp(2)
	})
	app.nodes.Maker(app.makeNodes)

	app.View = NewView(split)
	app.View.ChromeWidgets = []core.Widget{bar, app.panel}
	app.View.OnChange(func(e events.Event) {
		app.info.Update()
	})
	split.SetSplits(0.3, 0.7)

	app.Viewer = neon.NewViewer(app.View.Backend, st)
	app.View.SetViewer(app.Viewer)
	app.Viewer.OnChange = app.changed
	app.SetText(text)
	return app
}

// Generate saves the editor text and rebuilds the graph from it.
func (app *App) Generate() {
	text := app.Editor.Lines.String()
	if app.Store != nil {
		errors.Log(app.Store.Save(text))
	}
	app.Viewer.Generate(text)
}

// SetText replaces the editor text and rebuilds the graph.
// It must be called on the GUI thread.
func (app *App) SetText(text string) {
	app.Editor.Lines.SetString(text)
	app.Viewer.Generate(text)
}

// SetTextAsync is [App.SetText] for use from other goroutines.
func (app *App) SetTextAsync(text string) {
	app.Body.AsyncLock()
	defer app.Body.AsyncUnlock()
	app.SetText(text)
}

// Run opens the main window and waits until it is closed.
func (app *App) Run() {
	app.Body.RunMainWindow()
}

func (app *App) changed() {
	if !app.shown {
		return
	}
	app.roam.Update()
	app.info.Update()
	app.nodes.Update()
	app.panel.Update()
}

func (app *App) infoText() string {
	v := app.Viewer
	if v == nil {
		return ""
	}
	if v.FreeRoam() {
		return "Free roam: drag to orbit, shift+drag to pan, scroll to zoom"
	}
	if i := v.Hovered(); i >= 0 {
		n := v.State.Nodes[i]
		return fmt.Sprintf("%s %s: %s", highlight.Badge(n.Type), n.Name, n.Payload)
	}
	return fmt.Sprintf("%d nodes, %d links. Scroll to step through, click to focus", len(v.State.Nodes), len(v.State.Edges))
}

// makeNodes lists the nodes matching the filter, one button per node.
func (app *App) makeNodes(p *tree.Plan) {
	v := app.Viewer
	if v == nil {
		return
	}
	for _, i := range v.Filter(app.filter) {
		tree.AddAt(p, strconv.Itoa(i), func(w *core.Button) {
			w.OnClick(func(e events.Event) {
				app.Viewer.Focus(i)
			})
			w.Updater(func() {
				if !app.Viewer.State.ValidIndex(i) {
					return
				}
				n := app.Viewer.State.Nodes[i]
				w.SetText(fmt.Sprintf("%s  %s", n.Name, highlight.Badge(n.Type)))
				w.SetTooltip(n.Snippet)
				if app.Viewer.Focused() == i {
					w.SetType(core.ButtonTonal)
				} else {
					w.SetType(core.ButtonText)
				}
			})
		})
	}
}
