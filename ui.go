package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/linegraph/backend"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/sync/errgroup"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var exportIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ContentSave)
	return icon
}()

const exportName = "chart.png"

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws         backend.WindowState
	expl       *explorer.Explorer
	group      *errgroup.Group
	invalidate func()

	th        *material.Theme
	title     string
	chart     *ChartView
	snapshots *stream.Stream[backend.Snapshot]

	exportBtn widget.Clickable
	exporting bool
	exported  chan error

	status    string
	statusErr bool
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, group *errgroup.Group, invalidate func(), title string, view *ChartView) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		ws:         ws,
		expl:       expl,
		group:      group,
		invalidate: invalidate,
		th:         th,
		title:      title,
		chart:      view,
		exported:   make(chan error, 1),
	}
	if ds := ws.Bundle.Datasource; ds != nil {
		ui.snapshots = stream.New(ws.Controller, ds.Stream)
		ui.status = "Loading " + ds.Path()
	} else {
		ui.status = "Showing demo data"
	}
	return ui
}

// Update the state of the UI from its data sources and input.
func (ui *UI) Update(gtx C) {
	if snap, ok := ui.snapshots.ReadNew(gtx); ok {
		ui.apply(snap)
	}
	select {
	case err := <-ui.exported:
		ui.exporting = false
		if err != nil {
			log.Printf("export failed: %v", err)
			ui.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		} else {
			ui.setStatus("Exported "+exportName, false)
		}
	default:
	}
	if ui.exportBtn.Clicked(gtx) && !ui.exporting {
		ui.startExport(ui.chart.Size())
	}
}

func (ui *UI) apply(snap backend.Snapshot) {
	if snap.Err != nil {
		log.Printf("failed loading %s: %v", snap.Path, snap.Err)
		ui.setStatus(snap.Err.Error(), true)
		return
	}
	if err := ui.chart.ReplaceAll(snap.Series); err != nil {
		log.Printf("rejected data from %s: %v", snap.Path, err)
		ui.setStatus(err.Error(), true)
		return
	}
	status := fmt.Sprintf("%s: %d series", snap.Path, len(snap.Series))
	if snap.HeldBack {
		status += " (waiting for the last line to finish)"
	}
	ui.setStatus(status, false)
}

func (ui *UI) setStatus(s string, isErr bool) {
	ui.status = s
	ui.statusErr = isErr
}

// startExport asks for a destination and writes the chart there in the
// background.
func (ui *UI) startExport(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	ui.exporting = true
	ui.group.Go(func() error {
		ui.exported <- ui.export(size)
		ui.invalidate()
		return nil
	})
}

func (ui *UI) export(size image.Point) error {
	file, err := ui.expl.CreateFile(exportName)
	if err != nil {
		return fmt.Errorf("failed creating %s: %w", exportName, err)
	}
	return ui.chart.Export(file, size)
}

func (ui *UI) layoutHeader(gtx C) D {
	return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.H6(ui.th, ui.title).Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx C) D {
					l := material.Body2(ui.th, ui.status)
					l.MaxLines = 1
					if ui.statusErr {
						l.Color = color.NRGBA{R: 150, A: 255}
					}
					return l.Layout(gtx)
				})
			}),
			layout.Rigid(func(gtx C) D {
				if ui.exporting {
					gtx = gtx.Disabled()
				}
				return material.IconButton(ui.th, &ui.exportBtn, exportIcon, "Export PNG").Layout(gtx)
			}),
		)
	})
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutHeader),
		layout.Flexed(1, func(gtx C) D {
			return ui.chart.Layout(gtx, ui.th)
		}),
	)
}
