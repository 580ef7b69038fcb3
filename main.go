package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~whereswaldon/linegraph/backend"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"golang.org/x/sync/errgroup"
)

func main() {
	tracePath := flag.String("file", "", "CSV trace to plot and follow for changes (shows demo data if empty)")
	stylePath := flag.String("style", "", "YAML file overriding the default chart style")
	title := flag.String("title", "Line Graph", "window title")
	flag.Parse()

	style, err := loadStyle(*stylePath)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		w := app.NewWindow(app.Title(*title), app.Size(unit.Dp(800), unit.Dp(600)))
		if err := run(w, *tracePath, *title, style); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()

	app.Main()
}

func loadStyle(path string) (chart.Style, error) {
	if path == "" {
		return chart.DefaultStyle(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return chart.Style{}, fmt.Errorf("failed opening style: %w", err)
	}
	defer f.Close()
	style, err := chart.LoadStyle(f)
	if err != nil {
		return chart.Style{}, fmt.Errorf("failed loading style %q: %w", path, err)
	}
	return style, nil
}

// run drives the window until it is closed. Background work spawned by the
// UI shares the window's lifetime.
func run(w *app.Window, tracePath, title string, style chart.Style) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	c := chart.New(chart.WithStyle(style), chart.WithInvalidator(w.Invalidate))
	bundle := backend.NewBundle(tracePath)
	if bundle.Datasource == nil {
		if err := c.ReplaceAll(backend.DemoSeries()); err != nil {
			return fmt.Errorf("failed loading demo data: %w", err)
		}
	}
	ws := backend.NewWindowState(ctx, bundle, w)
	expl := explorer.NewExplorer(w)
	ui := NewUI(ws, expl, group, w.Invalidate, title, NewChartView(c))

	group.Go(func() error {
		defer cancel()
		return loop(w, ui, expl)
	})
	return group.Wait()
}

func loop(w *app.Window, ui *UI, expl *explorer.Explorer) error {
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
			ui.ws.Controller.Sweep()
		}
	}
}
