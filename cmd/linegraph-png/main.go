// Command linegraph-png renders CSV traces, or the demo dataset when none
// are given, to a PNG image.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~whereswaldon/linegraph/backend"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"git.sr.ht/~whereswaldon/linegraph/raster"
	"golang.org/x/sync/errgroup"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: render csv traces to a png line chart
Usage:

 %[1]s [flags] [trace.csv...]

Each trace has a header row "x, <label>, <label>..." followed by one row per
x value. Series from every trace are drawn together, in argument order. With
no traces the demo dataset is drawn.

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	out := flag.String("o", "chart.png", "output file, or - for stdout")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	var pad chart.Insets
	flag.Float64Var(&pad.Top, "pad-top", 16, "top padding in pixels")
	flag.Float64Var(&pad.Bottom, "pad-bottom", 8, "bottom padding in pixels")
	flag.Float64Var(&pad.Start, "pad-start", 16, "start padding in pixels")
	flag.Float64Var(&pad.End, "pad-end", 16, "end padding in pixels")
	stylePath := flag.String("style", "", "YAML file overriding the default chart style")
	flag.Parse()

	style := chart.DefaultStyle()
	if *stylePath != "" {
		f, err := os.Open(*stylePath)
		if err != nil {
			log.Fatalf("failed opening style: %v", err)
		}
		style, err = chart.LoadStyle(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed loading style %q: %v", *stylePath, err)
		}
	}

	series, err := loadAll(context.Background(), flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	c := chart.New(chart.WithStyle(style))
	if err := c.ReplaceAll(series); err != nil {
		log.Fatalf("failed building chart: %v", err)
	}
	canvas, err := raster.Render(*width, *height, pad, c)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(*out, canvas); err != nil {
		log.Fatal(err)
	}
}

// loadAll reads every trace concurrently and concatenates their series in
// argument order. With no paths it returns the demo dataset.
func loadAll(ctx context.Context, paths []string) ([]chart.Series, error) {
	if len(paths) == 0 {
		return backend.DemoSeries(), nil
	}
	perFile := make([][]chart.Series, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			series, err := backend.NewDatasource(path).Load(ctx)
			if err != nil {
				return err
			}
			perFile[i] = series
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var all []chart.Series
	for _, series := range perFile {
		all = append(all, series...)
	}
	return all, nil
}

func write(path string, canvas *raster.Canvas) error {
	if path == "-" {
		return canvas.EncodePNG(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed creating output: %w", err)
	}
	return closeAfter(f, canvas.EncodePNG(f))
}

func closeAfter(c io.Closer, err error) error {
	return errors.Join(err, c.Close())
}
