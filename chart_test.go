package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~whereswaldon/linegraph/backend"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closingBuffer) Close() error {
	b.closed = true
	return nil
}

func TestChartViewExport(t *testing.T) {
	c := chart.New()
	require.NoError(t, c.ReplaceAll(backend.DemoSeries()))
	view := NewChartView(c)

	var out closingBuffer
	require.NoError(t, view.Export(&out, image.Pt(320, 240)))
	assert.True(t, out.closed)

	img, err := png.Decode(&out.Buffer)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())
}

func TestChartViewExportClosesOnFailure(t *testing.T) {
	var out closingBuffer
	err := NewChartView(chart.New()).Export(&out, image.Point{})
	assert.ErrorIs(t, err, chart.ErrInvalidInput)
	assert.True(t, out.closed)
	assert.Zero(t, out.Len())
}

func TestLoadStyle(t *testing.T) {
	style, err := loadStyle("")
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultStyle(), style)

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gridlines: 4\n"), 0o644))
	style, err = loadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, 4, style.Gridlines)

	_, err = loadStyle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
