package main

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~whereswaldon/linegraph/backend"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"git.sr.ht/~whereswaldon/linegraph/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllDemo(t *testing.T) {
	series, err := loadAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, backend.DemoSeries(), series)
}

func TestLoadAllMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, os.WriteFile(first, []byte("x,a,b\n0,1,2\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("x,c\n0,3\n"), 0o644))

	series, err := loadAll(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, series, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, series[i].Label)
	}

	c := chart.New()
	require.NoError(t, c.ReplaceAll(series))
	assert.Equal(t, 2, c.Series()[2].ColorIndex)
}

func TestLoadAllFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("x,a\n0,zero\n"), 0o644))
	_, err := loadAll(context.Background(), []string{bad})
	require.ErrorIs(t, err, backend.ErrMalformedTrace)
}

func TestWrite(t *testing.T) {
	canvas, err := raster.Render(100, 80, chart.Insets{}, chart.New())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, write(path, canvas))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 80), img.Bounds())
}
