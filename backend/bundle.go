package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle holds the application's data providers. Datasource is nil when no
// trace file was requested.
type Bundle struct {
	Datasource *Datasource
}

func NewBundle(tracePath string) Bundle {
	var b Bundle
	if tracePath != "" {
		b.Datasource = NewDatasource(tracePath)
	}
	return b
}
