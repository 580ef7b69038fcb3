package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
)

// Snapshot is the complete contents of a trace file at one moment.
type Snapshot struct {
	Path   string
	Series []chart.Series
	// HeldBack reports that the last line of the file was unterminated and
	// did not parse, so it was left out until the writer finishes it.
	HeldBack bool
	Err      error
}

// loaded is one parse of the trace file.
type loaded struct {
	series   []chart.Series
	heldBack bool
}

const (
	defaultAttempts = 5
	defaultDelay    = 50 * time.Millisecond
	defaultSettle   = 100 * time.Millisecond
)

// Datasource loads a single trace file and follows changes to it.
type Datasource struct {
	path     string
	attempts uint
	delay    time.Duration
	settle   time.Duration
}

// NewDatasource returns a datasource for the trace at path. The file does
// not need to exist yet.
func NewDatasource(path string) *Datasource {
	return &Datasource{
		path:     filepath.Clean(path),
		attempts: defaultAttempts,
		delay:    defaultDelay,
		settle:   defaultSettle,
	}
}

// Path returns the watched file.
func (d *Datasource) Path() string {
	return d.path
}

// Load reads and parses the trace. Failures to open or read the file are
// retried a few times to ride over editors that replace files on save.
// Malformed content is retried too, since a writer may not have finished.
func (d *Datasource) Load(ctx context.Context) ([]chart.Series, error) {
	l, err := d.load(ctx, false)
	return l.series, err
}

func (d *Datasource) load(ctx context.Context, live bool) (loaded, error) {
	return retry.DoWithData(func() (loaded, error) {
		return d.read(live)
	},
		retry.Context(ctx),
		retry.Attempts(d.attempts),
		retry.Delay(d.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled)
		}),
	)
}

// read parses the whole file. When live is set and the whole file does not
// parse, the unterminated last line may be a row still being written, so
// the complete lines alone are tried before giving up.
func (d *Datasource) read(live bool) (loaded, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return loaded{}, fmt.Errorf("failed reading trace: %w", err)
	}
	series, err := ParseTrace(bytes.NewReader(data))
	if err == nil {
		return loaded{series: series}, nil
	}
	if live && len(data) > 0 && data[len(data)-1] != '\n' {
		if complete, lineErr := ParseTrace(NewLineReader(bytes.NewReader(data))); lineErr == nil {
			return loaded{series: complete, heldBack: true}, nil
		}
	}
	return loaded{}, fmt.Errorf("%s: %w", d.path, err)
}

// Stream emits a snapshot of the trace immediately and then after every
// change to the file, until ctx is cancelled. Bursts of changes are
// coalesced. A reload whose unterminated last line does not parse yet
// emits the complete lines with HeldBack set; an unterminated line that
// parses is kept. It is suitable as a [stream.Provider].
func (d *Datasource) Stream(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot)
	go func() {
		defer close(out)
		emit := func(l loaded, err error) bool {
			select {
			case out <- Snapshot{Path: d.path, Series: l.series, HeldBack: l.heldBack, Err: err}:
				return true
			case <-ctx.Done():
				return false
			}
		}
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			emit(loaded{}, fmt.Errorf("failed creating file watcher: %w", err))
			<-ctx.Done()
			return
		}
		defer watcher.Close()
		// Watch the directory so that replacing the file keeps us informed.
		if err := watcher.Add(filepath.Dir(d.path)); err != nil {
			emit(loaded{}, fmt.Errorf("failed watching %q: %w", d.path, err))
			<-ctx.Done()
			return
		}
		if !emit(d.load(ctx, false)) {
			return
		}
		changes := stream.Debounce(d.changes(ctx, watcher), d.settle)
		defer func() {
			go func() {
				for range changes {
				}
			}()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					<-ctx.Done()
					return
				}
				if !emit(d.load(ctx, true)) {
					return
				}
			}
		}
	}()
	return out
}

// changes filters watcher events down to those affecting the trace file.
func (d *Datasource) changes(ctx context.Context, watcher *fsnotify.Watcher) <-chan fsnotify.Op {
	out := make(chan fsnotify.Op)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("file watcher error: %v", err)
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != d.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case out <- ev.Op:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
