package backend

import (
	"bufio"
	"io"
)

// LineReader hands out complete newline-terminated lines only. An
// unterminated tail is held back and reported as io.EOF until the rest of
// its line arrives, so a CSV reader never sees half a row of a file that is
// still being written.
type LineReader struct {
	r *bufio.Reader
	// partial is the unterminated tail read so far.
	partial []byte
	// pending is the unread remainder of a complete line.
	pending []byte
}

var _ io.Reader = (*LineReader)(nil)

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		r: bufio.NewReader(r),
	}
}

func (l *LineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		data, err := l.r.ReadBytes('\n')
		l.partial = append(l.partial, data...)
		if err != nil {
			return 0, err
		}
		l.pending, l.partial = l.partial, nil
	}
	n := copy(b, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
