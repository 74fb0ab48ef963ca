package calltrace

import (
	"bytes"
	"io"
	"strings"
)

const (
	// indentUnit is one level of call-depth indentation.
	indentUnit = "|   "
	// bodyMarker prefixes output the traced code itself prints.
	bodyMarker = "| "
)

// IndentWriter wraps the original sink and injects an indentation prefix
// before each line written through it. The prefix is emitted lazily,
// immediately before the first byte of a line, so a line that never
// receives content is never indented.
//
// The writer keeps no buffer beyond a single line-start flag, which
// persists across writes: output may arrive in arbitrary fragments,
// including one byte at a time or spanning several lines per call.
type IndentWriter struct {
	tracer      *Tracer
	out         io.Writer
	atLineStart bool
}

// newIndentWriter creates a writer that indents by the tracer's current
// depth and forwards to out.
func newIndentWriter(t *Tracer, out io.Writer) *IndentWriter {
	return &IndentWriter{
		tracer:      t,
		out:         out,
		atLineStart: true,
	}
}

// prefix builds the indentation for one line at the current depth.
func (w *IndentWriter) prefix() string {
	return strings.Repeat(indentUnit, w.tracer.Depth()) + bodyMarker
}

// Write forwards p to the underlying sink, inserting the indentation
// prefix at the start of each line. The returned count covers bytes of p
// only, never prefix bytes.
func (w *IndentWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	written := 0
	for len(p) > 0 {
		if w.atLineStart {
			if _, err := io.WriteString(w.out, w.prefix()); err != nil {
				return written, err
			}
			w.atLineStart = false
		}

		// Forward up to and including the next newline in one chunk;
		// the indentation decision is per line, not per byte.
		chunk := p
		newline := false
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
			newline = true
		}

		n, err := w.out.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		if newline {
			w.atLineStart = true
		}
		p = p[len(chunk):]
	}
	return written, nil
}

// Flush delegates to the underlying sink when it supports flushing.
func (w *IndentWriter) Flush() error {
	if flusher, ok := w.out.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}
