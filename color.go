package calltrace

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// marker selects the color style for a log-line marker.
type marker uint8

const (
	markerCall marker = iota
	markerReturn
	markerError
)

var (
	callColor   = color.New(color.FgGreen)
	returnColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// paint colorizes a marker token when color is enabled for this tracer.
// File mode never colorizes: the log file stays plain text.
func (t *Tracer) paint(m marker, s string) string {
	if !t.opts.Color || t.opts.OutputFile != "" {
		return s
	}
	switch m {
	case markerCall:
		return callColor.Sprint(s)
	case markerReturn:
		return returnColor.Sprint(s)
	case markerError:
		return errorColor.Sprint(s)
	default:
		return s
	}
}

// ColorUsable reports whether w is a terminal that can render ANSI
// colors. Use it to decide Options.Color for a tracer writing to w.
func ColorUsable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
