package calltrace

import (
	"fmt"
	"io"
	"os"
)

// Tracer owns the call depth, the configuration and the output sinks for
// one logical call stack. One Tracer can wrap any number of functions;
// all of them share its depth, so mutually recursive and nested traced
// calls indent correctly.
//
// A Tracer is idle while depth is 0. The first call made through it
// starts a session: in console mode the IndentWriter becomes the active
// sink, in file mode the output file is opened (truncating any previous
// content). The session ends, restoring the original sink and closing
// the file, when depth returns to 0, on the error path too.
//
// Depth accounting and sink installation are not synchronized; see the
// package documentation for the single-stack restriction.
type Tracer struct {
	opts        Options
	depth       int
	out         io.Writer // original sink, captured once at construction
	cur         io.Writer // active sink returned by Output
	interceptor *IndentWriter
	file        *os.File // open only while a file-mode session is active
}

// New creates a Tracer writing to os.Stdout.
func New(opts Options) *Tracer {
	return NewWriter(os.Stdout, opts)
}

// NewWriter creates a Tracer with w as the console sink. The reference is
// captured once; it is both the IndentWriter's delegate and the sink
// restored at session end.
func NewWriter(w io.Writer, opts Options) *Tracer {
	t := &Tracer{
		opts: opts,
		out:  w,
		cur:  w,
	}
	t.interceptor = newIndentWriter(t, w)
	return t
}

// Nop is an inert tracer: calls made through it run the target with no
// logging and no bookkeeping. FromContext falls back to it.
var Nop = &Tracer{}

// Enabled reports whether this tracer produces output.
func (t *Tracer) Enabled() bool {
	return t != nil && t.out != nil
}

// Depth returns the count of currently open traced calls.
func (t *Tracer) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Options returns the tracer's fixed configuration.
func (t *Tracer) Options() Options {
	return t.opts
}

// Output returns the active sink for the traced code's own output: the
// IndentWriter during a console-mode session, the original sink
// otherwise. Traced code should print through this (or Printf/Println)
// to have its output folded into the indented block structure.
func (t *Tracer) Output() io.Writer {
	if !t.Enabled() || t.cur == nil {
		return io.Discard
	}
	return t.cur
}

// Printf writes formatted output through the active sink.
func (t *Tracer) Printf(format string, args ...any) {
	fmt.Fprintf(t.Output(), format, args...)
}

// Println writes output plus a newline through the active sink.
func (t *Tracer) Println(args ...any) {
	fmt.Fprintln(t.Output(), args...)
}

// enterSession prepares the sinks for a call. Only the outermost call of
// a session does real work: opening the trace file in file mode, or
// installing the IndentWriter in console mode. Nested calls detect the
// prepared state and skip it.
//
// A failure to open the configured trace file panics: the wrapped
// function's signature has no slot to return the tracer's own resource
// error through.
func (t *Tracer) enterSession() {
	if t.opts.OutputFile != "" {
		if t.file == nil {
			f, err := os.Create(t.opts.OutputFile)
			if err != nil {
				panic(fmt.Errorf("calltrace: open trace file: %w", err))
			}
			t.file = f
		}
		return
	}
	if t.cur != io.Writer(t.interceptor) {
		t.cur = t.interceptor
	}
}

// exitSession tears a session down once depth has returned to 0: the
// original sink comes back and an open trace file is closed exactly
// once. Runs unconditionally after every completed call.
func (t *Tracer) exitSession() {
	if t.depth != 0 {
		return
	}
	t.cur = t.out
	if t.file != nil {
		_ = t.file.Close()
		t.file = nil
	}
}

// log appends line plus a newline to exactly one destination: the open
// trace file, or the original console sink. Never the IndentWriter:
// log lines carry their own indentation and must not pick up a second
// prefix. Each write is flushed immediately; write failures are ignored
// so tracing can never alter the traced call's outcome.
func (t *Tracer) log(line string) {
	if t.file != nil {
		// os.File writes are unbuffered, so the line is durable against
		// a process crash as soon as WriteString returns.
		_, _ = t.file.WriteString(line + "\n")
		return
	}
	_, _ = io.WriteString(t.out, line+"\n")
	if flusher, ok := t.out.(interface{ Flush() error }); ok {
		_ = flusher.Flush()
	}
}
