// Package calltrace instruments function calls with nested, visually
// indented trace logging.
//
// Every invocation made through a Tracer produces a CALL line on entry and
// a RETURN or ERROR line on exit, indented by the current call depth.
// Output the traced code prints through the tracer is folded into the same
// indented block structure, so the log reads as a tree of the call stack.
//
// # Usage
//
// Construct a Tracer once and wrap the functions to trace:
//
//	tr := calltrace.New(calltrace.DefaultOptions)
//	double := calltrace.Wrap1(tr, "double", func(x int) int { return x * 2 })
//	double(3)
//
// which logs:
//
//	|--> CALL double(3)
//	|<-- RETURN double: 6 [Time: 0.01ms]
//
// # Architecture
//
// The package has three cooperating parts:
//
//   - Tracer: owns the call depth, the configuration and the active output
//     sink; installs and restores sinks around the outermost call.
//   - IndentWriter: wraps the original sink and injects a depth-proportional
//     "|   " prefix before each line the traced code prints.
//   - Call: one frame of instrumentation (Begin/Return/Error); the Wrap
//     helpers build on it and add the deferred guards.
//
// Trace log lines never pass through the IndentWriter: they carry their own
// computed indentation and go straight to the original sink, or to the
// configured output file.
//
// # Sinks
//
// Go has no swappable process-wide stdout, so the traced code writes
// through the tracer instead: Output returns the active sink (the
// IndentWriter while a console-mode session is running, the original sink
// otherwise) and Printf/Println are shorthands for writing to it. When an
// output file is configured, trace lines go only to the file and the
// console sink is left untouched.
//
// # Concurrency
//
// A Tracer models one logical call stack. Depth accounting and sink
// installation are deliberately unsynchronized; tracing calls from multiple
// goroutines through one Tracer corrupts both. Use one Tracer per
// goroutine if concurrent tracing is needed.
package calltrace
