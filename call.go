package calltrace

import (
	"time"
)

// Call is one frame of instrumentation: Begin logged the CALL line and
// raised the depth, and exactly one of Return, Error or Panic completes
// the frame. Completion is idempotent; later calls on a completed frame
// are no-ops.
//
// The Wrap helpers manage frames with deferred guards; use Begin directly
// only when wrapping is impractical, and make sure every frame completes
// on every exit path:
//
//	c := tr.Begin("parse", calltrace.Named("path", path))
//	node, err := parse(path)
//	if err != nil {
//		c.Error(err)
//		return nil, err
//	}
//	c.Return(node)
type Call struct {
	tracer *Tracer
	name   string
	start  time.Time
	done   bool
}

// Begin opens a traced frame: it prepares the session sinks, logs the
// CALL line at the pre-increment depth, then raises the depth. A
// disabled tracer returns an inert frame.
func (t *Tracer) Begin(name string, args ...any) *Call {
	if !t.Enabled() {
		return &Call{}
	}
	t.enterSession()
	t.log(t.callLine(t.depth, name, args))
	t.depth++
	return &Call{
		tracer: t,
		name:   name,
		start:  time.Now(),
	}
}

// Return completes the frame as a success: depth drops back, the RETURN
// line is logged at the post-decrement depth, and if this was the
// outermost call the session is torn down.
func (c *Call) Return(results ...any) {
	if c.done || c.tracer == nil {
		return
	}
	c.done = true
	t := c.tracer
	t.depth--
	t.log(t.returnLine(t.depth, c.name, results, time.Since(c.start)))
	t.exitSession()
}

// Error completes the frame as a failure. The caller still owns err and
// propagates it unchanged; the frame only records it.
func (c *Call) Error(err error) {
	c.fail(err)
}

// Panic completes the frame for a panic value recovered by the caller,
// who is expected to re-panic with the identical value.
func (c *Call) Panic(r any) {
	c.fail(r)
}

func (c *Call) fail(failure any) {
	if c.done || c.tracer == nil {
		return
	}
	c.done = true
	t := c.tracer
	t.depth--
	t.log(t.errorLine(t.depth, c.name, failure))
	t.exitSession()
}

// invoke runs fn inside one instrumented frame and guarantees the frame
// completes on every exit path: normal return, error return, or panic.
// The error and any panic value propagate to the caller unchanged.
func (t *Tracer) invoke(name string, args []any, fn func() ([]any, error)) ([]any, error) {
	if !t.Enabled() {
		return fn()
	}

	c := t.Begin(name, args...)
	defer func() {
		if r := recover(); r != nil {
			c.Panic(r)
			panic(r)
		}
	}()

	results, err := fn()
	if err != nil {
		c.Error(err)
		return results, err
	}
	c.Return(results...)
	return results, nil
}
