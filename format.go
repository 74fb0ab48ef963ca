package calltrace

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Displayable lets argument and result types control their own trace
// representation. It takes precedence over fmt.Stringer and error.
type Displayable interface {
	Display() string
}

// NamedArg renders as "name=value" in CALL lines, the analog of a keyword
// argument. Build one with Named.
type NamedArg struct {
	Name  string
	Value any
}

// Named tags an argument with a name for CALL-line formatting.
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// repr builds the trace representation of a single value.
//
// Order of preference: Displayable, fmt.Stringer, error, then a
// kind-based rendering. Values with no natural text form fall back to
// their type name in angle brackets.
func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Displayable:
		return x.Display()
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case string:
		return strconv.Quote(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v)
	case reflect.String:
		// named string types
		return strconv.Quote(rv.String())
	case reflect.Pointer, reflect.UnsafePointer,
		reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "nil"
		}
		return fmt.Sprintf("%s@%p", rv.Type(), v)
	default:
		return fmt.Sprintf("<%s>", rv.Type())
	}
}

// formatArgs joins argument representations with ", "; NamedArg entries
// render as key=value pairs.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		if na, ok := a.(NamedArg); ok {
			parts[i] = na.Name + "=" + repr(na.Value)
		} else {
			parts[i] = repr(a)
		}
	}
	return strings.Join(parts, ", ")
}

// formatResults builds the RETURN output segment for zero or more
// results: empty for none, the bare representation for one, a
// parenthesized tuple for several.
func formatResults(results []any) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return repr(results[0])
	default:
		parts := make([]string, len(results))
		for i, r := range results {
			parts[i] = repr(r)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// kindOf names the dynamic type of an error or panic value, pointer
// receivers dereferenced, the analog of an exception class name.
func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// failureMessage extracts the message of an error or panic value.
func failureMessage(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// callLine builds a CALL line at the given depth.
func (t *Tracer) callLine(depth int, name string, args []any) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(t.paint(markerCall, "|--> CALL"))
	sb.WriteString(" ")
	sb.WriteString(name)
	if t.opts.ShowInput {
		sb.WriteString("(")
		sb.WriteString(formatArgs(args))
		sb.WriteString(")")
	}
	return sb.String()
}

// returnLine builds a RETURN line at the given depth.
func (t *Tracer) returnLine(depth int, name string, results []any, elapsed time.Duration) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(t.paint(markerReturn, "|<-- RETURN"))
	sb.WriteString(" ")
	sb.WriteString(name)
	if t.opts.ShowOutput {
		if out := formatResults(results); out != "" {
			sb.WriteString(": ")
			sb.WriteString(out)
		}
	}
	if t.opts.ShowTiming {
		sb.WriteString(fmt.Sprintf(" [Time: %.2fms]", durationMillis(elapsed)))
	}
	return sb.String()
}

// errorLine builds an ERROR line at the given depth.
func (t *Tracer) errorLine(depth int, name string, failure any) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(t.paint(markerError, "|<-- ERROR"))
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(kindOf(failure))
	sb.WriteString(": ")
	sb.WriteString(failureMessage(failure))
	return sb.String()
}
