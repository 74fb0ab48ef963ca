package calltrace

import (
	"reflect"
	"runtime"
	"strings"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Wrap instruments an arbitrary function, preserving its calling
// convention exactly: the returned value has the same dynamic type as fn
// and can be used anywhere fn could. The traced name is derived from the
// function's symbol.
//
// A trailing error result is treated as the failure channel: when it is
// non-nil the frame logs an ERROR line instead of RETURN, and the
// identical error value is returned to the caller. A panic in fn is
// logged the same way and then re-panicked unchanged.
//
// For statically typed call sites prefer the generic Wrap0/Wrap1/...
// helpers, which avoid reflection.
func (t *Tracer) Wrap(fn any) any {
	return t.WrapNamed(funcName(fn), fn)
}

// WrapNamed is Wrap with an explicit trace name.
func (t *Tracer) WrapNamed(name string, fn any) any {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic("calltrace: Wrap requires a function")
	}
	ft := fv.Type()

	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errType

	return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		args := displayArgs(ft, in)

		var out []reflect.Value
		_, _ = t.invoke(name, args, func() ([]any, error) {
			if ft.IsVariadic() {
				out = fv.CallSlice(in)
			} else {
				out = fv.Call(in)
			}

			n := len(out)
			var err error
			if returnsErr {
				n--
				if e := out[n].Interface(); e != nil {
					err = e.(error)
				}
			}
			results := make([]any, 0, n)
			for i := 0; i < n; i++ {
				results = append(results, out[i].Interface())
			}
			return results, err
		})
		return out
	}).Interface()
}

// displayArgs converts the incoming reflect values for CALL-line
// formatting, flattening the variadic tail into individual arguments.
func displayArgs(ft reflect.Type, in []reflect.Value) []any {
	args := make([]any, 0, len(in))
	for i, v := range in {
		if ft.IsVariadic() && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}

// funcName resolves a short trace name for fn from its symbol:
// import path and receiver qualifiers are trimmed, so
// "calltrace/internal.(*T).run-fm" becomes "run".
func funcName(fn any) string {
	fv := reflect.ValueOf(fn)
	pc := fv.Pointer()
	if pc == 0 {
		return "<anonymous>"
	}
	rf := runtime.FuncForPC(pc)
	if rf == nil {
		return "<anonymous>"
	}

	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" {
		return "<anonymous>"
	}
	return name
}
