package calltrace

// Statically typed wrapper constructors for the common function shapes.
// They carry no reflection: each returned closure funnels the call
// through one instrumented frame. For other shapes use Tracer.Wrap.

// Wrap0 instruments a nullary function.
func Wrap0[R any](t *Tracer, name string, fn func() R) func() R {
	return func() R {
		var out R
		_, _ = t.invoke(name, nil, func() ([]any, error) {
			out = fn()
			return []any{out}, nil
		})
		return out
	}
}

// Wrap1 instruments a one-argument function.
func Wrap1[A, R any](t *Tracer, name string, fn func(A) R) func(A) R {
	return func(a A) R {
		var out R
		_, _ = t.invoke(name, []any{a}, func() ([]any, error) {
			out = fn(a)
			return []any{out}, nil
		})
		return out
	}
}

// Wrap2 instruments a two-argument function.
func Wrap2[A, B, R any](t *Tracer, name string, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		var out R
		_, _ = t.invoke(name, []any{a, b}, func() ([]any, error) {
			out = fn(a, b)
			return []any{out}, nil
		})
		return out
	}
}

// WrapErr0 instruments a nullary function with an error result. A
// non-nil error logs an ERROR line and is returned unchanged.
func WrapErr0[R any](t *Tracer, name string, fn func() (R, error)) func() (R, error) {
	return func() (R, error) {
		var out R
		var err error
		_, _ = t.invoke(name, nil, func() ([]any, error) {
			out, err = fn()
			if err != nil {
				return nil, err
			}
			return []any{out}, nil
		})
		return out, err
	}
}

// WrapErr1 instruments a one-argument function with an error result.
func WrapErr1[A, R any](t *Tracer, name string, fn func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		var out R
		var err error
		_, _ = t.invoke(name, []any{a}, func() ([]any, error) {
			out, err = fn(a)
			if err != nil {
				return nil, err
			}
			return []any{out}, nil
		})
		return out, err
	}
}

// WrapErr2 instruments a two-argument function with an error result.
func WrapErr2[A, B, R any](t *Tracer, name string, fn func(A, B) (R, error)) func(A, B) (R, error) {
	return func(a A, b B) (R, error) {
		var out R
		var err error
		_, _ = t.invoke(name, []any{a, b}, func() ([]any, error) {
			out, err = fn(a, b)
			if err != nil {
				return nil, err
			}
			return []any{out}, nil
		})
		return out, err
	}
}
