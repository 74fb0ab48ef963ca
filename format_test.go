package calltrace

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type point struct{ x, y int }

func (p point) Display() string { return fmt.Sprintf("point(%d,%d)", p.x, p.y) }

type id int

func (i id) String() string { return fmt.Sprintf("#%d", int(i)) }

type opaque struct{ a int }

func TestRepr(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{3, "3"},
		{-1.5, "-1.5"},
		{true, "true"},
		{"hi", `"hi"`},
		{point{1, 2}, "point(1,2)"},     // Displayable wins
		{id(9), "#9"},                   // fmt.Stringer next
		{errors.New("oops"), "oops"},    // error message
		{opaque{a: 1}, "<calltrace.opaque>"},
	}
	for _, c := range cases {
		if got := repr(c.in); got != c.want {
			t.Fatalf("repr(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReprPointerish(t *testing.T) {
	v := &opaque{}
	got := repr(v)
	if !strings.HasPrefix(got, "*calltrace.opaque@0x") {
		t.Fatalf("pointer repr = %q", got)
	}

	var nilMap map[string]int
	if got := repr(nilMap); got != "nil" {
		t.Fatalf("nil map repr = %q", got)
	}

	s := []int{1, 2}
	if got := repr(s); !strings.HasPrefix(got, "[]int@0x") {
		t.Fatalf("slice repr = %q", got)
	}
}

func TestFormatArgsMixed(t *testing.T) {
	got := formatArgs([]any{1, "x", Named("k", 2)})
	if want := `1, "x", k=2`; got != want {
		t.Fatalf("formatArgs = %q, want %q", got, want)
	}
	if got := formatArgs(nil); got != "" {
		t.Fatalf("formatArgs(nil) = %q", got)
	}
}

func TestFormatResults(t *testing.T) {
	if got := formatResults(nil); got != "" {
		t.Fatalf("no results: %q", got)
	}
	if got := formatResults([]any{6}); got != "6" {
		t.Fatalf("single result: %q", got)
	}
	if got := formatResults([]any{6, "ok"}); got != `(6, "ok")` {
		t.Fatalf("tuple result: %q", got)
	}
}

func TestKindOf(t *testing.T) {
	if got := kindOf(errors.New("x")); got != "errors.errorString" {
		t.Fatalf("kindOf(errors.New) = %q", got)
	}
	if got := kindOf(&timeoutError{}); got != "calltrace.timeoutError" {
		t.Fatalf("kindOf(*timeoutError) = %q", got)
	}
	if got := kindOf("s"); got != "string" {
		t.Fatalf("kindOf(string) = %q", got)
	}
}

func TestDurationMillisFormatting(t *testing.T) {
	got := fmt.Sprintf("%.2fms", durationMillis(1500*time.Microsecond))
	if got != "1.50ms" {
		t.Fatalf("elapsed formatting = %q", got)
	}
}

func TestIndentArithmetic(t *testing.T) {
	tr := NewWriter(&strings.Builder{}, plain)
	for d := 0; d < 5; d++ {
		line := tr.callLine(d, "f", nil)
		prefix := strings.Repeat("|   ", d)
		if !strings.HasPrefix(line, prefix+"|--> CALL f") {
			t.Fatalf("depth %d: line = %q", d, line)
		}
		if strings.Count(line[:len(prefix)], "|   ") != d {
			t.Fatalf("depth %d: wrong indent count in %q", d, line)
		}
	}
}
