package calltrace

import (
	"bytes"
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	tr := NewWriter(&bytes.Buffer{}, plain)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != tr {
		t.Fatalf("tracer lost in context round trip")
	}
}

func TestContextFallsBackToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("missing tracer should fall back to Nop")
	}
	if FromContext(nil) != Nop {
		t.Fatalf("nil context should fall back to Nop")
	}
	if FromContext(WithTracer(context.Background(), nil)) != Nop {
		t.Fatalf("nil tracer should be stored as Nop")
	}
}

func TestContextTracerReachableFromCallee(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := NewWriter(buf, plain)
	ctx := WithTracer(context.Background(), tr)

	join := Wrap2(tr, "join", func(a, b string) string {
		FromContext(ctx).Println("joining")
		return a + b
	})
	if got := join("x", "y"); got != "xy" {
		t.Fatalf("join = %q", got)
	}

	want := []string{
		`|--> CALL join("x", "y")`,
		"|   | joining",
		`|<-- RETURN join: "xy"`,
	}
	got := lines(buf)
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
