package calltrace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPaintDisabledByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := NewWriter(buf, plain)
	f := Wrap0(tr, "f", func() int { return 1 })
	f()
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("plain tracer emitted ANSI escapes: %q", buf.String())
	}
}

func TestPaintColorsMarkers(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	buf := &bytes.Buffer{}
	opts := plain
	opts.Color = true
	tr := NewWriter(buf, opts)
	f := Wrap0(tr, "f", func() int { return 1 })
	f()

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("color tracer emitted no ANSI escapes: %q", out)
	}
	// the payload around the markers stays intact
	if !strings.Contains(out, " f") || !strings.Contains(out, "CALL") {
		t.Fatalf("colored line lost its content: %q", out)
	}
}

func TestPaintNeverColorsFileMode(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	opts := plain
	opts.Color = true
	opts.OutputFile = "trace.log"
	tr := NewWriter(&bytes.Buffer{}, opts)
	if got := tr.paint(markerError, "|<-- ERROR"); got != "|<-- ERROR" {
		t.Fatalf("file mode colorized: %q", got)
	}
}

func TestColorUsable(t *testing.T) {
	if ColorUsable(&bytes.Buffer{}) {
		t.Fatalf("buffer reported as terminal")
	}
}
