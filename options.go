package calltrace

// Options holds tracer configuration. Fixed at construction; a Tracer
// never changes its options mid-session.
type Options struct {
	// ShowTiming appends an elapsed-time suffix to RETURN lines.
	ShowTiming bool
	// ShowInput includes a parenthesized argument list in CALL lines.
	// When false the CALL line carries no parentheses at all.
	ShowInput bool
	// ShowOutput includes the return value in RETURN lines.
	ShowOutput bool
	// OutputFile, when set, sends trace log lines to this file instead of
	// the console. The file is truncated at the start of every outermost
	// call. In file mode the traced code's own console output is not
	// intercepted and stays unindented.
	OutputFile string
	// Color renders the CALL/RETURN/ERROR markers with ANSI colors.
	// Console mode only; off by default so log bytes stay stable.
	Color bool
}

// DefaultOptions matches the zero-configuration tracer: everything shown,
// console output, no color.
var DefaultOptions = Options{
	ShowTiming: true,
	ShowInput:  true,
	ShowOutput: true,
}
