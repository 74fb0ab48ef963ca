package calltrace

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// traceConfig mirrors the [trace] table of a config file.
type traceConfig struct {
	Trace struct {
		ShowTiming bool   `toml:"show_timing"`
		ShowInput  bool   `toml:"show_input"`
		ShowOutput bool   `toml:"show_output"`
		OutputFile string `toml:"output_file"`
		Color      bool   `toml:"color"`
	} `toml:"trace"`
}

// LoadOptions reads tracer options from the [trace] table of a TOML file.
// Keys absent from the file keep their DefaultOptions value.
//
//	[trace]
//	show_timing = false
//	output_file = "trace.log"
func LoadOptions(path string) (Options, error) {
	var cfg traceConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	opts := DefaultOptions
	if meta.IsDefined("trace", "show_timing") {
		opts.ShowTiming = cfg.Trace.ShowTiming
	}
	if meta.IsDefined("trace", "show_input") {
		opts.ShowInput = cfg.Trace.ShowInput
	}
	if meta.IsDefined("trace", "show_output") {
		opts.ShowOutput = cfg.Trace.ShowOutput
	}
	if meta.IsDefined("trace", "output_file") {
		opts.OutputFile = cfg.Trace.OutputFile
	}
	if meta.IsDefined("trace", "color") {
		opts.Color = cfg.Trace.Color
	}
	return opts, nil
}
