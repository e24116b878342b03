package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/solartime/lmt-go/pkg/lmt"
)

// OffsetOutput is the offset command's result for structured formats.
type OffsetOutput struct {
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Offset    string  `json:"offset" yaml:"offset"`
	Seconds   int     `json:"seconds" yaml:"seconds"`
}

// RunOffset runs the offset command.
func RunOffset(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("offset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, json, yaml")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lmt-calc offset [-format text|json|yaml] <longitude>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if !validFormat(*format) {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return exitCommandError
	}

	longitude, err := parseLongitudeArg(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return exitCommandError
	}

	off, err := lmt.OffsetAtLongitude(longitude)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}

	output := OffsetOutput{
		Longitude: longitude,
		Offset:    off.String(),
		Seconds:   off.Seconds(),
	}

	if *format == "text" {
		fmt.Fprintf(stdout, "%s (%d seconds)\n", output.Offset, output.Seconds)
		return exitSuccess
	}
	writeEncoded(stdout, *format, output)
	return exitSuccess
}
