package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/solartime/lmt-go/pkg/lmt"
)

// ZoneOutput is the zone command's result for structured formats.
type ZoneOutput struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Offset    string  `json:"offset" yaml:"offset"`
	Seconds   int     `json:"seconds" yaml:"seconds"`
	ShortName string  `json:"short_name" yaml:"short_name"`
	Category  string  `json:"category" yaml:"category"`
	Floating  bool    `json:"floating" yaml:"floating"`
	UTC       bool    `json:"utc" yaml:"utc"`
	Olson     bool    `json:"olson" yaml:"olson"`
	DST       bool    `json:"dst" yaml:"dst"`
}

// RunZone runs the zone command.
func RunZone(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zone", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, json, yaml")
	name := fs.String("name", "", "display name for the zone")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lmt-calc zone [-format text|json|yaml] [-name NAME] <longitude>")
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

	zone, err := lmt.New(lmt.Config{Longitude: longitude, Name: *name})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}

	output := buildZoneOutput(zone)
	if *format == "text" {
		printZoneText(stdout, output)
		return exitSuccess
	}
	writeEncoded(stdout, *format, output)
	return exitSuccess
}

func buildZoneOutput(zone *lmt.Zone) ZoneOutput {
	now := time.Now()
	return ZoneOutput{
		Name:      zone.Name(),
		Longitude: zone.Longitude(),
		Offset:    zone.Offset().String(),
		Seconds:   zone.OffsetForInstant(now),
		ShortName: zone.ShortName(now),
		Category:  string(zone.Category()),
		Floating:  zone.IsFloating(),
		UTC:       zone.IsUTC(),
		Olson:     zone.IsOlson(),
		DST:       zone.IsDSTForInstant(now),
	}
}

func printZoneText(w io.Writer, output ZoneOutput) {
	if output.Name != "" {
		fmt.Fprintf(w, "Name:       %s\n", output.Name)
	}
	fmt.Fprintf(w, "Longitude:  %g\n", output.Longitude)
	fmt.Fprintf(w, "Offset:     %s (%d seconds)\n", output.Offset, output.Seconds)
	fmt.Fprintf(w, "Short name: %s\n", output.ShortName)
	fmt.Fprintf(w, "Category:   %s\n", output.Category)
	fmt.Fprintf(w, "Floating:   %t  UTC: %t  Olson: %t  DST: %t\n",
		output.Floating, output.UTC, output.Olson, output.DST)
}
