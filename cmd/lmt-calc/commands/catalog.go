package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/solartime/lmt-go/pkg/catalog"
	"github.com/solartime/lmt-go/pkg/persistence"
	"github.com/solartime/lmt-go/pkg/timezone"
)

// CatalogOutput is the catalog command's result for structured formats.
type CatalogOutput struct {
	File   string        `json:"file" yaml:"file"`
	Places []PlaceOutput `json:"places" yaml:"places"`
}

// PlaceOutput represents a single catalog place.
type PlaceOutput struct {
	Name      string   `json:"name" yaml:"name"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Offset    string   `json:"offset" yaml:"offset"`
	Aliases   []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// RunCatalog runs the catalog command.
func RunCatalog(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, json, yaml")
	place := fs.String("place", "", "show only the named place")
	register := fs.Bool("register", false, "register all aliases and write a snapshot")
	out := fs.String("out", "", "snapshot file to write with -register (.json or .lmtz)")
	verbose := fs.Bool("verbose", false, "log alias registrations to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lmt-calc catalog [options] <file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if !validFormat(*format) {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return exitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: no catalog file specified")
		fs.Usage()
		return exitCommandError
	}
	if *register && *out == "" {
		fmt.Fprintln(stderr, "Error: -register requires -out")
		return exitCommandError
	}

	c, err := catalog.LoadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}

	places := c.Places()
	if *place != "" {
		p, err := c.Place(*place)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		places = []catalog.Place{p}
	}

	output := CatalogOutput{File: fs.Arg(0)}
	for _, p := range places {
		output.Places = append(output.Places, PlaceOutput{
			Name:      p.Name,
			Longitude: p.Longitude,
			Offset:    p.Offset().String(),
			Aliases:   p.Aliases,
		})
	}

	switch *format {
	case "text":
		for _, p := range output.Places {
			fmt.Fprintf(stdout, "%-20s %10.4f  %s", p.Name, p.Longitude, p.Offset)
			if len(p.Aliases) > 0 {
				fmt.Fprintf(stdout, "  aliases: %v", p.Aliases)
			}
			fmt.Fprintln(stdout)
		}
	default:
		writeEncoded(stdout, *format, output)
	}

	if *register {
		reg := timezone.NewRegistry()
		if *verbose {
			reg.SetLogger(newRegistryLogger(stderr))
		}
		if err := c.RegisterAliases(reg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		if err := persistence.NewStore(*out).Save(reg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		fmt.Fprintf(stdout, "Registered %d aliases, snapshot written to %s\n", reg.Len(), *out)
	}

	return exitSuccess
}
