// Package commands implements the lmt-calc subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Exit codes shared by all commands.
const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDataError    = 2
)

// validFormat reports whether the -format value is supported.
func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	}
	return false
}

// writeEncoded renders v as JSON or YAML to w.
func writeEncoded(w io.Writer, format string, v any) {
	switch format {
	case "json":
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, _ := yaml.Marshal(v)
		fmt.Fprint(w, string(data))
	}
}

// newRegistryLogger builds the slog logger used for -verbose registry
// output. Registration events are emitted at Debug level.
func newRegistryLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// parseLongitudeArg parses the single positional longitude argument.
func parseLongitudeArg(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one longitude argument, got %d", len(args))
	}
	longitude, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid longitude %q", args[0])
	}
	return longitude, nil
}
