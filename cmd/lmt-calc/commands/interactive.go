package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/solartime/lmt-go/pkg/lmt"
	"github.com/solartime/lmt-go/pkg/timezone"
)

// session holds the state of one interactive run: a single current zone
// and an in-process alias registry.
type session struct {
	zone *lmt.Zone
	reg  *timezone.Registry
	out  io.Writer
}

// RunInteractive runs the interactive command.
func RunInteractive(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	fs.SetOutput(stderr)
	start := fs.Float64("longitude", 0, "starting longitude")
	verbose := fs.Bool("verbose", false, "log alias registrations to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lmt-calc interactive [-longitude DEG]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	zone, err := lmt.New(lmt.Config{Longitude: *start})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lmt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	reg := timezone.NewRegistry()
	if *verbose {
		reg.SetLogger(newRegistryLogger(stderr))
	}

	s := &session{
		zone: zone,
		reg:  reg,
		out:  stdout,
	}
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(stdout, "Exiting...")
			return exitSuccess
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		cmdArgs := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "zone", "z":
			printZoneText(s.out, buildZoneOutput(s.zone))

		case "offset", "o":
			s.cmdOffset(cmdArgs)

		case "move", "m":
			s.cmdMove(cmdArgs)

		case "name", "n":
			s.cmdName(cmdArgs)

		case "alias", "a":
			s.cmdAlias(cmdArgs)

		case "aliases":
			s.cmdAliases()

		case "exit", "quit", "q":
			fmt.Fprintln(stdout, "Exiting...")
			return exitSuccess

		default:
			fmt.Fprintf(s.out, "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  zone             Show the current zone
  offset [DEG]     Show the current offset, or compute one for DEG
  move DEG         Move the zone to a new longitude
  name [NAME]      Show or set the zone's name
  alias [NAME]     Register the current offset under NAME (default LMT)
  aliases          List registered aliases
  help             Show this help
  exit             Leave the session`)
}

func (s *session) cmdOffset(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "%s (%d seconds)\n", s.zone.Offset(), s.zone.Offset().Seconds())
		return
	}

	longitude, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid longitude: %s\n", args[0])
		return
	}
	off, err := lmt.OffsetAtLongitude(longitude)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s (%d seconds)\n", off, off.Seconds())
}

func (s *session) cmdMove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: move DEG")
		return
	}

	longitude, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid longitude: %s\n", args[0])
		return
	}
	if _, err := s.zone.SetLongitude(longitude); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if longitude == 0 {
		// The mutator treats 0 as a read; only construction can set it.
		fmt.Fprintln(s.out, "Longitude 0 cannot be set after construction; zone unchanged")
	}
	fmt.Fprintf(s.out, "Longitude %g, offset %s\n", s.zone.Longitude(), s.zone.Offset())
}

func (s *session) cmdName(args []string) {
	if len(args) == 0 {
		if s.zone.Name() == "" {
			fmt.Fprintln(s.out, "(no name set)")
			return
		}
		fmt.Fprintln(s.out, s.zone.Name())
		return
	}
	fmt.Fprintln(s.out, s.zone.SetName(strings.Join(args, " ")))
}

func (s *session) cmdAlias(args []string) {
	alias := ""
	if len(args) > 0 {
		alias = args[0]
	}
	if err := s.zone.MakeAlias(s.reg, alias); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if alias == "" {
		alias = "LMT"
	}
	off, _ := s.reg.Lookup(alias)
	fmt.Fprintf(s.out, "Registered %s -> %s\n", alias, off)
}

func (s *session) cmdAliases() {
	names := s.reg.Names()
	if len(names) == 0 {
		fmt.Fprintln(s.out, "(no aliases registered)")
		return
	}
	for _, name := range names {
		off, _ := s.reg.Lookup(name)
		fmt.Fprintf(s.out, "%-20s %s\n", name, off)
	}
}
