// SPDX-License-Identifier: MIT

// Command cityroute finds every shortest road route between two cities.
//
// With -from and -to it answers one query and exits; otherwise it opens the
// interactive menu. The network comes from -network FILE (YAML) or is typed
// in at the prompt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/network"
	"github.com/katalvlaran/cityroute/route"
)

var version = "dev"

// config holds all CLI configuration parsed from flags.
type config struct {
	networkFile string
	from        string
	to          string
	speed       float64
	verbose     bool
	showVersion bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if cfg.showVersion {
		fmt.Printf("cityroute %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr))
}

// parseFlags parses args into a config. Flag errors are reported on stderr.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("cityroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.networkFile, "network", "", "YAML road network file (default: enter interactively)")
	fs.StringVar(&cfg.from, "from", "", "Source city for a one-shot query")
	fs.StringVar(&cfg.to, "to", "", "Destination city for a one-shot query")
	fs.Float64Var(&cfg.speed, "speed", 0, "Average travel speed in km/hr (default: network speed)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log loading and query details to stderr")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected argument %q\n", fs.Arg(0))
		return cfg, errors.New("unexpected arguments")
	}
	if (cfg.from == "") != (cfg.to == "") {
		fmt.Fprintln(stderr, "error: -from and -to must be given together")
		return cfg, errors.New("incomplete query")
	}
	if cfg.from != "" && cfg.networkFile == "" {
		fmt.Fprintln(stderr, "error: a one-shot query needs -network")
		return cfg, errors.New("missing network")
	}

	return cfg, nil
}

// run dispatches to one-shot or interactive mode.
// Returns an exit code: 0 for success, 1 for failure.
func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if cfg.verbose {
		logger.SetOutput(stderr)
	}
	st := newStyles(stdout)

	if cfg.networkFile == "" {
		return runShell(newPrompter(stdin, stdout), nil, cfg.speed, st, logger)
	}

	def, err := network.LoadFile(cfg.networkFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	g, err := def.Build()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Printf("component=cityroute action=load_network path=%s name=%s cities=%d roads=%d",
		cfg.networkFile, def.Name, g.NodeCount(), g.EdgeCount())

	speed := cfg.speed
	if speed == 0 {
		speed = def.Speed
	}

	if cfg.from == "" {
		return runShell(newPrompter(stdin, stdout), g, speed, st, logger)
	}

	return runQuery(g, cfg.from, cfg.to, speed, stdout, stderr, st, logger)
}

// runQuery answers a single query by city name.
func runQuery(g *core.Graph, from, to string, speed float64, stdout, stderr io.Writer, st styles, logger *log.Logger) int {
	f, err := route.NewFinder(g)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	res, err := query(f, from, to, speed, logger)
	if errors.Is(err, route.ErrUnknownNode) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	writeReport(stdout, st, f.Graph(), res, err)

	return 0
}
