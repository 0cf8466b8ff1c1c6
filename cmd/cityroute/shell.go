// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/network"
	"github.com/katalvlaran/cityroute/route"
)

var (
	errInputClosed = errors.New("input closed")
	errCityCount   = errors.New("number of cities must be a positive integer")
)

const menu = `
==============================
 CITY ROUTE FINDER MENU
==============================
1. View all cities
2. Find shortest route between two cities
3. Exit
Enter your choice: `

// prompter reads whitespace-separated tokens, printing a prompt before each read.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &prompter{sc: sc, out: out}
}

// next prints prompt (if any) and returns the next token.
func (p *prompter) next(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}

	return p.sc.Text(), nil
}

// runShell runs the interactive session. A nil g is read from the prompt
// first, and a zero speed is asked for.
func runShell(p *prompter, g *core.Graph, speed float64, st styles, logger *log.Logger) int {
	var err error
	if g == nil {
		if g, err = readNetwork(p); err != nil {
			return shellExit(p, st, err)
		}
		logger.Printf("component=cityroute action=read_network cities=%d roads=%d", g.NodeCount(), g.EdgeCount())
	}
	if speed == 0 {
		if speed, err = readSpeed(p); err != nil {
			return shellExit(p, st, err)
		}
	}

	f, err := route.NewFinder(g)
	if err != nil {
		return shellExit(p, st, err)
	}

	var choice, from, to string
	for {
		if choice, err = p.next(menu); err != nil {
			return shellExit(p, st, err)
		}

		switch choice {
		case "1":
			writeCities(p.out, st, f.Graph())

		case "2":
			if from, err = p.next("\nEnter source city: "); err != nil {
				return shellExit(p, st, err)
			}
			if to, err = p.next("Enter destination city: "); err != nil {
				return shellExit(p, st, err)
			}

			res, qerr := query(f, from, to, speed, logger)
			if errors.Is(qerr, route.ErrUnknownNode) {
				fmt.Fprintln(p.out, st.failure.Render("Invalid city name entered!"))
				continue
			}
			writeReport(p.out, st, f.Graph(), res, qerr)

		case "3":
			fmt.Fprintln(p.out, "\nExiting City Route Finder. Thank you!")
			return 0

		default:
			fmt.Fprintln(p.out, st.warning.Render("\nInvalid choice! Please try again."))
		}
	}
}

// shellExit maps a session-ending error to an exit code.
// Running out of input is a normal end of session.
func shellExit(p *prompter, st styles, err error) int {
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(p.out)
		return 0
	}
	fmt.Fprintln(p.out, st.failure.Render("Error: "+err.Error()))

	return 1
}

// readNetwork prompts for the city count, the names and the roads.
//
// Steps:
//  1. Read a positive city count.
//  2. Read that many names; a repeated name is rejected and read again.
//  3. Read "city1 city2 distance" triples until "done". Triples naming an
//     unknown city or carrying a bad distance are skipped with a message.
func readNetwork(p *prompter) (*core.Graph, error) {
	// 1) City count
	tok, err := p.next("Enter number of cities: ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", errCityCount, tok)
	}

	// 2) Names in ID order
	g := core.NewGraph()
	fmt.Fprintln(p.out, "Enter city names:")
	for g.NodeCount() < n {
		if tok, err = p.next(""); err != nil {
			return nil, err
		}
		if _, err = g.AddNode(tok); err != nil {
			fmt.Fprintf(p.out, "City %q already entered, try again.\n", tok)
		}
	}

	// 3) Roads until the terminator
	fmt.Fprintln(p.out, "\nEnter roads in format: city1 city2 distance")
	fmt.Fprintf(p.out, "Type '%s' to finish entering roads.\n", network.RoadTerminator)
	fields := make([]string, 3)
	var r network.Road
	for {
		if fields[0], err = p.next(""); err != nil {
			return nil, err
		}
		if fields[0] == network.RoadTerminator {
			break
		}
		if fields[1], err = p.next(""); err != nil {
			return nil, err
		}
		if fields[2], err = p.next(""); err != nil {
			return nil, err
		}

		if r, err = network.ParseRoadFields(fields); err != nil {
			fmt.Fprintln(p.out, "Invalid distance, try again.")
			continue
		}
		if err = g.AddEdgeByName(r.From, r.To, r.Distance); err != nil {
			if errors.Is(err, core.ErrNodeNotFound) {
				fmt.Fprintln(p.out, "Invalid city names, try again.")
			} else {
				fmt.Fprintf(p.out, "Invalid road, try again: %v\n", err)
			}
		}
	}

	return g, nil
}

// readSpeed prompts until a number is entered.
func readSpeed(p *prompter) (float64, error) {
	prompt := "\nEnter average travel speed (km/hr): "
	for {
		tok, err := p.next(prompt)
		if err != nil {
			return 0, err
		}
		speed, err := strconv.ParseFloat(tok, 64)
		if err == nil {
			return speed, nil
		}
		prompt = "Invalid speed, try again: "
	}
}
