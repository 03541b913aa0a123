// seehuhn.de/go/shapesheet - PDF sheets with randomly placed shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Shapesheet creates PDF files with randomly placed geometric shapes.
//
// Every run of the generate command writes several versions of the same
// sheet, each with its own random arrangement, and records the run in an
// execution log.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/shapesheet/tools/internal/buildinfo"
)

const toolName = "shapesheet"

// command is one sub-command of the tool.
type command struct {
	name  string
	usage string
	run   func(args []string, stdin io.Reader, stdout io.Writer) error
}

var commands = []*command{
	{"generate", "write randomized PDF versions (default command)", generate},
	{"log", "show the execution log, newest entry first", showLog},
	{"stats", "show usage statistics from the execution log", showStats},
	{"inspect", "count the shapes in PDF files", inspectFiles},
	{"version", "print the version and exit", printVersion},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(toolName + ": ")

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := commands[0]
	if len(args) > 0 {
		if args[0] == "help" || args[0] == "-h" || args[0] == "-help" {
			usage(os.Stderr)
			return flag.ErrHelp
		}
		idx := slices.IndexFunc(commands, func(c *command) bool {
			return c.name == args[0]
		})
		if idx >= 0 {
			cmd = commands[idx]
			args = args[1:]
		}
	}
	return cmd.run(args, stdin, stdout)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "%s - PDF sheets with randomly placed shapes\n", toolName)
	fmt.Fprintf(w, "%s\n\n", buildinfo.Short(toolName))
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [command] [options] [arguments]\n\n", toolName)
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nUse \"%s <command> -h\" for the options of a command.\n", toolName)
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s -n 3 -shape circle -count 10 test\n", toolName)
	fmt.Fprintf(w, "  %s generate -combined -n 5 -shape hexagon quiz\n", toolName)
	fmt.Fprintf(w, "  %s stats\n", toolName)
}

// newFlagSet returns a flag set for the named sub-command.
func newFlagSet(name, args, descr string) *flag.FlagSet {
	fs := flag.NewFlagSet(toolName+" "+name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s %s - %s\n\n", toolName, name, descr)
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s %s [options] %s\n\n", toolName, name, args)
		var hasFlags bool
		fs.VisitAll(func(*flag.Flag) { hasFlags = true })
		if hasFlags {
			fmt.Fprintf(out, "Options:\n")
			fs.PrintDefaults()
		}
	}
	return fs
}

func printVersion(args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("version", "", "print the version")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout, buildinfo.Short(toolName))
	return err
}

// envDefault returns the value of the environment variable key, or def if
// the variable is unset or empty.
func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
