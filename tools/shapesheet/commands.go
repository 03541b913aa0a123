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

package main

import (
	"fmt"
	"io"

	"seehuhn.de/go/shapesheet/inspect"
	"seehuhn.de/go/shapesheet/runlog"
)

func showLog(args []string, _ io.Reader, stdout io.Writer) error {
	var opt logOptions
	fs := newFlagSet("log", "", "show the execution log")
	opt.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := opt.readAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = fmt.Fprintln(stdout, "no executions recorded")
		return err
	}
	return runlog.WriteTable(stdout, entries)
}

func showStats(args []string, _ io.Reader, stdout io.Writer) error {
	var opt logOptions
	fs := newFlagSet("stats", "", "show usage statistics")
	opt.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := opt.readAll()
	if err != nil {
		return err
	}
	return runlog.WriteStats(stdout, runlog.Summarize(entries))
}

func inspectFiles(args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("inspect", "<file.pdf>...", "count the shapes in PDF files")
	verbose := fs.Bool("v", false, "list the shapes on every page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no input files given")
	}

	for _, fname := range fs.Args() {
		rep, err := inspect.File(fname)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %q, %d pages, %d shapes\n",
			fname, rep.Title, len(rep.Pages), rep.Shapes())
		if !*verbose {
			continue
		}
		for i, page := range rep.Pages {
			fmt.Fprintf(stdout, "  page %d: %d shapes\n", i+1, page.Shapes)
		}
	}
	return nil
}
