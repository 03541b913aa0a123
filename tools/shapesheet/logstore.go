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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/shapesheet/runlog"
)

const (
	defaultTextLog   = "logs/program_log.txt"
	defaultSQLiteLog = "logs/program_log.db"
)

// legacyLogs are the places where older versions kept the text log.
var legacyLogs = []string{
	"program_log.txt",
	filepath.Join("sub", "program_log.txt"),
}

// logOptions selects the execution log.
type logOptions struct {
	path   string
	format string
}

func (o *logOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.path, "log", os.Getenv("SHAPESHEET_LOG"),
		"execution log `file` (default "+defaultTextLog+" or "+defaultSQLiteLog+")")
	fs.StringVar(&o.format, "log-format", "text", "log format, text or sqlite")
}

func (o *logOptions) open() (runlog.Store, error) {
	switch strings.ToLower(o.format) {
	case "text", "":
		if o.path == "" {
			return runlog.OpenText(defaultTextLog, legacyLogs...)
		}
		return runlog.OpenText(o.path)
	case "sqlite":
		path := o.path
		if path == "" {
			path = defaultSQLiteLog
		}
		return runlog.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown log format %q", o.format)
	}
}

// record appends the current execution to the log.
func (o *logOptions) record(now time.Time) (int, error) {
	store, err := o.open()
	if err != nil {
		return 0, err
	}

	program := filepath.Base(os.Args[0])
	fullPath, err := os.Executable()
	if err != nil {
		fullPath = os.Args[0]
	}
	if abs, err := filepath.Abs(fullPath); err == nil {
		fullPath = abs
	}

	seq, err := store.Append(program, fullPath, now)
	closeErr := store.Close()
	if err != nil {
		return 0, err
	}
	return seq, closeErr
}

func (o *logOptions) readAll() ([]runlog.Entry, error) {
	store, err := o.open()
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.ReadAll()
}
