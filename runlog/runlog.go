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

// Package runlog records the executions of a program.
//
// Every execution is stored as an [Entry] with a sequence number.  Sequence
// numbers start at 1 and increase by one with every appended entry, in the
// order in which entries are appended.
//
// Two stores are available: [TextStore] keeps a human-readable, tab
// separated text file and [SQLiteStore] keeps the entries in an SQLite
// database.
package runlog

import (
	"time"
)

// Entry is one recorded execution.
type Entry struct {
	Seq     int
	Time    time.Time
	Program string
	Path    string
}

// Store is an append-only record of program executions.
type Store interface {
	// Append records an execution and returns its sequence number.
	Append(program, fullPath string, t time.Time) (int, error)

	// ReadAll returns all entries, ordered by sequence number.
	ReadAll() ([]Entry, error)

	Close() error
}
