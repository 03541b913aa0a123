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

package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the log in an SQLite database.
type SQLiteStore struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens (or creates) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	s := &SQLiteStore{conn: conn, path: path}
	err = s.migrate()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	// AUTOINCREMENT guarantees that sequence numbers are never reused.
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS executions (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL,
		program TEXT NOT NULL,
		full_path TEXT NOT NULL DEFAULT ''
	)`)
	return err
}

// Path returns the name of the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Append implements the [Store] interface.
func (s *SQLiteStore) Append(program, fullPath string, t time.Time) (int, error) {
	res, err := s.conn.Exec(
		`INSERT INTO executions (ts, program, full_path) VALUES (?, ?, ?)`,
		t.Format(time.RFC3339Nano), program, fullPath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.path, err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.path, err)
	}
	return int(seq), nil
}

// ReadAll implements the [Store] interface.
func (s *SQLiteStore) ReadAll() ([]Entry, error) {
	rows, err := s.conn.Query(`SELECT seq, ts, program, full_path FROM executions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	defer rows.Close()

	var res []Entry
	for rows.Next() {
		var e Entry
		var ts string
		err = rows.Scan(&e.Seq, &ts, &e.Program, &e.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.path, err)
		}
		e.Time, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", s.path, e.Seq, err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// Close implements the [Store] interface.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
