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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// header is written at the start of a new log file.
var header = "# shapesheet - program execution log\n" +
	"# Seq\tDate\tTime\tProgram\tFullPath\n" +
	"#" + strings.Repeat("=", 80) + "\n"

// TextStore keeps the log in a plain text file, one tab separated line per
// execution.  Lines starting with '#' are comments.
//
// Additional legacy files, written by earlier versions in other places, can
// be given to OpenText.  These are never modified, but their entries are
// included by ReadAll and sequence numbers continue after the largest
// number found in any of the files.
type TextStore struct {
	path   string
	legacy []string

	// legacyMax is the largest sequence number in the legacy files.
	legacyMax int
}

// OpenText opens the log file at path, creating the containing directory
// if needed.  The file itself is created by the first call to Append.
func OpenText(path string, legacy ...string) (*TextStore, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	s := &TextStore{
		path: path,
	}
	for _, name := range legacy {
		if filepath.Clean(name) == filepath.Clean(path) {
			continue
		}
		s.legacy = append(s.legacy, name)

		entries, err := readFile(name)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			s.legacyMax = max(s.legacyMax, e.Seq)
		}
	}
	return s, nil
}

// Path returns the name of the log file.
func (s *TextStore) Path() string {
	return s.path
}

// Append implements the [Store] interface.
//
// The next sequence number is computed from the current contents of the
// file, so that programs which run one after another can share one log.
// The file is not locked; concurrent calls may assign the same number.
func (s *TextStore) Append(program, fullPath string, t time.Time) (int, error) {
	fd, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer fd.Close()

	entries, err := parse(fd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.path, err)
	}
	seq := s.legacyMax
	for _, e := range entries {
		seq = max(seq, e.Seq)
	}
	seq++

	fi, err := fd.Stat()
	if err != nil {
		return 0, err
	}
	var line strings.Builder
	if size := fi.Size(); size == 0 {
		line.WriteString(header)
	} else {
		// don't join the new entry onto an unterminated last line
		last := make([]byte, 1)
		_, err = fd.ReadAt(last, size-1)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", s.path, err)
		}
		if last[0] != '\n' {
			line.WriteByte('\n')
		}
	}
	t = t.Local()
	fmt.Fprintf(&line, "%d\t%s\t%s\t%s\t%s\n",
		seq, t.Format(dateLayout), t.Format(timeLayout), field(program), field(fullPath))

	_, err = fd.WriteString(line.String())
	if err != nil {
		return 0, err
	}
	return seq, fd.Close()
}

// ReadAll implements the [Store] interface.
// Entries which occur in more than one file are reported only once.
func (s *TextStore) ReadAll() ([]Entry, error) {
	type key struct {
		seq     int
		stamp   string
		program string
	}
	seen := make(map[key]bool)

	var res []Entry
	for _, name := range append(slices.Clone(s.legacy), s.path) {
		entries, err := readFile(name)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			k := key{e.Seq, e.Time.Format(time.DateTime), e.Program}
			if seen[k] {
				continue
			}
			seen[k] = true
			res = append(res, e)
		}
	}
	slices.SortStableFunc(res, func(a, b Entry) int {
		return a.Seq - b.Seq
	})
	return res, nil
}

// Close implements the [Store] interface.
func (s *TextStore) Close() error {
	return nil
}

// readFile reads the entries of a log file.  A missing file has no entries.
func readFile(name string) ([]Entry, error) {
	fd, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer fd.Close()

	entries, err := parse(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// parse reads log lines.  Comments and malformed lines are skipped.
func parse(r io.Reader) ([]Entry, error) {
	var res []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(parts) < 4 {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || seq <= 0 {
			continue
		}
		t, err := time.ParseInLocation(time.DateTime, parts[1]+" "+parts[2], time.Local)
		if err != nil {
			continue
		}
		e := Entry{
			Seq:     seq,
			Time:    t,
			Program: parts[3],
		}
		if len(parts) > 4 {
			e.Path = parts[4]
		}
		res = append(res, e)
	}
	return res, scanner.Err()
}

// field removes characters which would break the line structure.
func field(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}
