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
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/exp/maps"
)

// ProgramCount gives the number of recorded executions of one program.
type ProgramCount struct {
	Program string
	Count   int
}

// Stats summarizes a list of log entries.
type Stats struct {
	Total int

	// Newest and Oldest are the entries with the largest and smallest
	// sequence number.  They are only valid if Total > 0.
	Newest Entry
	Oldest Entry

	// Top lists the most frequently executed programs, most frequent first.
	Top []ProgramCount
}

// TopPrograms is the maximal length of [Stats.Top].
const TopPrograms = 5

// Summarize computes usage statistics for the given entries.
func Summarize(entries []Entry) *Stats {
	s := &Stats{Total: len(entries)}
	if len(entries) == 0 {
		return s
	}

	s.Newest = entries[0]
	s.Oldest = entries[0]
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Seq > s.Newest.Seq {
			s.Newest = e
		}
		if e.Seq < s.Oldest.Seq {
			s.Oldest = e
		}
		counts[e.Program]++
	}

	names := maps.Keys(counts)
	slices.Sort(names)
	for _, name := range names {
		s.Top = append(s.Top, ProgramCount{Program: name, Count: counts[name]})
	}
	slices.SortStableFunc(s.Top, func(a, b ProgramCount) int {
		return b.Count - a.Count
	})
	if len(s.Top) > TopPrograms {
		s.Top = s.Top[:TopPrograms]
	}
	return s
}

// WriteTable prints the entries as a table, newest entry first.
func WriteTable(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return b.Seq - a.Seq
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tTime\tProgram\t")
	for _, e := range sorted {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			e.Seq, e.Time.Format(dateLayout), e.Time.Format(timeLayout), e.Program)
	}
	err := tw.Flush()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\ntotal executions: %d\n", len(entries))
	return err
}

// WriteStats prints the statistics in human-readable form.
func WriteStats(w io.Writer, s *Stats) error {
	if s.Total == 0 {
		_, err := fmt.Fprintln(w, "no executions recorded")
		return err
	}
	fmt.Fprintf(w, "total executions: %d\n", s.Total)
	fmt.Fprintf(w, "most recent:      %s\n", s.Newest.Time.Format(time.DateTime))
	fmt.Fprintf(w, "oldest entry:     %s\n", s.Oldest.Time.Format(time.DateTime))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "most executed programs:")
	for _, pc := range s.Top {
		_, err := fmt.Fprintf(w, "  %s: %d\n", pc.Program, pc.Count)
		if err != nil {
			return err
		}
	}
	return nil
}
