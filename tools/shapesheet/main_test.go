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
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	logFile := filepath.Join(dir, "log.txt")

	for range 2 {
		var out strings.Builder
		args := []string{
			"-o", outDir, "-log", logFile,
			"-n", "2", "-shape", "triangle", "-count", "4", "-seed", "7",
			"test",
		}
		err := run(args, strings.NewReader(""), &out)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			filepath.Join(outDir, "test_Version_1.pdf"),
			filepath.Join(outDir, "test_Version_2.pdf"),
		}
		got := strings.Fields(out.String())
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("paths mismatch (-want +got):\n%s", d)
		}
	}

	var out strings.Builder
	err := run([]string{"stats", "-log", logFile}, nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "total executions: 2") {
		t.Errorf("unexpected stats output:\n%s", out.String())
	}

	out.Reset()
	err = run([]string{"inspect", filepath.Join(outDir, "test_Version_2.pdf")}, nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 pages, 4 shapes") {
		t.Errorf("unexpected inspect output:\n%s", out.String())
	}
}

func TestGenerateNoName(t *testing.T) {
	dir := t.TempDir()
	var out strings.Builder
	args := []string{"-o", dir, "-log", filepath.Join(dir, "log.txt")}
	err := run(append([]string{"generate"}, args...), strings.NewReader(""), &out)
	if err == nil {
		t.Error("missing base name not detected")
	}
}

func TestGenerateBadFlags(t *testing.T) {
	cases := [][]string{
		{"-shape", "star", "x"},
		{"-paper", "A0", "x"},
		{"-backend", "latex", "x"},
		{"-n", "0", "x"},
		{"-fill", "red", "x"},
		{"a", "b"},
	}
	for _, args := range cases {
		dir := t.TempDir()
		args = append([]string{"-o", dir, "-log", filepath.Join(dir, "log.txt")}, args...)
		err := run(args, strings.NewReader(""), &strings.Builder{})
		if err == nil {
			t.Errorf("%q: expected error", args)
		}
	}
}
