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

// Package render turns page layouts into PDF documents.
//
// Rendering is done by a [Backend].  The backends live in sub-packages and
// register themselves when they are imported:
//
//	import _ "seehuhn.de/go/shapesheet/render/fpdfdoc"
//
// A backend creates a [Surface], which accepts pages and shapes and
// writes the finished document when it is closed.
package render

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"seehuhn.de/go/shapesheet/scatter"
)

// Info holds the document-level metadata of a generated file.
type Info struct {
	Title    string
	Subject  string
	Creator  string
	Producer string
	Created  time.Time

	// DocumentID is shared by all files of one batch, InstanceID is unique
	// for every file.  Both are optional.
	DocumentID string
	InstanceID string
}

// Surface receives the pages of one document.
type Surface interface {
	// NewPage starts a new page.  Shapes are drawn onto the most recently
	// started page.
	NewPage() error

	// DrawShape draws a filled and outlined shape onto the current page.
	DrawShape(p scatter.Placement) error

	// Close finishes the document and writes it to the underlying writer.
	// A document without pages gets a single empty page.
	Close() error
}

// Backend creates PDF documents.
type Backend interface {
	// Name returns the name under which the backend is registered.
	Name() string

	// Create starts a new document which is written to w.
	// The info argument may be nil.
	Create(w io.Writer, paper Paper, style Style, info *Info) (Surface, error)
}

// ErrNoPage is returned by [Surface.DrawShape] if no page has been started.
var ErrNoPage = errors.New("no current page")

var (
	backendsMu sync.Mutex
	backends   = map[string]Backend{}
)

// Register makes a backend available under its name.
// Register panics if a backend with the same name is already registered.
func Register(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	name := b.Name()
	if _, dup := backends[name]; dup {
		panic("render: backend " + name + " registered twice")
	}
	backends[name] = b
}

// Lookup returns the backend registered under the given name.
func Lookup(name string) (Backend, error) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	b, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown rendering backend %q", name)
	}
	return b, nil
}

// Backends returns the names of all registered backends, in sorted order.
func Backends() []string {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write renders the given pages into a single document.
func Write(w io.Writer, b Backend, paper Paper, style Style, info *Info, pages []scatter.Page) error {
	s, err := b.Create(w, paper, style, info)
	if err != nil {
		return err
	}
	for _, page := range pages {
		err = s.NewPage()
		if err != nil {
			return err
		}
		for _, p := range page {
			err = s.DrawShape(p)
			if err != nil {
				return err
			}
		}
	}
	return s.Close()
}
