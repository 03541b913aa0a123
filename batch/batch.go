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

// Package batch writes several independently randomized versions of the
// same shape sheet.
//
// All versions of a batch share the shape, the number of shapes per page and
// the page format, but every version gets its own random arrangement.  By
// default, version i of a batch with base name "sheet" is written to the
// file "sheet_Version_i.pdf".
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/shapesheet/render"
	"seehuhn.de/go/shapesheet/render/pdfdoc"
	"seehuhn.de/go/shapesheet/scatter"
	"seehuhn.de/go/shapesheet/shape"
)

var (
	// ErrInvalidVersionCount is returned when a non-positive number of
	// versions is requested.
	ErrInvalidVersionCount = errors.New("version count must be positive")

	// ErrInvalidRequest is returned for malformed base names and page
	// counts.
	ErrInvalidRequest = errors.New("invalid request")
)

// Request describes one batch of files.
type Request struct {
	// BaseName is the common prefix of all file names.  A trailing ".pdf"
	// is removed.
	BaseName string

	// Versions is the number of independently randomized versions.
	Versions int

	// Shape names the kind of shape to draw, for example "Circle".
	Shape string

	// ShapesPerPage is the number of shapes on every page.
	ShapesPerPage int

	// Pages is the number of pages per version.  The zero value means one
	// page.
	Pages int

	// Combined, if set, writes all versions into a single file
	// "{BaseName}_Combined.pdf", one after another.
	Combined bool
}

// Defaults for the zero fields of a [Writer], in PDF units.  These
// correspond to a margin of 15mm and shape sizes from 15mm to 30mm.
var (
	DefaultMargin  = render.MM(15)
	DefaultSize    = render.MM(15)
	DefaultMaxSize = render.MM(30)
)

// Writer creates the files of a batch.
// The zero value writes A4 pages to the current directory.
type Writer struct {
	// Dir is the output directory.  It is created if needed.
	Dir string

	// Backend renders the documents.  If this is nil, the
	// seehuhn.de/go/pdf backend is used.
	Backend render.Backend

	// Paper is the page size.  The zero value selects A4.
	Paper render.Paper

	// Margin is the minimal distance between shapes and page edges.
	// Size and MaxSize give the range of shape sizes.  Zero values are
	// replaced by DefaultMargin, DefaultSize and DefaultMaxSize.
	// Use a negative Margin for no margin.
	Margin  float64
	Size    float64
	MaxSize float64

	// Style, if non-nil, overrides render.DefaultStyle.
	Style *render.Style

	// Rand is the source of randomness.  If this is nil, every call to
	// CreateMultiplePdfs uses a freshly seeded generator.
	Rand *rand.Rand

	// Creator and Producer are recorded in the document metadata.
	Creator  string
	Producer string

	// Progress, if non-nil, is called after every file has been written.
	// For combined files, version is 0.
	Progress func(version int, path string)

	// Now returns the current time.  If this is nil, time.Now is used.
	Now func() time.Time
}

// WriteError reports a failure to write one of the files of a batch.
// Files written before the failure are kept.
type WriteError struct {
	// Version is the version which could not be written.
	// This is 0 for combined files.
	Version int
	Path    string
	Err     error
}

func (err *WriteError) Error() string {
	what := "combined file"
	if err.Version > 0 {
		what = "version " + strconv.Itoa(err.Version)
	}
	return "cannot write " + what + " to " + err.Path + ": " + err.Err.Error()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

// FileName returns the name of the file holding the given version.
func FileName(base string, version int) string {
	return base + "_Version_" + strconv.Itoa(version) + ".pdf"
}

// CombinedName returns the name of the file holding all versions of a
// combined batch.
func CombinedName(base string) string {
	return base + "_Combined.pdf"
}

// CreateMultiplePdfs writes the files of the batch and returns their paths,
// in version order.
//
// The request is validated before any file is written.  If writing one of
// the files fails, the returned error is a [*WriteError] and the returned
// slice holds the paths of the files written up to this point.
func (w *Writer) CreateMultiplePdfs(req Request) ([]string, error) {
	base, spec, canvas, err := w.validate(req)
	if err != nil {
		return nil, err
	}

	if w.Dir != "" {
		err = os.MkdirAll(w.Dir, 0o755)
		if err != nil {
			return nil, fmt.Errorf("cannot create output directory: %w", err)
		}
	}

	rng := w.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	numPages := max(req.Pages, 1)
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	docID := uuid.NewString()

	layout := func() ([]scatter.Page, error) {
		pages := make([]scatter.Page, numPages)
		for i := range pages {
			page, err := scatter.Generate(rng, spec, req.ShapesPerPage, canvas)
			if err != nil {
				return nil, err
			}
			pages[i] = page
		}
		return pages, nil
	}

	if req.Combined {
		var all []scatter.Page
		for range req.Versions {
			pages, err := layout()
			if err != nil {
				return nil, err
			}
			all = append(all, pages...)
		}

		path := filepath.Join(w.Dir, CombinedName(base))
		info := w.info(docID, now())
		info.Title = fmt.Sprintf("%s (%d versions)", base, req.Versions)
		err := w.writeFile(path, all, info)
		if err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
		if w.Progress != nil {
			w.Progress(0, path)
		}
		return []string{path}, nil
	}

	var written []string
	for v := 1; v <= req.Versions; v++ {
		pages, err := layout()
		if err != nil {
			return written, err
		}

		path := filepath.Join(w.Dir, FileName(base, v))
		info := w.info(docID, now())
		info.Title = fmt.Sprintf("%s, version %d of %d", base, v, req.Versions)
		err = w.writeFile(path, pages, info)
		if err != nil {
			return written, &WriteError{Version: v, Path: path, Err: err}
		}
		written = append(written, path)
		if w.Progress != nil {
			w.Progress(v, path)
		}
	}
	return written, nil
}

// validate checks the request and the writer settings, before any file is
// touched.
func (w *Writer) validate(req Request) (string, shape.Spec, scatter.Canvas, error) {
	var spec shape.Spec
	var canvas scatter.Canvas

	if req.Versions <= 0 {
		return "", spec, canvas, fmt.Errorf("%w: %d", ErrInvalidVersionCount, req.Versions)
	}
	kind, err := shape.ParseKind(req.Shape)
	if err != nil {
		return "", spec, canvas, err
	}
	if req.ShapesPerPage <= 0 {
		return "", spec, canvas, fmt.Errorf("%w: %d", scatter.ErrInvalidCount, req.ShapesPerPage)
	}
	if req.Pages < 0 {
		return "", spec, canvas, fmt.Errorf("%w: %d pages", ErrInvalidRequest, req.Pages)
	}
	base, err := cleanBaseName(req.BaseName)
	if err != nil {
		return "", spec, canvas, err
	}

	spec = shape.Spec{
		Kind:    kind,
		Size:    w.Size,
		MaxSize: w.MaxSize,
	}
	if spec.Size == 0 && spec.MaxSize == 0 {
		spec.Size = DefaultSize
		spec.MaxSize = DefaultMaxSize
	} else if spec.Size == 0 {
		spec.Size = min(DefaultSize, spec.MaxSize)
	}
	if err := spec.Validate(); err != nil {
		return "", spec, canvas, err
	}

	paper := w.paper()
	canvas = scatter.Canvas{
		Width:  paper.Width,
		Height: paper.Height,
		Margin: w.Margin,
	}
	switch {
	case canvas.Margin == 0:
		canvas.Margin = DefaultMargin
	case canvas.Margin < 0:
		canvas.Margin = 0
	}
	if err := canvas.Check(spec); err != nil {
		return "", spec, canvas, err
	}

	return base, spec, canvas, nil
}

// cleanBaseName normalizes a user-supplied base name.
func cleanBaseName(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		name = name[:len(name)-4]
	}
	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty base name", ErrInvalidRequest)
	case strings.ContainsAny(name, `/\`) || name == "." || name == "..":
		return "", fmt.Errorf("%w: base name %q must not contain a path", ErrInvalidRequest, name)
	case strings.ContainsRune(name, 0):
		return "", fmt.Errorf("%w: base name contains a NUL byte", ErrInvalidRequest)
	}
	return name, nil
}

func (w *Writer) paper() render.Paper {
	if w.Paper.Width > 0 && w.Paper.Height > 0 {
		return w.Paper
	}
	return render.A4
}

func (w *Writer) info(docID string, now time.Time) *render.Info {
	return &render.Info{
		Subject:    "randomly placed shapes",
		Creator:    w.Creator,
		Producer:   w.Producer,
		Created:    now,
		DocumentID: docID,
		InstanceID: uuid.NewString(),
	}
}

// writeFile renders one document.  If anything goes wrong, the incomplete
// file is removed.
func (w *Writer) writeFile(path string, pages []scatter.Page, info *render.Info) error {
	backend := w.Backend
	if backend == nil {
		backend = pdfdoc.Backend{}
	}
	style := render.DefaultStyle
	if w.Style != nil {
		style = *w.Style
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}

	// The bufio.Writer hides the Close method of fd from the backend.
	buf := bufio.NewWriter(fd)
	err = render.Write(buf, backend, w.paper(), style, info, pages)
	if err == nil {
		err = buf.Flush()
	}
	closeErr := fd.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
