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
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/shapesheet/batch"
	"seehuhn.de/go/shapesheet/render"
	_ "seehuhn.de/go/shapesheet/render/fpdfdoc"
	"seehuhn.de/go/shapesheet/shape"
	"seehuhn.de/go/shapesheet/tools/internal/buildinfo"
)

// generateConfig holds the command-line flag values of the generate command.
type generateConfig struct {
	outDir   string
	versions int
	shape    string
	count    int
	pages    int
	paper    string
	margin   float64
	minSize  float64
	maxSize  float64
	combined bool
	backend  string
	fill     string
	stroke   string
	seed     uint64
	verbose  bool
	log      logOptions
}

func generate(args []string, stdin io.Reader, stdout io.Writer) error {
	var cfg generateConfig
	fs := newFlagSet("generate", "[base-name]", "write randomized PDF versions")
	fs.StringVar(&cfg.outDir, "o", envDefault("SHAPESHEET_OUTPUT", "output"), "output `directory`")
	fs.IntVar(&cfg.versions, "n", 1, "number of versions")
	fs.StringVar(&cfg.shape, "shape", "circle", "shape: "+strings.Join(shapeNames(), ", "))
	fs.IntVar(&cfg.count, "count", 10, "number of shapes per page")
	fs.IntVar(&cfg.pages, "pages", 1, "number of pages per version")
	fs.StringVar(&cfg.paper, "paper", "A4", "paper size: A4, A5 or Letter")
	fs.Float64Var(&cfg.margin, "margin", 15, "page margin in `mm`")
	fs.Float64Var(&cfg.minSize, "min-size", 15, "minimal shape size in `mm`")
	fs.Float64Var(&cfg.maxSize, "max-size", 30, "maximal shape size in `mm`")
	fs.BoolVar(&cfg.combined, "combined", false, "write all versions into one file")
	fs.StringVar(&cfg.backend, "backend", "pdf", "PDF library: "+strings.Join(render.Backends(), ", "))
	fs.StringVar(&cfg.fill, "fill", "#ffffff", "fill `color`")
	fs.StringVar(&cfg.stroke, "stroke", "#000000", "outline `color`")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random seed, 0 for a random seed")
	fs.BoolVar(&cfg.verbose, "v", false, "report every file as it is written")
	cfg.log.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("too many arguments")
	}

	req := batch.Request{
		Versions:      cfg.versions,
		Shape:         cfg.shape,
		ShapesPerPage: cfg.count,
		Pages:         cfg.pages,
		Combined:      cfg.combined,
	}
	if fs.NArg() == 1 {
		req.BaseName = fs.Arg(0)
	} else if isTerminal(stdin) {
		p := newPrompter(stdin, stdout)
		err := p.fill(&req)
		if err != nil {
			return err
		}
	} else {
		fs.Usage()
		return errors.New("no base name given")
	}

	w, err := cfg.writer()
	if err != nil {
		return err
	}

	now := time.Now()
	seq, err := cfg.log.record(now)
	if err != nil {
		log.Printf("cannot record execution: %v", err)
	} else if cfg.verbose {
		log.Printf("execution #%d recorded", seq)
	}

	paths, err := w.CreateMultiplePdfs(req)
	for _, path := range paths {
		fmt.Fprintln(stdout, path)
	}
	return err
}

// writer converts the flag values into a batch writer.
func (cfg *generateConfig) writer() (*batch.Writer, error) {
	paper, err := render.PaperByName(cfg.paper)
	if err != nil {
		return nil, err
	}
	backend, err := render.Lookup(cfg.backend)
	if err != nil {
		return nil, err
	}
	fill, err := render.ParseColor(cfg.fill)
	if err != nil {
		return nil, err
	}
	stroke, err := render.ParseColor(cfg.stroke)
	if err != nil {
		return nil, err
	}
	style := render.DefaultStyle
	style.Fill = fill
	style.Stroke = stroke

	w := &batch.Writer{
		Dir:      cfg.outDir,
		Backend:  backend,
		Paper:    paper,
		Margin:   render.MM(cfg.margin),
		Size:     render.MM(cfg.minSize),
		MaxSize:  render.MM(cfg.maxSize),
		Style:    &style,
		Creator:  toolName,
		Producer: buildinfo.Short(toolName),
	}
	if cfg.margin == 0 {
		w.Margin = -1
	}
	if cfg.seed != 0 {
		w.Rand = rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	}
	if cfg.verbose {
		w.Progress = func(version int, path string) {
			if version == 0 {
				log.Printf("wrote combined file %s", path)
			} else {
				log.Printf("wrote version %d to %s", version, path)
			}
		}
	}
	return w, nil
}

func shapeNames() []string {
	var names []string
	for _, k := range shape.All() {
		names = append(names, strings.ToLower(k.String()))
	}
	return names
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	fd, ok := r.(*os.File)
	return ok && term.IsTerminal(int(fd.Fd()))
}
