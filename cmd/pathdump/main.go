// pathdump prints the entry sequence of a catalog shape, optionally mirrored and
// translated, and can render its fire timing as a WAV file
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/starlane/audio"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
	"github.com/lixenwraith/starlane/shapes"
)

func main() {
	shapesPath := flag.String("shapes", "", "Shape catalog TOML file (default: built-in catalog)")
	shape := flag.String("shape", "", "Shape to dump; empty lists the catalog")
	mirror := flag.Bool("mirror", false, "Mirror the path horizontally")
	at := flag.String("at", "0,0", "Translate the path to x,y")
	wavPath := flag.String("wav", "", "Write the fire timeline to this WAV file")
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := run(out, *shapesPath, *shape, *mirror, *at, *wavPath); err != nil {
		out.Flush()
		fmt.Fprintf(os.Stderr, "pathdump: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, shapesPath, shape string, mirror bool, at, wavPath string) error {
	catalog := shapes.Default()
	if shapesPath != "" {
		c, err := shapes.LoadFile(shapesPath)
		if err != nil {
			return err
		}
		catalog = c
	}

	if shape == "" {
		for _, name := range catalog.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	origin, err := parsePoint(at)
	if err != nil {
		return err
	}

	path, err := catalog.Path(shape)
	if err != nil {
		return err
	}
	if mirror {
		path = curve.Mirror(path)
	}
	path = curve.Translate(path, origin.X, origin.Y)

	dump(w, path)

	if wavPath != "" {
		if err := writeTimeline(wavPath, path); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", wavPath)
	}
	return nil
}

// dump writes one line per entry followed by a summary line
func dump(w io.Writer, p curve.Path) {
	for i, e := range p {
		if loc, ok := e.Location(); ok {
			fmt.Fprintf(w, "%4d  move  %g,%g\n", i, loc.X, loc.Y)
		} else {
			fmt.Fprintf(w, "%4d  %s\n", i, e.Action)
		}
	}
	fmt.Fprintf(w, "entries=%d moves=%d fire=%d\n", len(p), len(p.Moves()), p.Count(curve.ActionFire))
}

// parsePoint reads "x,y"
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}

func writeTimeline(path string, p curve.Path) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close wav: %w", cerr)
		}
	}()

	synth := audio.NewSynth(audio.DefaultConfig())
	return audio.WriteWAV(f, synth.Timeline(p, parameter.TickInterval), synth.SampleRate())
}
