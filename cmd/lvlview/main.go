// Command lvlview opens a window showing a level in isometric projection.
//
// Arrow keys pan, R regenerates with the next seed, Escape quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/lvlgen/cmd/internal/cliflags"
	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/generator"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	fs := flag.NewFlagSet("lvlview", flag.ExitOnError)
	gen := cliflags.Bind(fs)
	load := fs.String("load", "", "view a level JSON file instead of generating one")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Parse(os.Args[1:])

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params := gen.Params(time.Now())
	var doc export.Document
	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			log.Fatalf("Failed to open level: %v", err)
		}
		doc, err = export.ReadJSON(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to read level: %v", err)
		}
		params.Seed = doc.Seed
	}

	g, err := NewGame(generator.New(generator.WithLogger(logger)), params, logger)
	if err != nil {
		log.Fatal(err)
	}
	if *load != "" {
		if err := g.show(doc); err != nil {
			log.Fatal(err)
		}
	} else if err := g.regenerate(params.Seed); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("lvlview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
