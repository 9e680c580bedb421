// Command lvlgen generates a marble level and writes it as ASCII, JSON,
// MessagePack or an isometric HTML page.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/lvlgen/cmd/internal/cliflags"
	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/iso"
	"github.com/katalvlaran/lvlgen/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type outputs struct {
	json, msgpack, html, schema  string
	printJSON, noASCII, htmlOnly bool
	store, name                  string
	verbose                      bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lvlgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	gen := cliflags.Bind(fs)

	var out outputs
	fs.StringVar(&out.json, "json", "", "write the level as JSON to this path")
	fs.StringVar(&out.msgpack, "msgpack", "", "write the level as MessagePack to this path")
	fs.StringVar(&out.html, "html", "", "write an isometric HTML view to this path")
	fs.StringVar(&out.schema, "schema", "", "write the JSON Schema of the level document to this path")
	fs.BoolVar(&out.printJSON, "print-json", false, "print the JSON document to stdout")
	fs.BoolVar(&out.noASCII, "no-ascii", false, "skip the ASCII preview")
	fs.BoolVar(&out.htmlOnly, "html-only", false, "only write the HTML view")
	fs.StringVar(&out.store, "store", "", "archive the level in a store: json, postgres or gdata")
	fs.StringVar(&out.name, "name", "", "level name inside the store")
	fs.BoolVar(&out.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if out.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lvl, err := generator.New(generator.WithLogger(logger)).Generate(gen.Params(time.Now()))
	if err != nil {
		return err
	}
	doc := export.FromLevel(lvl)

	if out.htmlOnly {
		if out.html == "" {
			out.html = "level.html"
		}
		return writeHTML(stdout, out.html, doc)
	}

	if !out.noASCII {
		fmt.Fprint(stdout, lvl.ASCII())
	}
	if out.printJSON {
		if err := export.WriteJSON(stdout, doc); err != nil {
			return err
		}
	}
	if out.json != "" {
		if err := writeFile(out.json, func(w io.Writer) error { return export.WriteJSON(w, doc) }); err != nil {
			return err
		}
		logger.Info("json written", "path", out.json)
	}
	if out.msgpack != "" {
		if err := writeFile(out.msgpack, func(w io.Writer) error { return export.EncodeMsgpack(w, doc) }); err != nil {
			return err
		}
		logger.Info("msgpack written", "path", out.msgpack)
	}
	if out.schema != "" {
		if err := writeFile(out.schema, export.WriteSchema); err != nil {
			return err
		}
		logger.Info("schema written", "path", out.schema)
	}
	if out.html != "" {
		if err := writeHTML(stdout, out.html, doc); err != nil {
			return err
		}
	}
	if out.store != "" {
		if err := archive(out, doc); err != nil {
			return err
		}
		logger.Info("level stored", "store", out.store, "name", out.name)
	}
	return nil
}

func writeHTML(stdout io.Writer, path string, doc export.Document) error {
	if err := writeFile(path, func(w io.Writer) error { return iso.WriteHTML(w, doc) }); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Isometric visualization written to: %s\n", path)
	return nil
}

// writeFile creates path and its parent directories and hands the file to fn.
func writeFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func archive(out outputs, doc export.Document) error {
	name := out.name
	if name == "" {
		name = seedName(doc.Seed)
	}
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{
		Kind: out.store,
		File: envOr("STORE_FILE", "levels.json"),
		DSN:  os.Getenv("DATABASE_URL"),
		App:  envOr("GDATA_APP", "lvlgen"),
	})
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveLevel(ctx, name, doc)
}

// seedName is the default store name for a seed. Negative seeds use an "n"
// prefix since '-' would read as part of the separator.
func seedName(seed int64) string {
	if seed < 0 {
		// -(seed+1) cannot overflow, unlike -seed at math.MinInt64
		return "seed_n" + strconv.FormatUint(uint64(-(seed+1))+1, 10)
	}
	return "seed_" + strconv.FormatInt(seed, 10)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
