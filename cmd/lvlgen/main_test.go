package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/store"
)

func TestRun_ASCII(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "888", "-width", "40", "-height", "16"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.Len(t, lines, 16)
	assert.Len(t, lines[0], 40)
	assert.Contains(t, stderr.String(), "level generated")
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out", "level.json")
	mpPath := filepath.Join(dir, "level.mp")
	htmlPath := filepath.Join(dir, "level.html")
	schemaPath := filepath.Join(dir, "schema.json")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-seed", "5", "-elevation", "-no-ascii",
		"-json", jsonPath, "-msgpack", mpPath, "-html", htmlPath, "-schema", schemaPath,
	}, &stdout, &stderr)
	require.NoError(t, err)

	f, err := os.Open(jsonPath)
	require.NoError(t, err)
	defer f.Close()
	doc, err := export.ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, int64(5), doc.Seed)

	b, err := os.ReadFile(mpPath)
	require.NoError(t, err)
	fromMP, err := export.UnmarshalMsgpack(b)
	require.NoError(t, err)
	assert.Equal(t, doc.Tiles, fromMP.Tiles)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<svg")

	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.Contains(t, string(schema), "marble_tiles")

	assert.Contains(t, stdout.String(), "Isometric visualization written to")
	assert.NotContains(t, stdout.String(), "#")
}

func TestRun_HTMLOnly(t *testing.T) {
	htmlPath := filepath.Join(t.TempDir(), "only.html")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "1", "-html-only", "-html", htmlPath, "-print-json"}, &stdout, &stderr))

	_, err := os.Stat(htmlPath)
	assert.NoError(t, err)
	assert.NotContains(t, stdout.String(), "marble_tiles", "html-only skips json")
}

func TestRun_Store(t *testing.T) {
	file := filepath.Join(t.TempDir(), "levels.json")
	t.Setenv("STORE_FILE", file)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "9", "-no-ascii", "-store", "json", "-name", "nine"}, &stdout, &stderr))

	s, err := store.NewJSONStore(file)
	require.NoError(t, err)
	doc, err := s.LoadLevel(context.Background(), "nine")
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.Seed)
}

func TestRun_InvalidParams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-width", "3"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestSeedName(t *testing.T) {
	cases := map[int64]string{
		0:             "seed_0",
		888:           "seed_888",
		-5:            "seed_n5",
		math.MaxInt64: "seed_9223372036854775807",
		math.MinInt64: "seed_n9223372036854775808",
	}
	for seed, want := range cases {
		assert.Equal(t, want, seedName(seed), "seed %d", seed)
		assert.NoError(t, store.ValidateName(seedName(seed)))
	}
}

func TestRun_StoreDefaultName(t *testing.T) {
	file := filepath.Join(t.TempDir(), "levels.json")
	t.Setenv("STORE_FILE", file)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-seed", "-9223372036854775808", "-no-ascii", "-store", "json"}, &stdout, &stderr))

	s, err := store.NewJSONStore(file)
	require.NoError(t, err)
	names, err := s.ListLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"seed_n9223372036854775808"}, names)
}
