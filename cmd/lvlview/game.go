package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/iso"
)

const panSpeed = 8

var (
	background = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	hudPanel   = color.RGBA{0x2a, 0x2a, 0x2a, 0xe0}
	outline    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	slopeMark  = color.RGBA{0xff, 0xff, 0xff, 0xb0}
)

// Game is the ebiten.Game showing one level at a time.
type Game struct {
	gen    *generator.Generator
	params generator.Params
	log    *slog.Logger

	doc   export.Document
	faces []iso.Face
	camX  float64
	camY  float64

	white *ebiten.Image
	face  *text.GoTextFace
	err   string
}

// NewGame prepares fonts and the 1×1 white source used for triangles.
func NewGame(gen *generator.Generator, params generator.Params, log *slog.Logger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Game{
		gen:    gen,
		params: params,
		log:    log,
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		face:   &text.GoTextFace{Source: src, Size: 14},
	}, nil
}

func (g *Game) regenerate(seed int64) error {
	p := g.params
	p.Seed = seed
	lvl, err := g.gen.Generate(p)
	if err != nil {
		return err
	}
	g.params = p
	return g.show(export.FromLevel(lvl))
}

func (g *Game) show(doc export.Document) error {
	tiles, err := doc.MarbleTileGrid()
	if err != nil {
		return err
	}
	g.doc = doc
	g.faces = iso.Faces(tiles)
	g.camX, g.camY = 0, 0
	g.err = ""
	g.log.Info("showing level", "seed", doc.Seed, "width", doc.Width, "height", doc.Height, "faces", len(g.faces))
	return nil
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY -= panSpeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(g.doc.Seed + 1); err != nil {
			g.err = err.Error()
			g.log.Warn("regenerate failed", "err", err)
		}
	}
	return nil
}

// Draw paints the faces back to front, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	_, height, _ := iso.Canvas(g.doc.Width, g.doc.Height)
	ox := float64(sw)/2 + g.camX
	oy := (float64(sh)-height)/2 + 150 + g.camY

	var vs []ebiten.Vertex
	var is []uint16
	for _, f := range g.faces {
		// uint16 indices cap a batch at 65536 vertices
		if len(vs)+4 > 1<<16 {
			screen.DrawTriangles(vs, is, g.white, nil)
			vs, is = vs[:0], is[:0]
		}
		vs, is = appendQuad(vs, is, f, ox, oy)
	}
	if len(vs) > 0 {
		screen.DrawTriangles(vs, is, g.white, nil)
	}

	for _, f := range g.faces {
		if f.Kind != iso.Top {
			continue
		}
		p := f.Points
		for i := range p {
			q := p[(i+1)%4]
			vector.StrokeLine(screen, float32(p[i].X+ox), float32(p[i].Y+oy), float32(q.X+ox), float32(q.Y+oy), 1, outline, true)
		}
		if f.Slope {
			vector.FillCircle(screen, float32(f.Center.X+ox), float32(f.Center.Y+oy), 2, slopeMark, true)
		}
	}

	g.drawHUD(screen)
}

// appendQuad adds f as two triangles translated by (ox, oy).
func appendQuad(vs []ebiten.Vertex, is []uint16, f iso.Face, ox, oy float64) ([]ebiten.Vertex, []uint16) {
	a := float32(f.Opacity)
	r := float32(f.Fill.R) / 0xff * a
	gr := float32(f.Fill.G) / 0xff * a
	b := float32(f.Fill.B) / 0xff * a

	base := uint16(len(vs))
	for _, p := range f.Points {
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(p.X + ox),
			DstY:   float32(p.Y + oy),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: gr,
			ColorB: b,
			ColorA: a,
		})
	}
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Seed: %d   Size: %dx%d   Rooms: %d", g.doc.Seed, g.doc.Width, g.doc.Height, len(g.doc.Rooms)),
		"Arrows: pan   R: next seed   Esc: quit",
	}
	for _, w := range g.doc.Warnings {
		lines = append(lines, "warning: "+w)
	}
	if g.err != "" {
		lines = append(lines, "error: "+g.err)
	}

	lineHeight := g.face.Size * 1.4
	vector.FillRect(screen, 8, 8, 420, float32(lineHeight*float64(len(lines))+12), hudPanel, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(16, 14+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, g.face, op)
	}
}

// Layout keeps a 1:1 pixel mapping with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
