package iso

import (
	"fmt"
	"html/template"
	"image/color"
	"io"
	"strings"

	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/tile"
)

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"points": pointsAttr,
	"hex":    Hex,
	"num":    func(f float64) string { return fmt.Sprintf("%.2f", f) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Marble Level - Isometric View</title>
  <style>
    body { margin: 0; padding: 20px; background: #1a1a1a; font-family: Arial, sans-serif; }
    .container { max-width: 1400px; margin: 0 auto; }
    h1 { color: #fff; text-align: center; }
    .info { color: #aaa; text-align: center; margin: 10px 0; }
    svg { background: #0d0d0d; display: block; margin: 20px auto; border: 2px solid #333; }
    .legend { color: #fff; background: #2a2a2a; padding: 15px; border-radius: 5px; margin-top: 20px; }
    .legend-item { display: inline-block; margin: 5px 15px; }
    .legend-color { display: inline-block; width: 20px; height: 20px; margin-right: 5px; vertical-align: middle; border: 1px solid #555; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Marble Level - Isometric View</h1>
    <div class="info">Seed: {{.Seed}} | Size: {{.Width}}×{{.Height}} | Rooms: {{.Rooms}}</div>
    <svg width="{{num .CanvasW}}" height="{{num .CanvasH}}" viewBox="0 0 {{num .CanvasW}} {{num .CanvasH}}">
      <g transform="translate({{num .Origin.X}}, {{num .Origin.Y}})">
{{- range .Faces}}
        <polygon points="{{points .Points}}" fill="{{hex .Fill}}" stroke="{{if .Wall}}#222{{else}}#333{{end}}" stroke-width="{{if .Wall}}0.5{{else}}1{{end}}"{{if lt .Opacity 1.0}} opacity="{{.Opacity}}"{{end}}/>
{{- if .Slope}}
        <text x="{{num .Center.X}}" y="{{num .Center.Y}}" font-size="16" fill="#fff" text-anchor="middle" dominant-baseline="middle">⛰</text>
{{- end}}
{{- end}}
      </g>
    </svg>
    <div class="legend">
      <strong>Legend:</strong><br>
{{- range .Legend}}
      <div class="legend-item"><span class="legend-color" style="background: {{hex .Color}}"></span>{{.Label}}</div>
{{- end}}
      <div style="margin-top: 10px;"><em>Lighter shades are higher.</em></div>
    </div>
  </div>
</body>
</html>
`))

var legend = []struct {
	Label string
	Type  tile.Type
}{
	{"Straight Path", tile.Straight},
	{"Curve", tile.Curve90},
	{"Junction", tile.TJunction},
	{"Slope Up ⛰", tile.SlopeUp},
	{"Slope Down ⛰", tile.SlopeDown},
	{"Open Platform", tile.OpenPlatform},
	{"Obstacle", tile.Obstacle},
}

type pageData struct {
	Seed             int64
	Width, Height    int
	Rooms            int
	CanvasW, CanvasH float64
	Origin           Point
	Faces            []Face
	Legend           []legendItem
}

type legendItem struct {
	Label string
	Color color.RGBA
}

func pointsAttr(ps [4]Point) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

// WriteHTML renders doc as a standalone HTML page with an inline SVG scene
// painted back to front.
func WriteHTML(w io.Writer, doc export.Document) error {
	tiles, err := doc.MarbleTileGrid()
	if err != nil {
		return err
	}
	cw, ch, origin := Canvas(doc.Width, doc.Height)
	data := pageData{
		Seed:    doc.Seed,
		Width:   doc.Width,
		Height:  doc.Height,
		Rooms:   len(doc.Rooms),
		CanvasW: cw,
		CanvasH: ch,
		Origin:  origin,
		Faces:   Faces(tiles),
	}
	for _, l := range legend {
		data.Legend = append(data.Legend, legendItem{Label: l.Label, Color: Color(l.Type)})
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("iso: render html: %w", err)
	}
	return nil
}
