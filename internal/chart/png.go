package chart

import (
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WritePNG rasterises the tree: cells inside the plot margins, axis labels,
// and the legend strip underneath. An empty tree yields a blank container.
func WritePNG(w io.Writer, tree *VisualTree) error {
	width := int(math.Ceil(tree.Width))
	height := int(math.Ceil(tree.Height))
	if tree.Legend != nil {
		height += int(math.Ceil(tree.Legend.Height))
	}

	r, err := gochart.PNG(width, height)
	if err != nil {
		return err
	}
	fillRect(r, 0, 0, float64(width), float64(height), drawing.ColorWhite)

	if tree.Empty() {
		return r.Save(w)
	}

	ox, oy := tree.Margin.Left, tree.Margin.Top
	for _, c := range tree.Cells {
		fillRect(r, ox+c.X, oy+c.Y, ox+c.X+c.Width, oy+c.Y+c.Height, parseHex(c.Fill))
	}

	legendTop := tree.Height
	for _, s := range tree.Legend.Swatches {
		fillRect(r, ox+s.X, legendTop+s.Y, ox+s.X+s.Width, legendTop+s.Y+s.Height, parseHex(s.Fill))
	}

	font, err := gochart.GetDefaultFont()
	if err != nil {
		// Labels are optional; the cells are already drawn.
		return r.Save(w)
	}
	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(10)

	for _, t := range tree.XAxis.Ticks {
		r.Text(t.Label, int(ox+t.Position)-12, int(oy+tree.PlotHeight)+18)
	}
	for _, t := range tree.YAxis.Ticks {
		box := r.MeasureText(t.Label)
		r.Text(t.Label, int(ox)-box.Width()-9, int(oy+t.Position)+box.Height()/2)
	}
	for _, s := range tree.Legend.Swatches {
		box := r.MeasureText(s.Label)
		r.Text(s.Label, int(ox+s.LabelX)-box.Width()/2, int(legendTop+s.LabelY))
	}

	return r.Save(w)
}

func fillRect(r gochart.Renderer, x0, y0, x1, y1 float64, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(int(x0), int(y0))
	r.LineTo(int(math.Ceil(x1)), int(y0))
	r.LineTo(int(math.Ceil(x1)), int(math.Ceil(y1)))
	r.LineTo(int(x0), int(math.Ceil(y1)))
	r.Close()
	r.Fill()
}

func parseHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
