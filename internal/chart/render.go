package chart

import (
	"fmt"
	"math"

	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/common"
)

// Layout constants, in pixels.
const (
	fontSize    = 16
	bandPixels  = 33
	plotHeight  = bandPixels * 12
	cellPixelsX = 5

	legendWidth   = 300
	legendHeight  = 20
	legendPadding = 10
	legendLabelDY = 20

	baseCellOpacity  = 0.8
	cellStrokeWidth  = 4
	bandPaddingRatio = 0.1
)

var plotMargin = Margin{
	Left:   5 * fontSize,
	Right:  9 * fontSize,
	Top:    1 * fontSize,
	Bottom: 8 * fontSize,
}

// Scales holds every presentation value derived from a dataset.
type Scales struct {
	Width   float64
	Height  float64
	MinYear int
	MaxYear int
	X       TimeScale
	Y       BandScale
	Color   ColorScale
	Ticks   []int
}

// NewScales derives the scales for ds. ok is false for an empty dataset.
func NewScales(ds *climate.Dataset) (Scales, bool) {
	minYear, maxYear, ok := ds.YearRange()
	if !ok {
		return Scales{}, false
	}

	count := len(ds.MonthlyVariance)
	width := float64(cellPixelsX * int(math.Ceil(float64(count)/12)))

	return Scales{
		Width:   width,
		Height:  plotHeight,
		MinYear: minYear,
		MaxYear: maxYear,
		X:       NewTimeScale(minYear, maxYear, width),
		Y:       NewBandScale(climate.MonthNames[:], 0, plotHeight, bandPaddingRatio, true),
		Color:   NewColorScale(Breakpoints),
		Ticks:   DecadeTicks(minYear, maxYear),
	}, true
}

// Render builds the visual tree for ds inside c. It does not mutate ds and
// returns the same tree for the same input. A nil or empty dataset yields an
// empty tree sized to the container.
func Render(ds *climate.Dataset, c Container) VisualTree {
	tree := VisualTree{
		Container: c,
		Width:     float64(c.Width),
		Height:    float64(c.Height),
		Cells:     []Cell{},
	}

	sc, ok := NewScales(ds)
	if !ok {
		return tree
	}

	tree.Margin = plotMargin
	tree.PlotWidth = sc.Width
	tree.PlotHeight = sc.Height
	tree.Width = sc.Width + plotMargin.Left + plotMargin.Right
	tree.Height = sc.Height + plotMargin.Top + plotMargin.Bottom
	tree.BaseTemperature = ds.BaseTemperature
	tree.MinYear = sc.MinYear
	tree.MaxYear = sc.MaxYear

	tree.XAxis = xAxis(sc)
	tree.YAxis = yAxis(sc)
	tree.Legend = legend(sc.Color)
	tree.Cells = cells(ds, sc)
	return tree
}

func xAxis(sc Scales) *Axis {
	ticks := make([]Tick, 0, len(sc.Ticks))
	for _, y := range sc.Ticks {
		ticks = append(ticks, Tick{
			Label:    fmt.Sprintf("%04d", y),
			Position: sc.X.At(YearStart(y)),
		})
	}
	return &Axis{ID: "x-axis", Length: sc.Width, Ticks: ticks}
}

func yAxis(sc Scales) *Axis {
	ticks := make([]Tick, 0, len(climate.MonthNames))
	for _, name := range climate.MonthNames {
		y, _ := sc.Y.At(name)
		ticks = append(ticks, Tick{Label: name, Position: y + sc.Y.Bandwidth()/2})
	}
	return &Axis{ID: "y-axis", Length: sc.Height, Ticks: ticks}
}

func legend(cs ColorScale) *Legend {
	swatchWidth := float64(legendWidth) / float64(len(Breakpoints))
	swatches := make([]Swatch, 0, len(Breakpoints))
	for i, bp := range Breakpoints {
		x := float64(i) * swatchWidth
		swatches = append(swatches, Swatch{
			X:      x,
			Y:      legendPadding,
			Width:  swatchWidth,
			Height: legendHeight,
			Fill:   cs.Color(bp.Min),
			Label:  common.FormatFixed(bp.Min, 1),
			LabelX: x + swatchWidth/2,
			LabelY: legendHeight + legendPadding + legendLabelDY,
		})
	}
	return &Legend{
		ID:       "legend",
		Width:    legendWidth,
		Height:   legendHeight + legendPadding + 30,
		Swatches: swatches,
	}
}

func cells(ds *climate.Dataset, sc Scales) []Cell {
	count := len(ds.MonthlyVariance)
	width := sc.Width / float64(count) * 12
	height := sc.Height / 12

	out := make([]Cell, 0, count)
	for i, o := range ds.MonthlyVariance {
		y, _ := sc.Y.At(o.MonthName())
		temp := o.AbsoluteTemperature(ds.BaseTemperature)
		out = append(out, Cell{
			ID:          cellID(i),
			X:           sc.X.Year(o.Year),
			Y:           y,
			Width:       width,
			Height:      height,
			Fill:        sc.Color.Color(temp),
			Opacity:     baseCellOpacity,
			Stroke:      "none",
			StrokeWidth: cellStrokeWidth,
			Year:        o.Year,
			Month:       o.MonthIndex(),
			Temp:        temp,
			Variance:    o.Variance,
		})
	}
	return out
}
