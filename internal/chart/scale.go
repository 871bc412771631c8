package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// YearStart returns January 1st of year, UTC.
func YearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// TimeScale maps instants linearly onto a pixel range.
type TimeScale struct {
	d0, d1 time.Time
	r0, r1 float64
}

// NewTimeScale maps [January 1st of minYear, January 1st of maxYear] onto [0, width].
func NewTimeScale(minYear, maxYear int, width float64) TimeScale {
	return TimeScale{d0: YearStart(minYear), d1: YearStart(maxYear), r0: 0, r1: width}
}

// At returns the pixel offset of t. A zero-length domain maps to the range midpoint.
func (s TimeScale) At(t time.Time) float64 {
	// Unix seconds, not time.Duration: Sub saturates past ~292 years.
	d0 := float64(s.d0.Unix())
	span := float64(s.d1.Unix()) - d0
	if span == 0 {
		return (s.r0 + s.r1) / 2
	}
	frac := (float64(t.Unix()) - d0) / span
	return s.r0 + frac*(s.r1-s.r0)
}

// Year returns the pixel offset of January 1st of year.
func (s TimeScale) Year(year int) float64 {
	return s.At(YearStart(year))
}

// BandScale divides a pixel range into equal slots, one per category.
type BandScale struct {
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale lays out domain over [r0, r1] with padding applied as both
// inner and outer padding. round snaps step, start and bandwidth to whole pixels.
func NewBandScale(domain []string, r0, r1, padding float64, round bool) BandScale {
	n := float64(len(domain))
	inner := math.Min(1, padding)
	outer := padding

	step := (r1 - r0) / math.Max(1, n-inner+outer*2)
	if round {
		step = math.Floor(step)
	}
	start := r0 + (r1-r0-step*(n-inner))*0.5
	bandwidth := step * (1 - inner)
	if round {
		start = math.Round(start)
		bandwidth = math.Round(bandwidth)
	}

	index := make(map[string]int, len(domain))
	for i, d := range domain {
		index[d] = i
	}
	return BandScale{index: index, start: start, step: step, bandwidth: bandwidth}
}

// At returns the band's leading offset.
func (b BandScale) At(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return b.start + b.step*float64(i), true
}

// Bandwidth returns the padded width of one band.
func (b BandScale) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between adjacent band starts.
func (b BandScale) Step() float64 { return b.step }

// ColorScale interpolates linearly in RGB between breakpoint minima and clamps
// at both ends.
type ColorScale struct {
	stops  []float64
	colors []drawing.Color
	hex    []string
}

// NewColorScale builds a scale over the minima of bps, which must be ascending.
func NewColorScale(bps []Breakpoint) ColorScale {
	cs := ColorScale{
		stops:  make([]float64, len(bps)),
		colors: make([]drawing.Color, len(bps)),
		hex:    make([]string, len(bps)),
	}
	for i, bp := range bps {
		cs.stops[i] = bp.Min
		cs.colors[i] = drawing.ColorFromHex(strings.TrimPrefix(bp.Color, "#"))
		cs.hex[i] = strings.ToLower(bp.Color)
	}
	return cs
}

// Bucket returns the index of the breakpoint whose segment contains t,
// clamped to the first and last breakpoint.
func (c ColorScale) Bucket(t float64) int {
	last := len(c.stops) - 1
	switch {
	case math.IsNaN(t) || t <= c.stops[0]:
		return 0
	case t >= c.stops[last]:
		return last
	}
	return sort.Search(len(c.stops), func(i int) bool { return c.stops[i] > t }) - 1
}

// RGBA returns the interpolated color for t.
func (c ColorScale) RGBA(t float64) drawing.Color {
	i := c.Bucket(t)
	if i == len(c.stops)-1 || t <= c.stops[i] || math.IsNaN(t) {
		return c.colors[i]
	}
	frac := (t - c.stops[i]) / (c.stops[i+1] - c.stops[i])
	a, b := c.colors[i], c.colors[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

// Color returns the interpolated color for t as #rrggbb. Exact breakpoint
// minima and clamped inputs return the breakpoint color verbatim.
func (c ColorScale) Color(t float64) string {
	i := c.Bucket(t)
	if i == len(c.stops)-1 || t <= c.stops[i] || math.IsNaN(t) {
		return c.hex[i]
	}
	return hexColor(c.RGBA(t))
}

func lerp(a, b uint8, frac float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*frac)
	return uint8(math.Max(0, math.Min(255, v)))
}

func hexColor(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DecadeTicks returns every multiple of 10 in [minYear, maxYear].
func DecadeTicks(minYear, maxYear int) []int {
	var ticks []int
	for y := minYear; y <= maxYear; y++ {
		if y%10 == 0 {
			ticks = append(ticks, y)
		}
	}
	return ticks
}
