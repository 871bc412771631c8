package chart

import (
	"strconv"
	"strings"
)

// Container is the caller-owned drawing area the tree is rendered for.
type Container struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DefaultContainer is the nominal 900x600 chart area.
func DefaultContainer() Container {
	return Container{ID: "chart", Width: 900, Height: 600}
}

// Margin surrounds the plot inside the chart area.
type Margin struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Tick is one labelled axis position.
type Tick struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// Axis is a labelled edge of the plot.
type Axis struct {
	ID     string  `json:"id"`
	Length float64 `json:"length"`
	Ticks  []Tick  `json:"ticks"`
}

// Cell is one rectangle of the grid. Year, Month and Temp are the
// inspectable attributes; Month is zero-based.
type Cell struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Fill        string  `json:"fill"`
	Opacity     float64 `json:"opacity"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`

	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Temp     float64 `json:"temp"`
	Variance float64 `json:"variance"`
}

// Swatch is one legend entry.
type Swatch struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
	Label  string  `json:"label"`
	LabelX float64 `json:"labelX"`
	LabelY float64 `json:"labelY"`
}

// Legend is the separate strip of breakpoint swatches.
type Legend struct {
	ID       string   `json:"id"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Swatches []Swatch `json:"swatches"`
}

// VisualTree is the complete rendered chart. An empty tree has no axes,
// no legend and no cells.
type VisualTree struct {
	Container Container `json:"container"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Margin    Margin    `json:"margin"`

	PlotWidth  float64 `json:"plotWidth"`
	PlotHeight float64 `json:"plotHeight"`

	BaseTemperature float64 `json:"baseTemperature"`
	MinYear         int     `json:"minYear"`
	MaxYear         int     `json:"maxYear"`

	XAxis  *Axis   `json:"xAxis,omitempty"`
	YAxis  *Axis   `json:"yAxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
	Cells  []Cell  `json:"cells"`
}

// Empty reports whether nothing was rendered.
func (t *VisualTree) Empty() bool {
	return t == nil || len(t.Cells) == 0
}

const cellIDPrefix = "cell-"

func cellID(i int) string {
	return cellIDPrefix + strconv.Itoa(i)
}

// Cell looks a cell up by its ID.
func (t *VisualTree) Cell(id string) (Cell, bool) {
	if t == nil || !strings.HasPrefix(id, cellIDPrefix) {
		return Cell{}, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(id, cellIDPrefix))
	if err != nil || i < 0 || i >= len(t.Cells) {
		return Cell{}, false
	}
	return t.Cells[i], true
}

// CellsWhere returns the cells matching year and zero-based month.
// A nil filter matches everything.
func (t *VisualTree) CellsWhere(year, month *int) []Cell {
	out := []Cell{}
	if t == nil {
		return out
	}
	for _, c := range t.Cells {
		if year != nil && c.Year != *year {
			continue
		}
		if month != nil && c.Month != *month {
			continue
		}
		out = append(out, c)
	}
	return out
}
