package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

func singleCellTree() VisualTree {
	return Render(&climate.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []climate.Observation{{Year: 1753, Month: 1, Variance: -6.1}},
	}, DefaultContainer())
}

func TestTooltipEnterLeave(t *testing.T) {
	tree := singleCellTree()

	s := InitialTooltip()
	assert.Equal(t, 0.0, s.Opacity)
	assert.Equal(t, 0.8, s.Highlight.Opacity)

	s = ReduceTooltip(&tree, s, HoverEvent{Kind: HoverEnter, CellID: "cell-0"})
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, 1.0, s.Highlight.Opacity)
	assert.Equal(t, "white", s.Highlight.Stroke)
	assert.Equal(t, "cell-0", s.CellID)

	s = ReduceTooltip(&tree, s, HoverEvent{Kind: HoverLeave, CellID: "cell-0"})
	assert.Equal(t, 0.0, s.Opacity)
	assert.Equal(t, 0.8, s.Highlight.Opacity)
	assert.Equal(t, "none", s.Highlight.Stroke)
}

func TestTooltipMoveContent(t *testing.T) {
	tree := singleCellTree()

	s := ReduceTooltip(&tree, InitialTooltip(), HoverEvent{Kind: HoverEnter, CellID: "cell-0"})
	s = ReduceTooltip(&tree, s, HoverEvent{Kind: HoverMove, CellID: "cell-0", PointerX: 100, PointerY: 50})

	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, 110.0, s.Left)
	assert.Equal(t, 40.0, s.Top)
	assert.Equal(t, 1753, s.Year)
	assert.Equal(t, []string{"1753 - January", "2.6°C", "-6.1"}, s.Lines)
}

func TestTooltipMoveWithoutEnterShows(t *testing.T) {
	tree := singleCellTree()

	s := ReduceTooltip(&tree, InitialTooltip(), HoverEvent{Kind: HoverMove, CellID: "cell-0", PointerX: 1, PointerY: 1})
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, "white", s.Highlight.Stroke)
}

func TestTooltipIgnoresUnknownCells(t *testing.T) {
	tree := singleCellTree()
	start := InitialTooltip()

	assert.Equal(t, start, ReduceTooltip(&tree, start, HoverEvent{Kind: HoverEnter, CellID: "cell-7"}))

	empty := Render(nil, DefaultContainer())
	assert.Equal(t, start, ReduceTooltip(&empty, start, HoverEvent{Kind: HoverEnter, CellID: "cell-0"}))
	assert.Equal(t, start, ReduceTooltip(nil, start, HoverEvent{Kind: HoverEnter, CellID: "cell-0"}))
}

func TestTooltipLeaveAfterNextEnterRestsLeftCell(t *testing.T) {
	tree := Render(&climate.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []climate.Observation{
			{Year: 1753, Month: 1, Variance: -6.1},
			{Year: 1753, Month: 2, Variance: -4.0},
		},
	}, DefaultContainer())

	entered := ReduceTooltip(&tree, InitialTooltip(), HoverEvent{Kind: HoverEnter, CellID: "cell-1"})

	// The leave for cell-0 is reduced against state that already belongs to cell-1.
	s := ReduceTooltip(&tree, entered, HoverEvent{Kind: HoverLeave, CellID: "cell-0"})
	assert.Equal(t, "cell-0", s.CellID)
	assert.Equal(t, restingCell, s.Highlight)
}
