package chart

import (
	"fmt"

	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/common"
)

// HoverKind names a pointer transition over a cell.
type HoverKind string

const (
	HoverEnter HoverKind = "enter"
	HoverMove  HoverKind = "move"
	HoverLeave HoverKind = "leave"
)

// HoverEvent is one pointer event delivered to the tooltip reducer.
type HoverEvent struct {
	Kind     HoverKind `json:"kind" validate:"required,oneof=enter move leave"`
	CellID   string    `json:"cellId" validate:"required"`
	PointerX float64   `json:"pointerX"`
	PointerY float64   `json:"pointerY"`
}

// CellStyle is the hover-dependent styling of a cell.
type CellStyle struct {
	Opacity float64 `json:"opacity"`
	Stroke  string  `json:"stroke"`
}

var (
	restingCell     = CellStyle{Opacity: baseCellOpacity, Stroke: "none"}
	highlightedCell = CellStyle{Opacity: 1, Stroke: "white"}
)

// Tooltip offsets from the pointer, in pixels.
const (
	tooltipOffsetX = 10
	tooltipOffsetY = -10
)

// TooltipState is the whole hover state: tooltip visibility, placement and
// content, plus the style of the cell it refers to.
type TooltipState struct {
	Opacity   float64   `json:"opacity"`
	Left      float64   `json:"left"`
	Top       float64   `json:"top"`
	CellID    string    `json:"cellId,omitempty"`
	Year      int       `json:"year,omitempty"`
	Lines     []string  `json:"lines,omitempty"`
	Highlight CellStyle `json:"highlight"`
}

// InitialTooltip is the hidden tooltip over a resting grid.
func InitialTooltip() TooltipState {
	return TooltipState{Highlight: restingCell}
}

// ReduceTooltip applies ev to state. Events for unknown cells leave the
// state untouched.
func ReduceTooltip(tree *VisualTree, state TooltipState, ev HoverEvent) TooltipState {
	cell, ok := tree.Cell(ev.CellID)
	if !ok {
		return state
	}

	switch ev.Kind {
	case HoverEnter:
		return enter(state, cell)
	case HoverMove:
		if state.CellID != cell.ID || state.Opacity == 0 {
			state = enter(state, cell)
		}
		state.Left = ev.PointerX + tooltipOffsetX
		state.Top = ev.PointerY + tooltipOffsetY
		state.Year = cell.Year
		state.Lines = tooltipLines(cell)
		return state
	case HoverLeave:
		state.Opacity = 0
		state.CellID = cell.ID
		state.Highlight = restingCell
		return state
	default:
		return state
	}
}

func enter(state TooltipState, cell Cell) TooltipState {
	state.Opacity = 1
	state.CellID = cell.ID
	state.Highlight = highlightedCell
	return state
}

func tooltipLines(c Cell) []string {
	return []string{
		fmt.Sprintf("%d - %s", c.Year, climate.Observation{Month: c.Month + 1}.MonthName()),
		common.FormatFixed(c.Temp, 1) + "°C",
		common.FormatFixed(c.Variance, 1),
	}
}
