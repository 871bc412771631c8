package chart

import (
	"fmt"
	"html/template"
	"io"

	"github.com/i474232898/temperature-heatmap/internal/common"
)

const pageTitle = "Monthly Global Land-Surface Temperature"

var templates = template.Must(template.New("heatmap").Funcs(template.FuncMap{
	"num":   common.FormatCompact,
	"exact": common.FormatExact,
}).Parse(chartTemplate + legendTemplate + pageTemplate))

const chartTemplate = `{{define "chart"}}<svg id="{{.Container.ID}}" xmlns="http://www.w3.org/2000/svg" width="{{num .Width}}" height="{{num .Height}}">
{{- if not .Empty}}
<g transform="translate({{num .Margin.Left}}, {{num .Margin.Top}})">
{{- with .XAxis}}
<g id="{{.ID}}" transform="translate(0, {{num $.PlotHeight}})" fill="none" font-size="10px" text-anchor="end">
<path class="domain" stroke="currentColor" d="M0,6V0H{{num .Length}}V6"></path>
{{- range .Ticks}}
<g class="tick" transform="translate({{num .Position}}, 0)"><line stroke="currentColor" y2="6"></line><text fill="currentColor" y="9" dy="0.71em">{{.Label}}</text></g>
{{- end}}
</g>
{{- end}}
{{- with .YAxis}}
<g id="{{.ID}}" fill="none" font-size="12px" text-anchor="end">
<path class="domain" stroke="currentColor" d="M-6,0H0V{{num .Length}}H-6"></path>
{{- range .Ticks}}
<g class="tick" transform="translate(0, {{num .Position}})"><line stroke="currentColor" x2="-6"></line><text fill="currentColor" x="-9" dy="0.32em">{{.Label}}</text></g>
{{- end}}
</g>
{{- end}}
<g class="cells">
{{- range .Cells}}
<rect class="cell" id="{{.ID}}" data-year="{{.Year}}" data-month="{{.Month}}" data-temp="{{exact .Temp}}" x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" fill="{{.Fill}}" opacity="{{.Opacity}}" stroke="{{.Stroke}}" stroke-width="{{.StrokeWidth}}"></rect>
{{- end}}
</g>
</g>
{{- end}}
</svg>{{end}}`

const legendTemplate = `{{define "legend"}}{{with .Legend}}<svg id="{{.ID}}" class="legend" xmlns="http://www.w3.org/2000/svg" width="{{num .Width}}" height="{{num .Height}}">
{{- range .Swatches}}
<rect x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" fill="{{.Fill}}"></rect>
<text x="{{num .LabelX}}" y="{{num .LabelY}}" font-size="10px" text-anchor="middle">{{.Label}}</text>
{{- end}}
</svg>{{end}}{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
#tooltip { position: absolute; pointer-events: none; background-color: lightsteelblue; padding: 5px; border-radius: 3px; }
.legend { display: block; }
</style>
</head>
<body>
<div class="App">
<div id="title">
<strong>{{.Title}}</strong>
{{- if .Description}}
<p id="description">{{.Description}}</p>
{{- end}}
</div>
{{template "chart" .Tree}}
{{template "legend" .Tree}}
</div>
<div id="tooltip" class="tooltip" style="opacity: 0"></div>
<script>
(function () {
  var tip = document.getElementById("tooltip");
  var state = { opacity: 0, highlight: { opacity: 0.8, stroke: "none" } };
  var seq = 0;
  var cellSeq = {};

  function showTooltip(s) {
    tip.style.opacity = s.opacity;
    tip.style.left = s.left + "px";
    tip.style.top = s.top + "px";
    if (s.year) { tip.setAttribute("data-year", s.year); }
    if (s.lines) {
      tip.textContent = "";
      s.lines.forEach(function (line, i) {
        if (i > 0) { tip.appendChild(document.createElement("br")); }
        tip.appendChild(document.createTextNode(line));
      });
    }
  }

  function highlight(cell, h) {
    cell.setAttribute("opacity", h.opacity);
    cell.setAttribute("stroke", h.stroke);
  }

  // A reply styles its own cell unless a newer event for that cell is in
  // flight. Only the reply to the latest event drives the tooltip.
  function send(kind, e) {
    var cell = e.target;
    var mine = ++seq;
    cellSeq[cell.id] = mine;
    if (kind === "leave") { highlight(cell, { opacity: 0.8, stroke: "none" }); }
    fetch("/api/v1/hover", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ state: state, event: { kind: kind, cellId: cell.id, pointerX: e.pageX, pointerY: e.pageY } })
    }).then(function (r) { return r.json(); }).then(function (s) {
      if (cellSeq[cell.id] === mine) { highlight(cell, s.highlight); }
      if (mine !== seq) { return; }
      state = s;
      showTooltip(s);
    });
  }

  document.querySelectorAll("rect.cell").forEach(function (cell) {
    cell.addEventListener("mouseenter", function (e) { send("enter", e); });
    cell.addEventListener("mousemove", function (e) { send("move", e); });
    cell.addEventListener("mouseleave", function (e) { send("leave", e); });
  });
})();
</script>
</body>
</html>
{{end}}`

type pageData struct {
	Title       string
	Description string
	Tree        *VisualTree
}

// WriteSVG writes the chart area as a standalone SVG document.
func WriteSVG(w io.Writer, tree *VisualTree) error {
	return templates.ExecuteTemplate(w, "chart", tree)
}

// WriteLegendSVG writes the legend strip. An empty tree writes nothing.
func WriteLegendSVG(w io.Writer, tree *VisualTree) error {
	return templates.ExecuteTemplate(w, "legend", tree)
}

// WritePage writes the full HTML page: title, chart, legend, tooltip and
// the script that forwards pointer events to the hover endpoint.
func WritePage(w io.Writer, tree *VisualTree) error {
	data := pageData{Title: pageTitle, Tree: tree}
	if !tree.Empty() {
		data.Description = fmt.Sprintf("%d - %d: base temperature %sºC",
			tree.MinYear, tree.MaxYear, common.FormatExact(tree.BaseTemperature))
	}
	return templates.ExecuteTemplate(w, "page", data)
}
