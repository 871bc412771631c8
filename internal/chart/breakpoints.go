package chart

// Breakpoint is one segment of the color scale.
type Breakpoint struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Color string  `json:"color"`
}

// Breakpoints run from cold (blue) to hot (red) in ascending temperature.
var Breakpoints = []Breakpoint{
	{Min: 2.8, Max: 3.9, Color: "#313695"},
	{Min: 3.9, Max: 5.0, Color: "#4575b4"},
	{Min: 5.0, Max: 6.1, Color: "#74add1"},
	{Min: 6.1, Max: 7.2, Color: "#abd9e9"},
	{Min: 7.2, Max: 8.3, Color: "#e0f3f8"},
	{Min: 8.3, Max: 9.5, Color: "#fee090"},
	{Min: 9.5, Max: 10.6, Color: "#fdae61"},
	{Min: 10.6, Max: 11.7, Color: "#f46d43"},
	{Min: 11.7, Max: 12.8, Color: "#d73027"},
	{Min: 12.8, Max: 14.0, Color: "#a50026"},
}
