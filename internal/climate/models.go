package climate

// MonthNames are the vertical axis categories, in calendar order.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Observation is one year/month/variance record of the dataset.
type Observation struct {
	Year     int     `json:"year"`
	Month    int     `json:"month" validate:"min=1,max=12"`
	Variance float64 `json:"variance"`
}

// AbsoluteTemperature returns base + variance. It is never stored.
func (o Observation) AbsoluteTemperature(base float64) float64 {
	return base + o.Variance
}

// MonthIndex returns the zero-based month.
func (o Observation) MonthIndex() int {
	return o.Month - 1
}

// MonthName returns the calendar name of the observation's month, or ""
// when Month is outside 1..12.
func (o Observation) MonthName() string {
	if o.Month < 1 || o.Month > 12 {
		return ""
	}
	return MonthNames[o.MonthIndex()]
}

// Dataset is the loaded climate document. It is read-only once loaded.
type Dataset struct {
	BaseTemperature float64       `json:"baseTemperature"`
	MonthlyVariance []Observation `json:"monthlyVariance"`
}

// Empty reports whether there is nothing to render.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.MonthlyVariance) == 0
}

// YearRange returns the smallest and largest observation year.
// ok is false for an empty dataset.
func (d *Dataset) YearRange() (minYear, maxYear int, ok bool) {
	if d.Empty() {
		return 0, 0, false
	}
	minYear, maxYear = d.MonthlyVariance[0].Year, d.MonthlyVariance[0].Year
	for _, o := range d.MonthlyVariance[1:] {
		if o.Year < minYear {
			minYear = o.Year
		}
		if o.Year > maxYear {
			maxYear = o.Year
		}
	}
	return minYear, maxYear, true
}
