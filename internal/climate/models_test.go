package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteTemperature(t *testing.T) {
	o := Observation{Year: 1753, Month: 1, Variance: -6.1}
	assert.Equal(t, 8.66+-6.1, o.AbsoluteTemperature(8.66))
	assert.Equal(t, 0, o.MonthIndex())
	assert.Equal(t, "January", o.MonthName())
	assert.Equal(t, "", Observation{Month: 13}.MonthName())
}

func TestYearRangeUnsorted(t *testing.T) {
	ds := &Dataset{MonthlyVariance: []Observation{
		{Year: 1900, Month: 1}, {Year: 1753, Month: 5}, {Year: 2015, Month: 12}, {Year: 1800, Month: 2},
	}}

	minYear, maxYear, ok := ds.YearRange()
	require.True(t, ok)
	assert.Equal(t, 1753, minYear)
	assert.Equal(t, 2015, maxYear)

	_, _, ok = (&Dataset{}).YearRange()
	assert.False(t, ok)
	var nilDS *Dataset
	assert.True(t, nilDS.Empty())
}

func TestDocumentValidation(t *testing.T) {
	base := 8.66

	ds, err := Document{BaseTemperature: &base, MonthlyVariance: []Observation{{Year: 1753, Month: 12}}}.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 8.66, ds.BaseTemperature)

	_, err = Document{MonthlyVariance: []Observation{}}.Dataset()
	assert.Error(t, err)

	_, err = Document{BaseTemperature: &base}.Dataset()
	assert.Error(t, err)

	_, err = Document{BaseTemperature: &base, MonthlyVariance: []Observation{{Year: 1753, Month: 0}}}.Dataset()
	assert.Error(t, err)
}
