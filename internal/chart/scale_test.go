package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

func TestTimeScaleEndpoints(t *testing.T) {
	s := NewTimeScale(1753, 2015, 1315)

	assert.Equal(t, 0.0, s.Year(1753))
	assert.InDelta(t, 1315.0, s.Year(2015), 1e-9)
	assert.True(t, s.Year(1800) < s.Year(1900))
}

func TestTimeScaleLongSpan(t *testing.T) {
	s := NewTimeScale(1700, 2020, 320)

	assert.InDelta(t, 200.0, s.Year(1900), 0.5)
	assert.InDelta(t, 300.0, s.Year(2000), 0.5)
	assert.Less(t, s.Year(2000), s.Year(2020))
	assert.InDelta(t, 320.0, s.Year(2020), 1e-9)
}

func TestTimeScaleDegenerateDomain(t *testing.T) {
	s := NewTimeScale(1753, 1753, 5)
	assert.Equal(t, 2.5, s.Year(1753))
}

func TestBandScaleMonths(t *testing.T) {
	b := NewBandScale(climate.MonthNames[:], 0, 396, 0.1, true)

	assert.Equal(t, 32.0, b.Step())
	assert.Equal(t, 29.0, b.Bandwidth())

	jan, ok := b.At("January")
	require.True(t, ok)
	assert.Equal(t, 8.0, jan)

	dec, ok := b.At("December")
	require.True(t, ok)
	assert.Equal(t, 360.0, dec)

	_, ok = b.At("Smarch")
	assert.False(t, ok)
}

func TestBandScaleOrder(t *testing.T) {
	b := NewBandScale(climate.MonthNames[:], 0, 396, 0.1, true)
	prev := -1.0
	for _, name := range climate.MonthNames {
		y, ok := b.At(name)
		require.True(t, ok)
		assert.Greater(t, y, prev, name)
		prev = y
	}
}

func TestColorScaleBreakpointsExact(t *testing.T) {
	cs := NewColorScale(Breakpoints)
	for _, bp := range Breakpoints {
		assert.Equal(t, bp.Color, cs.Color(bp.Min), "min %v", bp.Min)
	}
}

func TestColorScaleClamps(t *testing.T) {
	cs := NewColorScale(Breakpoints)

	assert.Equal(t, "#313695", cs.Color(2.56))
	assert.Equal(t, "#313695", cs.Color(-40))
	assert.Equal(t, "#a50026", cs.Color(13.5))
	assert.Equal(t, "#a50026", cs.Color(99))
}

func TestColorScaleInterpolates(t *testing.T) {
	cs := NewColorScale(Breakpoints)

	// Three quarters of the way from #313695 to #4575b4.
	got := cs.RGBA(2.8 + 0.75*1.1)
	assert.InDelta(t, 64, int(got.R), 1)
	assert.InDelta(t, 101, int(got.G), 1)
	assert.InDelta(t, 172, int(got.B), 1)
	assert.NotEqual(t, "#313695", cs.Color(3.3))
	assert.NotEqual(t, "#4575b4", cs.Color(3.3))
}

func TestColorScaleMonotonicByBreakpoint(t *testing.T) {
	cs := NewColorScale(Breakpoints)

	prev := cs.Bucket(2.8)
	for temp := 2.8; temp <= 14.0; temp += 0.05 {
		b := cs.Bucket(temp)
		assert.GreaterOrEqual(t, b, prev, "temp %v", temp)
		prev = b
	}
	assert.Equal(t, 0, cs.Bucket(2.8))
	assert.Equal(t, 4, cs.Bucket(8.0))
	assert.Equal(t, 9, cs.Bucket(14.0))
}

func TestDecadeTicks(t *testing.T) {
	assert.Equal(t, []int{1760, 1770, 1780}, DecadeTicks(1753, 1789))
	assert.Equal(t, []int{1750, 1760}, DecadeTicks(1750, 1760))
	assert.Empty(t, DecadeTicks(1751, 1759))

	ticks := DecadeTicks(1753, 2015)
	require.Len(t, ticks, 26)
	assert.Equal(t, 1760, ticks[0])
	assert.Equal(t, 2010, ticks[len(ticks)-1])
}

func TestNewScalesWidth(t *testing.T) {
	ds := &climate.Dataset{BaseTemperature: 8.66}
	for y := 1753; y <= 1754; y++ {
		for m := 1; m <= 12; m++ {
			ds.MonthlyVariance = append(ds.MonthlyVariance, climate.Observation{Year: y, Month: m})
		}
	}
	ds.MonthlyVariance = append(ds.MonthlyVariance, climate.Observation{Year: 1755, Month: 1})

	sc, ok := NewScales(ds)
	require.True(t, ok)
	assert.Equal(t, 15.0, sc.Width)
	assert.Equal(t, 396.0, sc.Height)
	assert.Equal(t, 1753, sc.MinYear)
	assert.Equal(t, 1755, sc.MaxYear)

	_, ok = NewScales(&climate.Dataset{})
	assert.False(t, ok)
	_, ok = NewScales(nil)
	assert.False(t, ok)
}
