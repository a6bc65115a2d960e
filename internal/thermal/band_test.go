package thermal_test

import (
	"testing"

	"github.com/coolhat/coolhatctl/internal/thermal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		temperature float64
		want        thermal.Band
	}{
		{-10, thermal.BandBelow40},
		{0, thermal.BandBelow40},
		{39.9, thermal.BandBelow40},
		{40, thermal.Band40To45},
		{44.9, thermal.Band40To45},
		{45, thermal.Band45To47},
		{46.5, thermal.Band45To47},
		{47, thermal.Band47To49},
		{48.999, thermal.Band47To49},
		{49, thermal.Band49To51},
		{50.2, thermal.Band49To51},
		{51, thermal.Band51To53},
		{52.9, thermal.Band51To53},
		{53, thermal.BandAbove53},
		{64, thermal.BandAbove53},
		{120, thermal.BandAbove53},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, thermal.Classify(c.temperature),
			"Classify(%v)", c.temperature)
	}
}

// A temperature exactly on a threshold must land in the higher band, and
// any value just below it in the lower one.
func TestClassifyBoundaries(t *testing.T) {
	const epsilon = 1e-9

	thresholds := []float64{40, 45, 47, 49, 51, 53}
	for i, threshold := range thresholds {
		upper := thermal.Band(i + 1)
		lower := thermal.Band(i)

		assert.Equal(t, upper, thermal.Classify(threshold), "at %v", threshold)
		assert.Equal(t, lower, thermal.Classify(threshold-epsilon), "just below %v", threshold)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	previous := thermal.Classify(-50)
	for temperature := -50.0; temperature <= 100; temperature += 0.1 {
		band := thermal.Classify(temperature)
		assert.GreaterOrEqual(t, band, previous, "at %v", temperature)
		previous = band
	}
}

func TestBandsOrderedAndComplete(t *testing.T) {
	bands := thermal.Bands()
	assert.Len(t, bands, thermal.BandCount)
	for i, band := range bands {
		assert.Equal(t, thermal.Band(i), band)
	}
	assert.Equal(t, thermal.MaxBand, bands[len(bands)-1])
}

func TestSettings(t *testing.T) {
	cases := []struct {
		band  thermal.Band
		level byte
		color thermal.RGB
	}{
		{thermal.BandBelow40, 0x00, thermal.RGB{0x00, 0x88, 0x00}},
		{thermal.Band40To45, 0x02, thermal.RGB{0x00, 0x44, 0x44}},
		{thermal.Band45To47, 0x04, thermal.RGB{0x00, 0x00, 0x88}},
		{thermal.Band47To49, 0x06, thermal.RGB{0x44, 0x00, 0x44}},
		{thermal.Band49To51, 0x08, thermal.RGB{0x88, 0x00, 0x00}},
		{thermal.Band51To53, 0x09, thermal.RGB{0xff, 0x00, 0x00}},
		{thermal.BandAbove53, 0x01, thermal.RGB{0xff, 0xff, 0xff}},
	}

	for _, c := range cases {
		s := c.band.Setting()
		assert.Equal(t, c.level, s.FanLevel, "%s fan level", c.band)
		assert.Equal(t, c.color, s.Color, "%s color", c.band)
	}
}

func TestSettingOutOfRangeFailsSafe(t *testing.T) {
	failSafe := thermal.MaxBand.Setting()
	assert.Equal(t, failSafe, thermal.Band(-1).Setting())
	assert.Equal(t, failSafe, thermal.Band(99).Setting())
}
