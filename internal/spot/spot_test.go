package spot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startracker/internal/components"
)

func TestFilterDropsAreasAtOrBelowMinimum(t *testing.T) {
	stats := []components.Stats{
		{}, // background
		{Area: 16, SumXI: 160, SumYI: 160, SumI: 16},  // exactly minArea: dropped
		{Area: 17, SumXI: 170, SumYI: 340, SumI: 17},  // above minArea: kept
	}

	spots := Filter(stats, 16)

	require.Len(t, spots, 1)
	assert.InDelta(t, 10.0, spots[0].Center.X, 1e-9)
	assert.InDelta(t, 20.0, spots[0].Center.Y, 1e-9)
	assert.Equal(t, uint32(17), spots[0].Area)
}

func TestFilterUsesCorrectedCentroidNotTheCopyPasteBug(t *testing.T) {
	// sumXI and sumYI intentionally differ: a regression of the
	// weightingX/weightingX bug would set both axes from sumXI.
	stats := []components.Stats{
		{},
		{Area: 20, SumXI: 100, SumYI: 400, SumI: 20},
	}

	spots := Filter(stats, 16)

	require.Len(t, spots, 1)
	assert.InDelta(t, 5.0, spots[0].Center.X, 1e-9)
	assert.InDelta(t, 20.0, spots[0].Center.Y, 1e-9)
}

func TestFilterSkipsZeroIntensityComponent(t *testing.T) {
	stats := []components.Stats{
		{},
		{Area: 20, SumXI: 0, SumYI: 0, SumI: 0},
	}
	assert.Empty(t, Filter(stats, 16))
}
