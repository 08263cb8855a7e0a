package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"startracker/internal/frame"
)

func setPixels(f *frame.Frame, pts [][2]int, v uint8) {
	for _, p := range pts {
		f.Set(p[0], p[1], v)
	}
}

func TestLabelSeparatesDisjointBlobs(t *testing.T) {
	f := frame.NewFrame(10, 10)
	setPixels(f, [][2]int{{1, 1}, {2, 1}, {1, 2}}, 100)
	setPixels(f, [][2]int{{7, 7}, {8, 7}, {7, 8}, {8, 8}}, 200)

	labelMap, stats := Label(f)

	require.Len(t, stats, 3) // background + 2 components
	require.Equal(t, 3, stats[1].Area)
	require.Equal(t, 4, stats[2].Area)

	require.Equal(t, labelMap.At(1, 1), labelMap.At(2, 1))
	require.NotEqual(t, labelMap.At(1, 1), labelMap.At(7, 7))
}

func TestLabelMergesDiagonalNeighbours(t *testing.T) {
	f := frame.NewFrame(5, 5)
	// A diagonal chain connected only through 8-neighbour adjacency.
	setPixels(f, [][2]int{{0, 0}, {1, 1}, {2, 2}}, 50)

	_, stats := Label(f)

	require.Len(t, stats, 2)
	require.Equal(t, 3, stats[1].Area)
}

func TestLabelAccumulatesWeightedMoments(t *testing.T) {
	f := frame.NewFrame(5, 5)
	f.Set(1, 1, 10)
	f.Set(2, 1, 30)

	_, stats := Label(f)

	require.Len(t, stats, 2)
	s := stats[1]
	require.Equal(t, int64(40), s.SumI)
	require.Equal(t, int64(1*10+2*30), s.SumXI)
	require.Equal(t, int64(1*10+1*30), s.SumYI)
}

func TestLabelOfEmptyFrameHasOnlyBackground(t *testing.T) {
	f := frame.NewFrame(4, 4)
	_, stats := Label(f)
	require.Len(t, stats, 1)
}
