// Package components implements 8-connectivity connected-component
// labelling with simultaneous weighted-moment accumulation, replacing
// the OpenCV connectedComponentsWithStats call of the original
// implementation with a plain two-pass union-find scan.
package components

import "startracker/internal/frame"

// LabelMap is a 2D grid of label indices, same shape as the source
// Frame. Label 0 denotes background.
type LabelMap struct {
	Rows, Cols int
	Labels     []uint16
}

// At returns the label at column x, row y.
func (m *LabelMap) At(x, y int) uint16 {
	return m.Labels[y*m.Cols+x]
}

// Stats holds the sufficient statistics for one connected component's
// intensity-weighted centroid: center = (sumXI/sumI, sumYI/sumI).
type Stats struct {
	Area  int
	SumXI int64
	SumYI int64
	SumI  int64
}

// Label performs 8-connectivity labelling of the thresholded frame.
// It returns the label map and a Stats slice indexed by label, where
// index 0 is always the (unused) background entry and indices 1..N are
// the components in ascending order of first appearance (row-major).
func Label(f *frame.Frame) (*LabelMap, []Stats) {
	rows, cols := f.Rows, f.Cols
	provisional := make([]int, rows*cols) // 0 = background, else provisional label id
	uf := newUnionFind()

	// Pass 1: assign provisional labels using already-seen 8-neighbours.
	for y := 0; y < rows; y++ {
		row := f.Row(y)
		for x := 0; x < cols; x++ {
			if row[x] == 0 {
				continue
			}

			var neighborLabels []int
			if x > 0 && y > 0 {
				if l := provisional[(y-1)*cols+x-1]; l != 0 { // NW
					neighborLabels = append(neighborLabels, l)
				}
			}
			if y > 0 {
				if l := provisional[(y-1)*cols+x]; l != 0 { // N
					neighborLabels = append(neighborLabels, l)
				}
			}
			if x < cols-1 && y > 0 {
				if l := provisional[(y-1)*cols+x+1]; l != 0 { // NE
					neighborLabels = append(neighborLabels, l)
				}
			}
			if x > 0 {
				if l := provisional[y*cols+x-1]; l != 0 { // W
					neighborLabels = append(neighborLabels, l)
				}
			}

			if len(neighborLabels) == 0 {
				provisional[y*cols+x] = uf.newLabel()
				continue
			}

			min := neighborLabels[0]
			for _, l := range neighborLabels[1:] {
				if l < min {
					min = l
				}
			}
			for _, l := range neighborLabels {
				uf.union(min, l)
			}
			provisional[y*cols+x] = min
		}
	}

	// Pass 2: resolve each pixel to its compacted root label and
	// accumulate weighted moments.
	rootToFinal := make(map[int]uint16)
	var stats []Stats
	stats = append(stats, Stats{}) // label 0, background, unused

	labels := make([]uint16, rows*cols)
	for y := 0; y < rows; y++ {
		row := f.Row(y)
		for x := 0; x < cols; x++ {
			prov := provisional[y*cols+x]
			if prov == 0 {
				continue
			}
			root := uf.find(prov)
			final, ok := rootToFinal[root]
			if !ok {
				stats = append(stats, Stats{})
				final = uint16(len(stats) - 1)
				rootToFinal[root] = final
			}

			p := int64(row[x])
			s := &stats[final]
			s.Area++
			s.SumXI += int64(x) * p
			s.SumYI += int64(y) * p
			s.SumI += p

			labels[y*cols+x] = final
		}
	}

	return &LabelMap{Rows: rows, Cols: cols, Labels: labels}, stats
}

// unionFind is a small disjoint-set structure over provisional label ids,
// allocated lazily as newLabel is called.
type unionFind struct {
	parent []int
}

func newUnionFind() *unionFind {
	// parent[0] is unused (0 means background); real labels start at 1.
	return &unionFind{parent: []int{0}}
}

func (u *unionFind) newLabel() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	return id
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // path halving
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}
