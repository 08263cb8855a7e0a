// Package identify implements the Pyramid star-identification algorithm
// of Mortari (2004): find a rigid 3-star triad consistent with the
// catalog, confirm it with a 4th star, then label the remainder.
package identify

import (
	"fmt"

	"startracker/internal/catalog"
	"startracker/internal/starerr"
	"startracker/pkg/vecmath"
)

// Unidentified marks a spot for which no catalog star was found.
const Unidentified int32 = -1

// MinSpots is the hard precondition of the Pyramid method: at least a
// triad plus one confirming star.
const MinSpots = 4

// Identify runs the Pyramid algorithm against vectors (one line of
// sight per extracted spot, same order) and returns a parallel list of
// catalog ids, Unidentified where no match was found.
func Identify(vectors []vecmath.Vec3, cat *catalog.Catalog, eps float64) ([]int32, error) {
	if cat == nil || len(cat.Features) == 0 {
		return nil, fmt.Errorf("identify: %w", starerr.ErrCatalog)
	}
	n := len(vectors)
	if n < MinSpots {
		return nil, fmt.Errorf("identify: %d spots, need at least %d: %w", n, MinSpots, starerr.ErrEmptyInput)
	}

	idList := make([]int32, n)
	for i := range idList {
		idList[i] = Unidentified
	}

	// Iteration order suggested by Mortari 2004.
	for dj := 1; dj < n-1; dj++ {
		for dk := 1; dk < n-dj; dk++ {
			for i := 0; i < n-dj-dk; i++ {
				j := i + dj
				k := j + dk

				hipI, hipJ, hipK, ok := findTriad(vectors[i], vectors[j], vectors[k], cat, eps)
				if !ok {
					continue
				}

				for idx := range idList {
					idList[idx] = Unidentified
				}
				idList[i] = hipI
				idList[j] = hipJ
				idList[k] = hipK

				if confirmFourth(vectors, i, j, k, hipI, hipJ, hipK, cat, eps, idList) {
					return idList, nil
				}
			}
		}
	}

	return idList, nil
}

// findTriad searches for a unique (hipI, hipJ, hipK) consistent with the
// three pairwise angles of vI, vJ, vK.
func findTriad(vI, vJ, vK vecmath.Vec3, cat *catalog.Catalog, eps float64) (hipI, hipJ, hipK int32, ok bool) {
	thetaIJ := vI.AngleDeg(vJ)
	thetaIK := vI.AngleDeg(vK)
	thetaJK := vJ.AngleDeg(vK)

	listIJ := cat.Range(thetaIJ-eps, thetaIJ+eps)
	if len(listIJ) == 0 {
		return 0, 0, 0, false
	}
	listIK := cat.Range(thetaIK-eps, thetaIK+eps)
	if len(listIK) == 0 {
		return 0, 0, 0, false
	}
	listJK := cat.Range(thetaJK-eps, thetaJK+eps)
	if len(listJK) == 0 {
		return 0, 0, 0, false
	}

	count := 0
	for _, fIJ := range listIJ {
		for _, fIK := range listIK {
			var tempI, tempJ, tempK int32
			switch {
			case fIJ.ID1 == fIK.ID1 || fIJ.ID2 == fIK.ID1:
				tempI = fIK.ID1
				tempJ = other(fIJ, tempI)
				tempK = fIK.ID2
			case fIJ.ID1 == fIK.ID2 || fIJ.ID2 == fIK.ID2:
				tempI = fIK.ID2
				tempJ = other(fIJ, tempI)
				tempK = fIK.ID1
			default:
				continue
			}

			for _, fJK := range listJK {
				if (fJK.ID1 == tempK || fJK.ID2 == tempK) && (fJK.ID1 == tempJ || fJK.ID2 == tempJ) {
					hipI, hipJ, hipK = tempI, tempJ, tempK
					count++
					break
				}
			}
		}
	}

	return hipI, hipJ, hipK, count == 1
}

// confirmFourth walks every remaining spot, searching for a unique
// catalog star consistent with the confirmed triad. Every remaining
// spot is visited: each one with a unique match gets idList[r] set, and
// the result is true if at least one remaining spot was identified.
func confirmFourth(vectors []vecmath.Vec3, i, j, k int, hipI, hipJ, hipK int32, cat *catalog.Catalog, eps float64, idList []int32) bool {
	n := len(vectors)
	completed := false

	for r := 0; r < n; r++ {
		if r == i || r == j || r == k {
			continue
		}

		thetaIR := vectors[i].AngleDeg(vectors[r])
		thetaJR := vectors[j].AngleDeg(vectors[r])
		thetaKR := vectors[k].AngleDeg(vectors[r])

		listIR := cat.RangeForHip(thetaIR-eps, thetaIR+eps, hipI)
		if len(listIR) == 0 {
			continue
		}
		listJR := cat.RangeForHip(thetaJR-eps, thetaJR+eps, hipJ)
		if len(listJR) == 0 {
			continue
		}
		listKR := cat.RangeForHip(thetaKR-eps, thetaKR+eps, hipK)
		if len(listKR) == 0 {
			continue
		}

		count := 0
		var idCheck int32
		for _, fIR := range listIR {
			candidate := other(fIR, hipI)

			inJR := false
			for _, fJR := range listJR {
				if fJR.ID1 == candidate || fJR.ID2 == candidate {
					inJR = true
					break
				}
			}
			if !inJR {
				continue
			}

			for _, fKR := range listKR {
				if fKR.ID1 == candidate || fKR.ID2 == candidate {
					count++
					idCheck = candidate
					break
				}
			}
		}

		if count == 1 {
			idList[r] = idCheck
			completed = true
		}
	}

	return completed
}

// other returns the endpoint of f that is not known.
func other(f catalog.Feature, known int32) int32 {
	if f.ID1 == known {
		return f.ID2
	}
	return f.ID1
}
