package legacy

import (
	"fmt"

	"startracker/internal/starerr"
	"startracker/pkg/vecmath"
)

// Unidentified marks a spot with no corroborated hip.
const Unidentified int32 = -1

// spotFeature is one pairwise angle between two input spots, indexed
// by spot position (not catalog hip).
type spotFeature struct {
	i, j  int
	theta float64
}

// Identify2Star runs the legacy two-star voting identifier: every
// pairwise angle among the input vectors is range-queried against the
// legacy store, candidate hips accumulate votes per spot, each spot
// takes its top-voted hip, and spots are iteratively demoted until the
// survivors corroborate each other's pairwise angles.
//
// The spot with the fewest corroborating votes is found by value
// (minIndexOf), not by an iterator comparison that would always pick
// index 0 regardless of vote count.
func Identify2Star(vectors []vecmath.Vec3, store *Store, eps float64) ([]int32, error) {
	n := len(vectors)
	if n < 2 {
		return nil, fmt.Errorf("legacy: %d spots, need at least 2: %w", n, starerr.ErrEmptyInput)
	}

	features := pairwiseFeatures(vectors)

	idTable := make([]map[int32]int, n)
	for i := range idTable {
		idTable[i] = make(map[int32]int)
	}

	for _, feat := range features {
		rows, err := store.RangeTheta(feat.theta-eps, feat.theta+eps)
		if err != nil {
			return nil, fmt.Errorf("legacy: %w", err)
		}
		for _, row := range rows {
			idTable[feat.i][row.Hip1]++
			idTable[feat.i][row.Hip2]++
			idTable[feat.j][row.Hip1]++
			idTable[feat.j][row.Hip2]++
		}
	}

	idList := make([]int32, n)
	falseStars := 0
	for i, table := range idTable {
		hip, ok := topVoted(table)
		if !ok {
			idList[i] = Unidentified
			falseStars++
			continue
		}
		idList[i] = hip
	}

	votes := make([]int, n)
	unidentified := 0
	for unidentified < n-falseStars-1 {
		for i := range votes {
			votes[i] = 0
		}

		for i := 0; i < n-1; i++ {
			if idList[i] == Unidentified {
				votes[i] = n
				continue
			}
			for j := i + 1; j < n; j++ {
				if idList[j] == Unidentified {
					votes[j] = n
					continue
				}

				theta, ok, err := store.ExactPair(idList[i], idList[j])
				if err != nil {
					return nil, fmt.Errorf("legacy: %w", err)
				}
				if !ok {
					continue
				}

				var imageTheta float64
				for _, feat := range features {
					if feat.i == i && feat.j == j {
						imageTheta = feat.theta
						break
					}
				}

				if absf(theta-imageTheta) <= eps {
					votes[i]++
					votes[j]++
				}
			}
		}

		minIndex := minIndexOf(votes)
		unidentified = votes[minIndex]

		if unidentified < n-falseStars-1 {
			delete(idTable[minIndex], idList[minIndex])
			hip, ok := topVoted(idTable[minIndex])
			if !ok {
				idList[minIndex] = Unidentified
				falseStars++
			} else {
				idList[minIndex] = hip
			}
		}
	}

	for i := range idList {
		if votes[i] < n-falseStars-1 {
			idList[i] = Unidentified
		}
	}

	return idList, nil
}

// pairwiseFeatures builds the C(n,2) spot-index feature list.
func pairwiseFeatures(vectors []vecmath.Vec3) []spotFeature {
	var out []spotFeature
	for i := 0; i < len(vectors)-1; i++ {
		for j := i + 1; j < len(vectors); j++ {
			out = append(out, spotFeature{i: i, j: j, theta: vectors[i].AngleDeg(vectors[j])})
		}
	}
	return out
}

// topVoted returns the hip with the highest vote count in table.
func topVoted(table map[int32]int) (int32, bool) {
	var best int32
	bestVotes := -1
	for hip, votes := range table {
		if votes > bestVotes {
			best, bestVotes = hip, votes
		}
	}
	return best, bestVotes >= 1
}

// minIndexOf returns the index of the smallest value in votes.
func minIndexOf(votes []int) int {
	min := 0
	for i, v := range votes {
		if v < votes[min] {
			min = i
		}
	}
	return min
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
