package catalog

import "math"

// Range returns every feature whose theta lies in [thetaMin, thetaMax],
// found in O(1) expected time via the K-vector index. The result is the
// span of whole K-vector bins covering the query, so it may also hold
// features from the two boundary bins that lie just outside the range;
// no per-feature theta check is made. jb/jt are clamped to the valid
// K-vector index range; a query wholly outside the catalog's theta span
// returns nil.
func (c *Catalog) Range(thetaMin, thetaMax float64) []Feature {
	jb := int(math.Floor((thetaMin - c.Q) / c.M))
	jt := int(math.Floor((thetaMax-c.Q)/c.M)) + 1

	if jb < 0 {
		jb = 0
	}
	if jt > len(c.KVector)-1 {
		jt = len(c.KVector) - 1
	}
	if jb > jt {
		return nil
	}

	kb := c.KVector[jb] + 1
	kt := c.KVector[jt]

	if kb < 0 {
		kb = 0
	}
	if kt > len(c.Features)-1 {
		kt = len(c.Features) - 1
	}
	if kb > kt {
		return nil
	}

	return c.Features[kb : kt+1]
}

// RangeForHip is the hip-filtered variant of Range: it additionally
// keeps only features where hip is either endpoint.
func (c *Catalog) RangeForHip(thetaMin, thetaMax float64, hip int32) []Feature {
	candidates := c.Range(thetaMin, thetaMax)
	if len(candidates) == 0 {
		return nil
	}

	var out []Feature
	for _, feat := range candidates {
		if feat.ID1 == hip || feat.ID2 == hip {
			out = append(out, feat)
		}
	}
	return out
}
