package frame

// DefaultThreshold is the default cutoff at or below which pixels are zeroed.
const DefaultThreshold = 64

// Threshold zeros every pixel at or below t, leaving pixels above t
// unchanged. The destination may be reused across calls (allocated once
// by the caller) to avoid a per-frame allocation.
func Threshold(dst *Frame, src *Frame, t uint8) {
	for i, p := range src.Pix {
		if p > t {
			dst.Pix[i] = p
		} else {
			dst.Pix[i] = 0
		}
	}
}

// ThresholdNew allocates and returns a new thresholded frame.
func ThresholdNew(src *Frame, t uint8) *Frame {
	dst := NewFrame(src.Rows, src.Cols)
	Threshold(dst, src, t)
	return dst
}
