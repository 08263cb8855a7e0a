// Package frame provides the raw-image loader and the plain 2D pixel
// buffer types used throughout the extraction pipeline. A Frame is
// nothing more than a (rows, cols) grid of bytes with row-major
// indexing and no inheritance, in place of an OpenCV Mat.
package frame

import (
	"encoding/binary"
	"fmt"
	"os"

	"startracker/internal/starerr"
)

// Frame is an 8-bit grayscale image, row-major, immutable after Load.
type Frame struct {
	Rows, Cols int
	Pix        []uint8 // len == Rows*Cols, pixel (x,y) at Pix[y*Cols+x]
}

// NewFrame allocates a zeroed frame of the given dimensions.
func NewFrame(rows, cols int) *Frame {
	return &Frame{Rows: rows, Cols: cols, Pix: make([]uint8, rows*cols)}
}

// At returns the pixel value at column x, row y.
func (f *Frame) At(x, y int) uint8 {
	return f.Pix[y*f.Cols+x]
}

// Set assigns the pixel value at column x, row y.
func (f *Frame) Set(x, y int, v uint8) {
	f.Pix[y*f.Cols+x] = v
}

// Row returns the row span for row y, a slice into the underlying buffer.
// Inner loops should index within one row span at a time rather than
// computing y*Cols+x repeatedly.
func (f *Frame) Row(y int) []uint8 {
	return f.Pix[y*f.Cols : (y+1)*f.Cols]
}

// DefaultRows and DefaultCols match the calibrated camera's native
// sensor resolution.
const (
	DefaultRows = 1944
	DefaultCols = 2592
)

// Load reads a binary file of rows*cols little-endian 16-bit values and
// keeps the high 8 bits (raw >> 4) as the 8-bit frame intensity. It
// fails with starerr.ErrIO if the file cannot be opened or is shorter
// than rows*cols samples.
func Load(path string, rows, cols int) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frame: read %s: %w", path, starerr.ErrIO)
	}

	want := rows * cols
	if len(data) < want*2 {
		return nil, fmt.Errorf("frame: %s has %d bytes, need %d: %w", path, len(data), want*2, starerr.ErrIO)
	}

	f := NewFrame(rows, cols)
	for i := 0; i < want; i++ {
		raw := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
		f.Pix[i] = uint8(raw >> 4)
	}
	return f, nil
}
