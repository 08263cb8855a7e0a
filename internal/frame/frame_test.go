package frame

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"startracker/internal/starerr"
)

func writeRawFile(t *testing.T, rows, cols int, samples []uint16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.raw")

	buf := make([]byte, rows*cols*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], s)
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestLoadShiftsRawSamplesBy4Bits(t *testing.T) {
	samples := []uint16{0, 16, 4095, 4080}
	path := writeRawFile(t, 2, 2, samples)

	f, err := Load(path, 2, 2)
	require.NoError(t, err)

	require.Equal(t, uint8(0), f.At(0, 0))
	require.Equal(t, uint8(1), f.At(1, 0))
	require.Equal(t, uint8(255), f.At(0, 1))
	require.Equal(t, uint8(255), f.At(1, 1))
}

func TestLoadTruncatedFileIsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.raw")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o644))

	_, err := Load(path, 10, 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, starerr.ErrIO))
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.raw"), 4, 4)
	require.Error(t, err)
	require.True(t, errors.Is(err, starerr.ErrIO))
}

func TestRowIsAContiguousSpan(t *testing.T) {
	f := NewFrame(3, 4)
	f.Set(2, 1, 9)
	row := f.Row(1)
	require.Len(t, row, 4)
	require.Equal(t, uint8(9), row[2])
}
