package fetch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(width, height uint32) []byte {
	data := make([]byte, 24)
	copy(data, pngSignature)
	binary.BigEndian.PutUint32(data[8:12], 13)
	copy(data[12:16], "IHDR")
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	return data
}

func gifBytes(width, height uint16) []byte {
	data := make([]byte, 10)
	copy(data, gif89Header)
	binary.LittleEndian.PutUint16(data[6:8], width)
	binary.LittleEndian.PutUint16(data[8:10], height)
	return data
}

// jpegBytes builds a minimal stream: SOI, an APP0 segment, then an SOF0
// frame header carrying the dimensions.
func jpegBytes(width, height uint16) []byte {
	data := []byte{0xFF, 0xD8}

	app0 := make([]byte, 18)
	app0[0], app0[1] = 0xFF, 0xE0
	binary.BigEndian.PutUint16(app0[2:4], 16)
	data = append(data, app0...)

	sof := make([]byte, 19)
	sof[0], sof[1] = 0xFF, 0xC0
	binary.BigEndian.PutUint16(sof[2:4], 17)
	sof[4] = 8
	binary.BigEndian.PutUint16(sof[5:7], height)
	binary.BigEndian.PutUint16(sof[7:9], width)
	return append(data, sof...)
}

func TestImageDimensions(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		width  int
		height int
		ok     bool
	}{
		{"png", pngBytes(640, 480), 640, 480, true},
		{"gif", gifBytes(320, 240), 320, 240, true},
		{"jpeg", jpegBytes(1024, 768), 1024, 768, true},
		{"truncated png", pngBytes(640, 480)[:12], 0, 0, false},
		{"truncated jpeg", jpegBytes(1024, 768)[:6], 0, 0, false},
		{"unknown format", []byte("BM some bitmap"), 0, 0, false},
		{"empty", nil, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, ok := ImageDimensions(tt.data)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)
		})
	}
}
