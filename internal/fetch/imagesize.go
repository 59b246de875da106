package fetch

import (
	"bytes"
	"encoding/binary"
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	gif87Header  = []byte("GIF87a")
	gif89Header  = []byte("GIF89a")
)

// ImageDimensions reads pixel width and height from the leading bytes of a
// PNG, GIF or JPEG stream without decoding the image. ok is false when the
// format is unrecognized or the data is truncated.
func ImageDimensions(data []byte) (width, height int, ok bool) {
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return pngDimensions(data)
	case bytes.HasPrefix(data, gif87Header), bytes.HasPrefix(data, gif89Header):
		return gifDimensions(data)
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return jpegDimensions(data)
	}
	return 0, 0, false
}

// pngDimensions reads the IHDR chunk, which is always first.
func pngDimensions(data []byte) (int, int, bool) {
	if len(data) < 24 {
		return 0, 0, false
	}
	if string(data[12:16]) != "IHDR" {
		return 0, 0, false
	}
	w := binary.BigEndian.Uint32(data[16:20])
	h := binary.BigEndian.Uint32(data[20:24])
	return int(w), int(h), true
}

// gifDimensions reads the logical screen descriptor.
func gifDimensions(data []byte) (int, int, bool) {
	if len(data) < 10 {
		return 0, 0, false
	}
	w := binary.LittleEndian.Uint16(data[6:8])
	h := binary.LittleEndian.Uint16(data[8:10])
	return int(w), int(h), true
}

// jpegDimensions walks the marker segments until a start-of-frame carries
// the dimensions.
func jpegDimensions(data []byte) (int, int, bool) {
	offset := 2
	for offset+9 < len(data) {
		if data[offset] != 0xFF {
			return 0, 0, false
		}
		marker := data[offset+1]
		// Padding bytes between segments.
		if marker == 0xFF {
			offset++
			continue
		}
		// Standalone markers without a length field.
		if marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7) {
			offset += 2
			continue
		}
		length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if length < 2 {
			return 0, 0, false
		}
		// SOF0..SOF15, excluding DHT/DAC/restart definitions.
		if marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC {
			if offset+9 > len(data) {
				return 0, 0, false
			}
			h := binary.BigEndian.Uint16(data[offset+5 : offset+7])
			w := binary.BigEndian.Uint16(data[offset+7 : offset+9])
			return int(w), int(h), true
		}
		offset += 2 + length
	}
	return 0, 0, false
}
