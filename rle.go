package tga

import (
	"fmt"
	"io"
)

// decodeRunLength decodes a type 10 image body. The identification field and
// colour map are consumed the same way as for type 2; the packet stream is
// then walked twice: one pass to size and validate it, one pass to expand it.
func decodeRunLength(r io.Reader, header Header) (*Image, error) {
	if header.BitsPerPixel != 24 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, header.BitsPerPixel)
	}

	id, colourMap, err := readPreamble(r, header)
	if err != nil {
		return nil, err
	}

	// The packet region is not self-delimiting, so everything up to EOF is
	// pulled in and split after the stream has been measured.
	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImageData, err)
	}

	end, err := measurePackets(rest, header.imageSize())
	if err != nil {
		return nil, err
	}

	pixelData := expandPackets(rest[:end], header.imageSize())

	return &Image{
		header:     header,
		id:         id,
		colourMap:  colourMap,
		pixelData:  pixelData,
		extendedID: stripFooter(rest[end:]),
	}, nil
}

// measurePackets walks whole packets from the start of data until their
// expanded output reaches exactly size bytes, returning the input offset at
// which that happens. Input exhausted before the target is incomplete; a
// packet carrying the output past the target means the stream disagrees with
// the header and is rejected outright.
func measurePackets(data []byte, size int) (end int, err error) {
	total := 0
	i := 0
	for total < size {
		if i >= len(data) {
			return 0, fmt.Errorf("%w: have %d, need %d", ErrIncompleteImageData, total, size)
		}
		p := data[i]
		count := int(p&0x7f) + 1

		var consumed int
		if p&0x80 != 0 {
			consumed = 1 + pixelSize
		} else {
			consumed = 1 + pixelSize*count
		}
		if i+consumed > len(data) {
			return 0, fmt.Errorf("%w: have %d, need %d", ErrIncompleteImageData, total, size)
		}

		total += pixelSize * count
		i += consumed
	}
	if total != size {
		return 0, fmt.Errorf("%w: packet stream expands to %d bytes, header declares %d", ErrCorruptImageData, total, size)
	}

	return i, nil
}

// expandPackets decodes the packet span into a buffer of exactly size bytes.
// The span has already been validated by measurePackets, so the walk cannot
// run off either buffer.
func expandPackets(data []byte, size int) []byte {
	out := make([]byte, 0, size)
	i := 0
	for len(out) < size {
		p := data[i]
		count := int(p&0x7f) + 1
		i++

		if p&0x80 != 0 {
			pixel := data[i : i+pixelSize]
			i += pixelSize
			for j := 0; j < count; j++ {
				out = append(out, pixel...)
			}
		} else {
			out = append(out, data[i:i+pixelSize*count]...)
			i += pixelSize * count
		}
	}

	return out
}
