package tga

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// HeaderLength is the fixed size of a TGA header in bytes.
	HeaderLength = 18

	// TypeUncompressedRGB is the data type code for unmapped uncompressed RGB images.
	TypeUncompressedRGB = 2
	// TypeRunLengthRGB is the data type code for unmapped run-length encoded RGB images.
	TypeRunLengthRGB = 10
)

// Header holds the 12 fields of the fixed 18-byte TGA header. Multi-byte
// fields are stored decoded; marshal writes them back little-endian at the
// same offsets they were read from.
type Header struct {
	// IDLength is the length of the image identification field in bytes.
	IDLength uint8
	// ColorMapType is 0 when no colour map is included and 1 when one is.
	ColorMapType uint8
	// DataTypeCode identifies the image encoding. Only 2 (uncompressed RGB)
	// and 10 (run-length encoded RGB) are supported by this package.
	DataTypeCode uint8
	// ColorMapOrigin is the index of the first colour map entry.
	ColorMapOrigin uint16
	// ColorMapLength is the number of colour map entries.
	ColorMapLength uint16
	// ColorMapDepth is the number of bits per colour map entry, always a
	// multiple of 8 (16, 24 or 32).
	ColorMapDepth uint8
	// XOrigin is the X coordinate of the lower left corner of the image.
	XOrigin uint16
	// YOrigin is the Y coordinate of the lower left corner of the image.
	YOrigin uint16
	// Width is the image width in pixels.
	Width uint16
	// Height is the image height in pixels.
	Height uint16
	// BitsPerPixel is the pixel depth. Only 24 is supported.
	BitsPerPixel uint8
	// ImageDescriptor carries the attribute bits and screen origin flags.
	ImageDescriptor uint8
}

// ParseHeader extracts a header from the first 18 bytes of buf. It performs
// no type or depth validation; the decoders reject unsupported formats.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLength {
		return Header{}, fmt.Errorf("%w: have %d, need %d", ErrIncompleteHeader, len(buf), HeaderLength)
	}

	return Header{
		IDLength:        buf[0],
		ColorMapType:    buf[1],
		DataTypeCode:    buf[2],
		ColorMapOrigin:  binary.LittleEndian.Uint16(buf[3:5]),
		ColorMapLength:  binary.LittleEndian.Uint16(buf[5:7]),
		ColorMapDepth:   buf[7],
		XOrigin:         binary.LittleEndian.Uint16(buf[8:10]),
		YOrigin:         binary.LittleEndian.Uint16(buf[10:12]),
		Width:           binary.LittleEndian.Uint16(buf[12:14]),
		Height:          binary.LittleEndian.Uint16(buf[14:16]),
		BitsPerPixel:    buf[16],
		ImageDescriptor: buf[17],
	}, nil
}

// readHeader reads and parses a header from the front of r.
func readHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderLength)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return Header{}, fmt.Errorf("%w: have %d, need %d", ErrIncompleteHeader, n, HeaderLength)
	}
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrCorruptHeader, err)
	}

	return ParseHeader(buf)
}

// marshal serializes the header back into its fixed 18-byte layout.
func (h Header) marshal() [HeaderLength]byte {
	var buf [HeaderLength]byte
	buf[0] = h.IDLength
	buf[1] = h.ColorMapType
	buf[2] = h.DataTypeCode
	binary.LittleEndian.PutUint16(buf[3:5], h.ColorMapOrigin)
	binary.LittleEndian.PutUint16(buf[5:7], h.ColorMapLength)
	buf[7] = h.ColorMapDepth
	binary.LittleEndian.PutUint16(buf[8:10], h.XOrigin)
	binary.LittleEndian.PutUint16(buf[10:12], h.YOrigin)
	binary.LittleEndian.PutUint16(buf[12:14], h.Width)
	binary.LittleEndian.PutUint16(buf[14:16], h.Height)
	buf[16] = h.BitsPerPixel
	buf[17] = h.ImageDescriptor
	return buf
}

// bytesPerPixel derives the pixel stride in bytes.
func (h Header) bytesPerPixel() int {
	return int(h.BitsPerPixel) / 8
}

// colourMapSize derives the colour map size in bytes. The colour map depth
// is always a multiple of 8, so the division is exact.
func (h Header) colourMapSize() int {
	return int(h.ColorMapLength) * (int(h.ColorMapDepth) / 8)
}

// imageSize derives the expanded pixel data size in bytes.
func (h Header) imageSize() int {
	return int(h.Width) * int(h.Height) * h.bytesPerPixel()
}
