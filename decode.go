package tga

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
)

// FooterLength is the size of the optional TRUEVISION-XFILE trailer.
const FooterLength = 26

// footerSignature is the full 26-byte trailer: two zeroed 4-byte extension
// and developer area offsets, the signature text and a terminating NUL.
var footerSignature = []byte("\x00\x00\x00\x00\x00\x00\x00\x00TRUEVISION-XFILE.\x00")

// Decode reads a complete TGA image from r. The header is parsed first and
// decoding dispatches on its data type code; type codes other than 2 and 10,
// and bit depths other than 24, are rejected with ErrUnsupportedFormat.
// Every error is terminal: no partial image is ever returned.
func Decode(r io.Reader) (*Image, error) {
	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	switch header.DataTypeCode {
	case TypeUncompressedRGB:
		return decodeUncompressed(r, header)
	case TypeRunLengthRGB:
		return decodeRunLength(r, header)
	default:
		return nil, fmt.Errorf("%w: data type code %d", ErrUnsupportedFormat, header.DataTypeCode)
	}
}

// DecodeBytes decodes a TGA image held entirely in memory. It yields the
// same result as Decode over any reader serving the same bytes.
func DecodeBytes(buf []byte) (*Image, error) {
	return Decode(bytes.NewReader(buf))
}

// DecodeConfig reads only the header from r and reports the image dimensions
// without decoding pixel data. Unsupported formats are rejected the same way
// Decode rejects them.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	if header.DataTypeCode != TypeUncompressedRGB && header.DataTypeCode != TypeRunLengthRGB {
		return image.Config{}, fmt.Errorf("%w: data type code %d", ErrUnsupportedFormat, header.DataTypeCode)
	}
	if header.BitsPerPixel != 24 {
		return image.Config{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, header.BitsPerPixel)
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.RGBAModel,
	}, nil
}

// decodeUncompressed decodes a type 2 image body: identification, colour
// map and raw pixel data are consumed at their declared sizes, anything left
// is extended identification.
func decodeUncompressed(r io.Reader, header Header) (*Image, error) {
	if header.BitsPerPixel != 24 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, header.BitsPerPixel)
	}

	id, colourMap, err := readPreamble(r, header)
	if err != nil {
		return nil, err
	}

	pixelData, err := readRegion(r, header.imageSize(), ErrIncompleteImageData, ErrCorruptImageData)
	if err != nil {
		return nil, err
	}

	trailing, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImageData, err)
	}

	return &Image{
		header:     header,
		id:         id,
		colourMap:  colourMap,
		pixelData:  pixelData,
		extendedID: stripFooter(trailing),
	}, nil
}

// readPreamble consumes the identification field and the colour map, the two
// regions shared by both decoders.
func readPreamble(r io.Reader, header Header) (id, colourMap []byte, err error) {
	id, err = readRegion(r, int(header.IDLength), ErrIncompleteIDString, ErrCorruptIDString)
	if err != nil {
		return nil, nil, err
	}

	colourMap, err = readRegion(r, header.colourMapSize(), ErrIncompleteColourMap, ErrCorruptColourMap)
	if err != nil {
		return nil, nil, err
	}

	return id, colourMap, nil
}

// readRegion reads exactly n bytes from r. Exhaustion before n bytes maps to
// incomplete with have/need counts; any other read fault maps to corrupt.
func readRegion(r io.Reader, n int, incomplete, corrupt error) ([]byte, error) {
	buf := make([]byte, n)
	have, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: have %d, need %d", incomplete, have, n)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", corrupt, err)
	}

	return buf, nil
}

// stripFooter removes the footer signature from the end of the trailing
// region when present. The footer is structural, not payload.
func stripFooter(trailing []byte) []byte {
	if n := len(trailing); n >= FooterLength && bytes.Equal(trailing[n-FooterLength:], footerSignature) {
		return trailing[:n-FooterLength]
	}
	return trailing
}
