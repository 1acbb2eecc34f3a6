package tga

import (
	"fmt"
	"io"
)

// Encode writes the canonical serialization of img to w: the 18-byte header,
// the identification field, the colour map, the pixel data (always
// uncompressed, whatever encoding the image was decoded from), the extended
// identification and finally the 26-byte footer signature. The emitted
// header's data type code is normalized to 2 so the output describes the
// uncompressed pixel data it carries.
func Encode(w io.Writer, img *Image) error {
	header := canonicalHeader(img)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}
	if _, err := w.Write(img.id); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteIDString, err)
	}
	if _, err := w.Write(img.colourMap); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteColourMap, err)
	}
	if _, err := w.Write(img.pixelData); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImageData, err)
	}
	if _, err := w.Write(img.extendedID); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExtendedID, err)
	}
	if _, err := w.Write(footerSignature); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFooter, err)
	}

	return nil
}

// Reader streams the same byte sequence Encode produces, a caller-paced
// chunk at a time. It implements io.Reader: each Read fills as much of the
// destination as it can, resumes where the previous call stopped, and
// reports io.EOF once every region has been drained.
type Reader struct {
	segments [segmentCount][]byte
	seg      int
	off      int
	header   [HeaderLength]byte
}

const segmentCount = 6

// NewReader returns a Reader positioned at the start of the canonical
// serialization of img. The image buffers are referenced, not copied.
func NewReader(img *Image) *Reader {
	r := &Reader{header: canonicalHeader(img)}
	r.segments = [segmentCount][]byte{
		r.header[:],
		img.id,
		img.colourMap,
		img.pixelData,
		img.extendedID,
		footerSignature,
	}
	return r
}

// Read fills p from the current position, crossing region boundaries as
// needed, and advances the cursor by the count returned.
func (r *Reader) Read(p []byte) (int, error) {
	total := 0
	for r.seg < segmentCount && total < len(p) {
		seg := r.segments[r.seg]
		if r.off >= len(seg) {
			r.seg++
			r.off = 0
			continue
		}
		n := copy(p[total:], seg[r.off:])
		r.off += n
		total += n
	}
	if total == 0 && r.seg >= segmentCount {
		return 0, io.EOF
	}

	return total, nil
}

// canonicalHeader serializes the image header with the data type code forced
// to the uncompressed encoding, matching the pixel data Encode emits.
func canonicalHeader(img *Image) [HeaderLength]byte {
	header := img.header
	header.DataTypeCode = TypeUncompressedRGB
	return header.marshal()
}
