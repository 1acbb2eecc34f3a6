package tga

import "iter"

// pixelSize is the byte stride of one 24-bit pixel.
const pixelSize = 3

// Pixel is one pixel triplet in the byte order of the file, conventionally
// blue, green, red.
type Pixel [pixelSize]byte

// Pixels returns a sequence over the pixels of the image in storage order:
// left to right within a row, rows in the order they appear in the buffer
// (the format convention stores rows bottom to top). Each call produces a
// fresh sequence; the sequence yields exactly ImageDataLength() pixels.
func (img *Image) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		data := img.pixelData
		for i := 0; i+pixelSize <= len(data); i += pixelSize {
			if !yield(Pixel{data[i], data[i+1], data[i+2]}) {
				return
			}
		}
	}
}

// Scanlines returns a sequence of the Height() rows of the image in storage
// order. Each row is an owned copy of Width() pixels, so callers may retain
// or modify rows freely. Concatenating all rows reproduces Pixels() exactly.
func (img *Image) Scanlines() iter.Seq[[]Pixel] {
	return func(yield func([]Pixel) bool) {
		width := img.Width()
		stride := width * pixelSize
		data := img.pixelData
		for y := 0; y < img.Height(); y++ {
			off := y * stride
			row := make([]Pixel, width)
			for x := 0; x < width; x++ {
				i := off + x*pixelSize
				row[x] = Pixel{data[i], data[i+1], data[i+2]}
			}
			if !yield(row) {
				return
			}
		}
	}
}
