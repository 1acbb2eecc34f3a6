package tga

// Image is a fully decoded TGA image. It owns four byte regions in file
// order: the identification field, the colour map, the expanded pixel data
// and the extended identification trailing the pixels. An Image is never
// mutated after a decoder constructs it, so it may be shared freely between
// readers; accessors that return slices return the underlying buffers, which
// callers must treat as read-only.
type Image struct {
	header     Header
	id         []byte
	colourMap  []byte
	pixelData  []byte
	extendedID []byte
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return int(img.header.Width)
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return int(img.header.Height)
}

// BitsPerPixel returns the pixel depth, 24 for every image this package decodes.
func (img *Image) BitsPerPixel() int {
	return int(img.header.BitsPerPixel)
}

// ColorMapType returns 0 when the file carried no colour map and 1 when it did.
func (img *Image) ColorMapType() int {
	return int(img.header.ColorMapType)
}

// DataTypeCode returns the encoding the image was stored with: 2 for
// uncompressed, 10 for run-length encoded. The pixel data held by the Image
// is fully expanded either way.
func (img *Image) DataTypeCode() int {
	return int(img.header.DataTypeCode)
}

// Header returns a copy of the parsed header.
func (img *Image) Header() Header {
	return img.header
}

// ImageIdentification returns the free-form identification field that
// immediately follows the header.
func (img *Image) ImageIdentification() []byte {
	return img.id
}

// ColourMapData returns the colour map bytes, empty when ColorMapType is 0.
func (img *Image) ColourMapData() []byte {
	return img.colourMap
}

// ImageData returns the expanded pixel data, exactly
// Width()*Height()*3 bytes in the stored order.
func (img *Image) ImageData() []byte {
	return img.pixelData
}

// ExtendedImageIdentification returns the data trailing the pixel data,
// with the 26-byte footer signature stripped when one was present.
func (img *Image) ExtendedImageIdentification() []byte {
	return img.extendedID
}

// ImageDataLength returns the number of pixels in the image. It always
// equals Width()*Height().
func (img *Image) ImageDataLength() int {
	return len(img.pixelData) / pixelSize
}

// ImageDataLengthBytes returns the pixel data size in bytes,
// 3*ImageDataLength() for a 24-bit image.
func (img *Image) ImageDataLengthBytes() int {
	return len(img.pixelData)
}
