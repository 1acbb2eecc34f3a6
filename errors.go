package tga

import "errors"

var (
	// ErrIncompleteHeader indicates the source holds fewer than 18 header bytes.
	ErrIncompleteHeader = errors.New("incomplete TGA header")
	// ErrCorruptHeader indicates the header read itself failed.
	ErrCorruptHeader = errors.New("corrupt TGA header")
	// ErrUnsupportedFormat indicates a type code outside {2, 10} or a bit depth other than 24.
	ErrUnsupportedFormat = errors.New("unsupported TGA format")
	// ErrIncompleteIDString indicates the source ended inside the identification field.
	ErrIncompleteIDString = errors.New("incomplete image identification")
	// ErrCorruptIDString indicates the identification read failed.
	ErrCorruptIDString = errors.New("corrupt image identification")
	// ErrIncompleteColourMap indicates the source ended inside the colour map.
	ErrIncompleteColourMap = errors.New("incomplete colour map")
	// ErrCorruptColourMap indicates the colour map read failed.
	ErrCorruptColourMap = errors.New("corrupt colour map")
	// ErrIncompleteImageData indicates the source ended before the declared pixel data size.
	ErrIncompleteImageData = errors.New("incomplete image data")
	// ErrCorruptImageData indicates the image data read failed or the packet stream is malformed.
	ErrCorruptImageData = errors.New("corrupt image data")
	// ErrWriteHeader indicates writing the header failed.
	ErrWriteHeader = errors.New("writing header failed")
	// ErrWriteIDString indicates writing the identification field failed.
	ErrWriteIDString = errors.New("writing image identification failed")
	// ErrWriteColourMap indicates writing the colour map failed.
	ErrWriteColourMap = errors.New("writing colour map failed")
	// ErrWriteImageData indicates writing the pixel data failed.
	ErrWriteImageData = errors.New("writing image data failed")
	// ErrWriteExtendedID indicates writing the extended identification failed.
	ErrWriteExtendedID = errors.New("writing extended identification failed")
	// ErrWriteFooter indicates writing the footer failed.
	ErrWriteFooter = errors.New("writing footer failed")
)
