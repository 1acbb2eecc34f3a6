package tga

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// rawPackets encodes pixel data as literal (raw) packets of up to 128 pixels,
// the simplest logically equivalent run-length stream.
func rawPackets(pixels []byte) []byte {
	var buf bytes.Buffer
	for off := 0; off < len(pixels); off += 128 * pixelSize {
		end := off + 128*pixelSize
		if end > len(pixels) {
			end = len(pixels)
		}
		count := (end - off) / pixelSize
		buf.WriteByte(byte(count - 1))
		buf.Write(pixels[off:end])
	}
	return buf.Bytes()
}

// runPacket encodes count repetitions of one pixel as a single run packet.
func runPacket(count int, px Pixel) []byte {
	return append([]byte{0x80 | byte(count-1)}, px[:]...)
}

func TestDecodeRunLengthRunPackets(t *testing.T) {
	// 4x2 image built from two full-row runs.
	body := append(runPacket(4, Pixel{1, 2, 3}), runPacket(4, Pixel{9, 8, 7})...)
	file := buildTGA(Header{DataTypeCode: 10, Width: 4, Height: 2, BitsPerPixel: 24}, nil, nil, body, nil, false)

	img, err := DecodeBytes(file)
	require.NoError(t, err)

	want := append(uniformPixels(4, Pixel{1, 2, 3}), uniformPixels(4, Pixel{9, 8, 7})...)
	require.Equal(t, want, img.ImageData())
	require.Equal(t, 10, img.DataTypeCode())
	require.Equal(t, 8, img.ImageDataLength())
}

func TestDecodeRunLengthMixedPackets(t *testing.T) {
	// A run straddling a row boundary followed by a literal packet: packet
	// boundaries carry no row structure, only the total byte count does.
	literal := patternPixels(3)
	body := runPacket(5, Pixel{0xaa, 0xbb, 0xcc})
	body = append(body, byte(3-1))
	body = append(body, literal...)
	file := buildTGA(Header{DataTypeCode: 10, Width: 4, Height: 2, BitsPerPixel: 24}, nil, nil, body, nil, false)

	img, err := DecodeBytes(file)
	require.NoError(t, err)

	want := append(uniformPixels(5, Pixel{0xaa, 0xbb, 0xcc}), literal...)
	require.Equal(t, want, img.ImageData())
}

func TestDecodeRunLengthMaxCountPackets(t *testing.T) {
	// Count byte 0xff decodes to 128 repetitions, 0x7f to 128 literals.
	literal := patternPixels(128)
	body := append(runPacket(128, Pixel{5, 6, 7}), 0x7f)
	body = append(body, literal...)
	file := buildTGA(Header{DataTypeCode: 10, Width: 128, Height: 2, BitsPerPixel: 24}, nil, nil, body, nil, false)

	img, err := DecodeBytes(file)
	require.NoError(t, err)

	want := append(uniformPixels(128, Pixel{5, 6, 7}), literal...)
	require.Equal(t, want, img.ImageData())
}

func TestDecodeRunLengthMatchesUncompressed(t *testing.T) {
	pixels := patternPixels(17 * 5)

	plain := buildTGA(Header{DataTypeCode: 2, Width: 17, Height: 5, BitsPerPixel: 24}, nil, nil, pixels, nil, false)
	packed := buildTGA(Header{DataTypeCode: 10, Width: 17, Height: 5, BitsPerPixel: 24}, nil, nil, rawPackets(pixels), nil, false)

	plainImg, err := DecodeBytes(plain)
	require.NoError(t, err)
	packedImg, err := DecodeBytes(packed)
	require.NoError(t, err)

	require.Equal(t, plainImg.ImageData(), packedImg.ImageData())
}

func TestDecodeRunLengthTrailingRegions(t *testing.T) {
	extended := []byte("vendor block")
	body := runPacket(4, Pixel{1, 1, 1})
	file := buildTGA(Header{DataTypeCode: 10, Width: 2, Height: 2, BitsPerPixel: 24}, nil, nil, body, extended, true)

	img, err := DecodeBytes(file)
	require.NoError(t, err)
	require.Equal(t, extended, img.ExtendedImageIdentification())
}

func TestDecodeRunLengthTruncated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
	}{
		{name: "no-packets", body: nil},
		{name: "bare-packet-header", body: []byte{0x83}},
		{name: "run-packet-short-pixel", body: []byte{0x83, 1, 2}},
		{name: "literal-packet-short", body: []byte{0x02, 1, 2, 3, 4}},
		{name: "packets-stop-early", body: runPacket(2, Pixel{1, 2, 3})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			file := buildTGA(Header{DataTypeCode: 10, Width: 2, Height: 2, BitsPerPixel: 24}, nil, nil, tc.body, nil, false)
			_, err := DecodeBytes(file)
			if !errors.Is(err, ErrIncompleteImageData) {
				t.Fatalf("expected ErrIncompleteImageData, got %v", err)
			}
		})
	}
}

func TestDecodeRunLengthOverrun(t *testing.T) {
	// A 3-pixel run against a 2-pixel image cannot land on the declared size.
	body := runPacket(3, Pixel{1, 2, 3})
	file := buildTGA(Header{DataTypeCode: 10, Width: 2, Height: 1, BitsPerPixel: 24}, nil, nil, body, nil, false)

	_, err := DecodeBytes(file)
	require.ErrorIs(t, err, ErrCorruptImageData)
}

func TestDecodeRunLengthCorruptSource(t *testing.T) {
	body := runPacket(4, Pixel{1, 2, 3})
	file := buildTGA(Header{DataTypeCode: 10, Width: 2, Height: 2, BitsPerPixel: 24}, nil, nil, body, nil, false)

	src := &faultReader{data: file[:HeaderLength+2], err: errors.New("short circuit")}
	_, err := Decode(src)
	require.ErrorIs(t, err, ErrCorruptImageData)
}

func TestMeasurePackets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		size    int
		wantEnd int
		wantErr error
	}{
		{name: "empty-target", data: []byte{0xff}, size: 0, wantEnd: 0},
		{name: "single-run", data: runPacket(4, Pixel{1, 2, 3}), size: 12, wantEnd: 4},
		{name: "run-then-trailing", data: append(runPacket(4, Pixel{1, 2, 3}), 0xde, 0xad), size: 12, wantEnd: 4},
		{name: "literal", data: append([]byte{0x01}, patternPixels(2)...), size: 6, wantEnd: 7},
		{name: "short", data: runPacket(2, Pixel{1, 2, 3}), size: 12, wantErr: ErrIncompleteImageData},
		{name: "overrun", data: runPacket(5, Pixel{1, 2, 3}), size: 12, wantErr: ErrCorruptImageData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			end, err := measurePackets(tc.data, tc.size)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("measurePackets: %v", err)
			}
			if end != tc.wantEnd {
				t.Fatalf("measurePackets end = %d, want %d", end, tc.wantEnd)
			}
		})
	}
}
