/*
Package tga implements reading and writing of Truevision TGA (TARGA) raster
images, restricted to 24-bit unmapped RGB data in the two common encodings:
uncompressed (type 2) and run-length encoded (type 10).

A decoded Image keeps every region of the file intact: the fixed 18-byte
header, the image identification field, the colour map bytes, the pixel data
(always fully expanded to width*height*3 bytes) and any extended
identification data trailing the pixels. Pixel triplets are carried in the
byte order of the file (conventionally blue-green-red, rows bottom to top)
and are never reordered.

Encoding always emits the canonical uncompressed layout and appends the
26-byte TRUEVISION-XFILE footer, so decode/encode round-trips are stable.
*/
package tga
