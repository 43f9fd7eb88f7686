package types

import "fmt"

// ImageInfo holds the image properties a picture block carries alongside
// the raw file bytes.
//
// ImageInfo is produced by probing an image file's header without
// decoding pixel data. It is immutable once produced.
type ImageInfo struct {
	// MIME type of the image
	MIMEType string // "image/png", "image/jpeg"

	// Dimensions in pixels
	Width  uint32
	Height uint32

	// Color depth in bits per pixel
	ColorDepth uint32

	// Pixel layout of the stored image
	PixelFormat PixelFormat
}

// String returns a human-readable description of the image.
//
// Example output: "PNG 1200x1200 RGB8 (24-bit)"
func (i ImageInfo) String() string {
	return fmt.Sprintf("%s %dx%d %s (%d-bit)",
		mimeLabel(i.MIMEType), i.Width, i.Height, i.PixelFormat, i.ColorDepth)
}

// PixelFormat identifies how an image stores its pixels: the channel
// layout and the bit depth per channel.
//
// PNG defines grayscale, grayscale+alpha, RGB, RGBA, and palette-indexed
// layouts at several bit depths; JPEG adds CMYK. The format determines
// the color depth recorded in the picture block.
type PixelFormat int

const (
	// PixelUnknown represents an unrecognized pixel layout.
	PixelUnknown PixelFormat = iota // Unknown

	// Grayscale, one channel
	PixelGray1  // Gray1
	PixelGray2  // Gray2
	PixelGray4  // Gray4
	PixelGray8  // Gray8
	PixelGray16 // Gray16

	// Grayscale with alpha, two channels
	PixelGrayAlpha8  // GrayAlpha8
	PixelGrayAlpha16 // GrayAlpha16

	// Palette-indexed, one channel of palette indices
	PixelIndexed1 // Indexed1
	PixelIndexed2 // Indexed2
	PixelIndexed4 // Indexed4
	PixelIndexed8 // Indexed8

	// Truecolor, three channels
	PixelRGB8  // RGB8
	PixelRGB16 // RGB16

	// Truecolor with alpha, four channels
	PixelRGBA8  // RGBA8
	PixelRGBA16 // RGBA16

	// CMYK, four channels (JPEG only, unsupported for picture blocks)
	PixelCMYK8 // CMYK8
)

// String returns the pixel format name.
func (f PixelFormat) String() string {
	switch f {
	case PixelGray1:
		return "Gray1"
	case PixelGray2:
		return "Gray2"
	case PixelGray4:
		return "Gray4"
	case PixelGray8:
		return "Gray8"
	case PixelGray16:
		return "Gray16"
	case PixelGrayAlpha8:
		return "GrayAlpha8"
	case PixelGrayAlpha16:
		return "GrayAlpha16"
	case PixelIndexed1:
		return "Indexed1"
	case PixelIndexed2:
		return "Indexed2"
	case PixelIndexed4:
		return "Indexed4"
	case PixelIndexed8:
		return "Indexed8"
	case PixelRGB8:
		return "RGB8"
	case PixelRGB16:
		return "RGB16"
	case PixelRGBA8:
		return "RGBA8"
	case PixelRGBA16:
		return "RGBA16"
	case PixelCMYK8:
		return "CMYK8"
	default:
		return "Unknown"
	}
}

// Channels returns the number of channels per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case PixelGray1, PixelGray2, PixelGray4, PixelGray8, PixelGray16,
		PixelIndexed1, PixelIndexed2, PixelIndexed4, PixelIndexed8:
		return 1
	case PixelGrayAlpha8, PixelGrayAlpha16:
		return 2
	case PixelRGB8, PixelRGB16:
		return 3
	case PixelRGBA8, PixelRGBA16, PixelCMYK8:
		return 4
	default:
		return 0
	}
}

// BitsPerChannel returns the bit depth of a single channel.
func (f PixelFormat) BitsPerChannel() int {
	switch f {
	case PixelGray1, PixelIndexed1:
		return 1
	case PixelGray2, PixelIndexed2:
		return 2
	case PixelGray4, PixelIndexed4:
		return 4
	case PixelGray8, PixelGrayAlpha8, PixelIndexed8, PixelRGB8, PixelRGBA8, PixelCMYK8:
		return 8
	case PixelGray16, PixelGrayAlpha16, PixelRGB16, PixelRGBA16:
		return 16
	default:
		return 0
	}
}

// BitsPerPixel returns the total bit depth of a pixel, the value stored
// in the picture block's color depth field.
func (f PixelFormat) BitsPerPixel() int {
	return f.Channels() * f.BitsPerChannel()
}

// Supported reports whether pictures can be built from images stored in
// this pixel format. CMYK has no defined color depth representation in
// the block's depth field and is rejected.
func (f PixelFormat) Supported() bool {
	switch f {
	case PixelUnknown, PixelCMYK8:
		return false
	default:
		return true
	}
}
