package coverart

import (
	"github.com/aswild/ogg-coverart/internal/probe"
	"github.com/aswild/ogg-coverart/internal/types"
)

// ImageInfo is an alias to types.ImageInfo.
// Re-exporting from internal/types to keep the public API in one package.
type ImageInfo = types.ImageInfo

// PixelFormat is an alias to types.PixelFormat.
// Re-exporting from internal/types to keep the public API in one package.
type PixelFormat = types.PixelFormat

// Re-export all pixel format constants
const (
	PixelUnknown     = types.PixelUnknown
	PixelGray1       = types.PixelGray1
	PixelGray2       = types.PixelGray2
	PixelGray4       = types.PixelGray4
	PixelGray8       = types.PixelGray8
	PixelGray16      = types.PixelGray16
	PixelGrayAlpha8  = types.PixelGrayAlpha8
	PixelGrayAlpha16 = types.PixelGrayAlpha16
	PixelIndexed1    = types.PixelIndexed1
	PixelIndexed2    = types.PixelIndexed2
	PixelIndexed4    = types.PixelIndexed4
	PixelIndexed8    = types.PixelIndexed8
	PixelRGB8        = types.PixelRGB8
	PixelRGB16       = types.PixelRGB16
	PixelRGBA8       = types.PixelRGBA8
	PixelRGBA16      = types.PixelRGBA16
	PixelCMYK8       = types.PixelCMYK8
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to keep the public API in one package.
type Format = types.Format

// Re-export all image format constants
const (
	FormatUnknown = types.FormatUnknown
	FormatPNG     = types.FormatPNG
	FormatJPEG    = types.FormatJPEG
)

// DetectFormat identifies an image format from its magic bytes.
//
// It inspects only the first few bytes of data and returns
// FormatUnknown when no known signature matches.
func DetectFormat(data []byte) Format {
	return types.DetectFormat(data)
}

// Probe reads image metadata (dimensions, color depth, pixel format)
// from the headers of an encoded image without decoding pixel data.
//
// Supported formats: PNG (IHDR chunk) and JPEG (SOF frame header).
// Unrecognized data returns an UnsupportedImageError; recognized but
// malformed data returns a CorruptedImageError.
//
// Example:
//
//	info, err := coverart.Probe(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%dx%d %s\n", info.Width, info.Height, info.PixelFormat)
func Probe(data []byte) (*ImageInfo, error) {
	return probe.Probe(data)
}
