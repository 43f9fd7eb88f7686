package probe

import (
	"fmt"

	binutil "github.com/aswild/ogg-coverart/internal/binary"
	"github.com/aswild/ogg-coverart/internal/types"
)

func init() {
	register(types.FormatPNG, probePNG)
}

// PNG color type values from the PNG specification.
const (
	pngColorGray      = 0
	pngColorRGB       = 2
	pngColorIndexed   = 3
	pngColorGrayAlpha = 4
	pngColorRGBA      = 6
)

// probePNG reads the IHDR chunk, which the PNG spec requires to be the
// first chunk in the file: width, height, bit depth, and color type.
func probePNG(data []byte) (*types.ImageInfo, error) {
	r := binutil.NewReader(data)

	// Signature already matched during detection
	if err := r.Skip(8, "PNG signature"); err != nil {
		return nil, corruptedPNG(r, "truncated signature")
	}

	chunkLength, err := binutil.ReadValue[uint32](r, "IHDR chunk length")
	if err != nil {
		return nil, corruptedPNG(r, "truncated chunk header")
	}

	chunkType, err := r.ReadString(4, "IHDR chunk type")
	if err != nil {
		return nil, corruptedPNG(r, "truncated chunk header")
	}
	if chunkType != "IHDR" {
		return nil, corruptedPNG(r, fmt.Sprintf("first chunk is %q, want IHDR", chunkType))
	}
	if chunkLength < 13 {
		return nil, corruptedPNG(r, fmt.Sprintf("IHDR length %d, want at least 13", chunkLength))
	}

	width, err := binutil.ReadValue[uint32](r, "width")
	if err != nil {
		return nil, corruptedPNG(r, "truncated IHDR")
	}
	height, err := binutil.ReadValue[uint32](r, "height")
	if err != nil {
		return nil, corruptedPNG(r, "truncated IHDR")
	}
	bitDepth, err := binutil.ReadValue[uint8](r, "bit depth")
	if err != nil {
		return nil, corruptedPNG(r, "truncated IHDR")
	}
	colorType, err := binutil.ReadValue[uint8](r, "color type")
	if err != nil {
		return nil, corruptedPNG(r, "truncated IHDR")
	}

	if width == 0 || height == 0 {
		return nil, corruptedPNG(r, "zero image dimension")
	}

	format := pngPixelFormat(colorType, bitDepth)
	if format == types.PixelUnknown {
		return nil, corruptedPNG(r,
			fmt.Sprintf("invalid color type %d / bit depth %d combination", colorType, bitDepth))
	}

	return &types.ImageInfo{
		MIMEType:    types.FormatPNG.MIMEType(),
		Width:       width,
		Height:      height,
		ColorDepth:  uint32(format.BitsPerPixel()),
		PixelFormat: format,
	}, nil
}

// pngPixelFormat maps the IHDR color type and bit depth to a pixel
// format. Only the combinations the PNG spec allows are accepted.
func pngPixelFormat(colorType, bitDepth uint8) types.PixelFormat {
	switch colorType {
	case pngColorGray:
		switch bitDepth {
		case 1:
			return types.PixelGray1
		case 2:
			return types.PixelGray2
		case 4:
			return types.PixelGray4
		case 8:
			return types.PixelGray8
		case 16:
			return types.PixelGray16
		}
	case pngColorRGB:
		switch bitDepth {
		case 8:
			return types.PixelRGB8
		case 16:
			return types.PixelRGB16
		}
	case pngColorIndexed:
		switch bitDepth {
		case 1:
			return types.PixelIndexed1
		case 2:
			return types.PixelIndexed2
		case 4:
			return types.PixelIndexed4
		case 8:
			return types.PixelIndexed8
		}
	case pngColorGrayAlpha:
		switch bitDepth {
		case 8:
			return types.PixelGrayAlpha8
		case 16:
			return types.PixelGrayAlpha16
		}
	case pngColorRGBA:
		switch bitDepth {
		case 8:
			return types.PixelRGBA8
		case 16:
			return types.PixelRGBA16
		}
	}
	return types.PixelUnknown
}

func corruptedPNG(r *binutil.Reader, reason string) error {
	return &types.CorruptedImageError{
		Format: types.FormatPNG,
		Offset: r.Offset(),
		Reason: reason,
	}
}
