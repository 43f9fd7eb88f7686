package probe

import (
	"fmt"

	binutil "github.com/aswild/ogg-coverart/internal/binary"
	"github.com/aswild/ogg-coverart/internal/types"
)

func init() {
	register(types.FormatJPEG, probeJPEG)
}

// JPEG marker bytes (the byte following 0xFF).
const (
	jpegMarkerSOI = 0xD8 // start of image
	jpegMarkerEOI = 0xD9 // end of image
	jpegMarkerSOS = 0xDA // start of scan
	jpegMarkerTEM = 0x01 // temporary, standalone
)

// probeJPEG scans segments until the frame header (SOF marker), which
// carries sample precision, dimensions, and the component count.
func probeJPEG(data []byte) (*types.ImageInfo, error) {
	r := binutil.NewReader(data)

	soi, err := r.ReadBytes(2, "SOI marker")
	if err != nil || soi[0] != 0xFF || soi[1] != jpegMarkerSOI {
		return nil, corruptedJPEG(r, "missing SOI marker")
	}

	for {
		prefix, err := binutil.ReadValue[uint8](r, "marker prefix")
		if err != nil {
			return nil, corruptedJPEG(r, "no frame header before end of data")
		}
		if prefix != 0xFF {
			return nil, corruptedJPEG(r, fmt.Sprintf("invalid marker prefix %#02x", prefix))
		}

		marker, err := binutil.ReadValue[uint8](r, "marker type")
		if err != nil {
			return nil, corruptedJPEG(r, "truncated marker")
		}

		// Skip fill bytes (0xFF padding before a marker)
		for marker == 0xFF {
			if marker, err = binutil.ReadValue[uint8](r, "marker type"); err != nil {
				return nil, corruptedJPEG(r, "truncated marker")
			}
		}

		// Standalone markers carry no length field
		if marker == jpegMarkerTEM || (marker >= 0xD0 && marker <= 0xD7) {
			continue
		}

		switch {
		case marker == jpegMarkerEOI:
			return nil, corruptedJPEG(r, "no frame header before EOI")

		case marker == jpegMarkerSOS:
			return nil, corruptedJPEG(r, "no frame header before scan data")

		case isSOFMarker(marker):
			return parseFrameHeader(r)

		default:
			length, err := binutil.ReadValue[uint16](r, "segment length")
			if err != nil {
				return nil, corruptedJPEG(r, "truncated segment length")
			}
			if length < 2 {
				return nil, corruptedJPEG(r, fmt.Sprintf("segment length %d is shorter than its own length field", length))
			}
			if err := r.Skip(int(length)-2, "segment data"); err != nil {
				return nil, corruptedJPEG(r, "truncated segment")
			}
		}
	}
}

// isSOFMarker reports whether marker starts a frame header. SOF markers
// occupy 0xC0-0xCF except DHT (0xC4), JPG (0xC8), and DAC (0xCC).
func isSOFMarker(marker uint8) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	return marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}

// parseFrameHeader reads the SOF payload: precision, height, width, and
// the number of components.
func parseFrameHeader(r *binutil.Reader) (*types.ImageInfo, error) {
	length, err := binutil.ReadValue[uint16](r, "frame header length")
	if err != nil {
		return nil, corruptedJPEG(r, "truncated frame header")
	}
	// Length covers itself plus precision(1), height(2), width(2), components(1)
	if length < 8 {
		return nil, corruptedJPEG(r, fmt.Sprintf("frame header length %d, want at least 8", length))
	}

	precision, err := binutil.ReadValue[uint8](r, "sample precision")
	if err != nil {
		return nil, corruptedJPEG(r, "truncated frame header")
	}
	height, err := binutil.ReadValue[uint16](r, "height")
	if err != nil {
		return nil, corruptedJPEG(r, "truncated frame header")
	}
	width, err := binutil.ReadValue[uint16](r, "width")
	if err != nil {
		return nil, corruptedJPEG(r, "truncated frame header")
	}
	components, err := binutil.ReadValue[uint8](r, "component count")
	if err != nil {
		return nil, corruptedJPEG(r, "truncated frame header")
	}

	return &types.ImageInfo{
		MIMEType:    types.FormatJPEG.MIMEType(),
		Width:       uint32(width),
		Height:      uint32(height),
		ColorDepth:  uint32(precision) * uint32(components),
		PixelFormat: jpegPixelFormat(precision, components),
	}, nil
}

// jpegPixelFormat maps the frame header's precision and component count
// to a pixel format. Three components are reported as RGB regardless of
// the stored color model (YCbCr decodes to RGB). Precisions other than
// 8 bits exist in the JPEG spec but not in cover art; they come back as
// PixelUnknown and are rejected at encode time.
func jpegPixelFormat(precision, components uint8) types.PixelFormat {
	if precision != 8 {
		return types.PixelUnknown
	}
	switch components {
	case 1:
		return types.PixelGray8
	case 3:
		return types.PixelRGB8
	case 4:
		return types.PixelCMYK8
	default:
		return types.PixelUnknown
	}
}

func corruptedJPEG(r *binutil.Reader, reason string) error {
	return &types.CorruptedImageError{
		Format: types.FormatJPEG,
		Offset: r.Offset(),
		Reason: reason,
	}
}
