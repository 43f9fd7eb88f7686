package types

import "bytes"

// Format represents the detected image file format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota // Unknown
	// FormatPNG represents PNG image files.
	FormatPNG // PNG
	// FormatJPEG represents JPEG image files.
	FormatJPEG // JPEG
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// MIMEType returns the MIME type recorded in picture blocks for this format.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return ""
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatPNG:
		return []string{".png"}
	case FormatJPEG:
		return []string{".jpg", ".jpeg"}
	default:
		return nil
	}
}

// File signatures (magic bytes).
var (
	pngSignature  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
)

// DetectFormat determines the image format by examining magic bytes.
//
// Detection looks only at the file signature at the start of the data;
// it does not validate the rest of the file structure. Returns
// FormatUnknown when no signature matches.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(data, pngSignature) {
		return FormatPNG
	}
	if bytes.HasPrefix(data, jpegSignature) {
		return FormatJPEG
	}
	return FormatUnknown
}
