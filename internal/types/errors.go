package types

import "fmt"

// UnsupportedPixelFormatError is returned when an image's pixel layout
// cannot be described by a picture block.
type UnsupportedPixelFormatError struct {
	Format   PixelFormat
	MIMEType string
}

func (e *UnsupportedPixelFormatError) Error() string {
	if e.MIMEType != "" {
		return fmt.Sprintf("unsupported pixel format %s for %s image", e.Format, e.MIMEType)
	}
	return fmt.Sprintf("unsupported pixel format %s", e.Format)
}

// InvalidMIMETypeError is returned when a MIME type cannot be stored in
// a picture block. The MIME type field must be non-empty printable ASCII.
type InvalidMIMETypeError struct {
	MIMEType string
	Reason   string
}

func (e *InvalidMIMETypeError) Error() string {
	return fmt.Sprintf("invalid MIME type %q: %s", e.MIMEType, e.Reason)
}

// InvalidPictureTypeError is returned for picture type values outside
// the range defined by the FLAC specification (0-20).
type InvalidPictureTypeError struct {
	Type uint32
}

func (e *InvalidPictureTypeError) Error() string {
	return fmt.Sprintf("invalid picture type %d: must be 0-20", e.Type)
}

// ImageTooLargeError is returned when a field's byte length would
// overflow the uint32 length prefix in the picture block.
type ImageTooLargeError struct {
	Field string
	Size  int64
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("%s length %d overflows uint32 length field", e.Field, e.Size)
}

// UnsupportedImageError is returned when image data is not in a
// recognized format.
type UnsupportedImageError struct {
	Reason string
}

func (e *UnsupportedImageError) Error() string {
	return fmt.Sprintf("unsupported image: %s", e.Reason)
}

// CorruptedImageError is returned when an image file's structure is invalid.
type CorruptedImageError struct {
	Format Format
	Offset int64
	Reason string
}

func (e *CorruptedImageError) Error() string {
	return fmt.Sprintf("corrupted %s image at offset %d: %s", e.Format, e.Offset, e.Reason)
}

// CorruptedBlockError is returned when picture block data cannot be parsed.
type CorruptedBlockError struct {
	Offset int64
	Reason string
}

func (e *CorruptedBlockError) Error() string {
	return fmt.Sprintf("corrupted picture block at offset %d: %s", e.Offset, e.Reason)
}
