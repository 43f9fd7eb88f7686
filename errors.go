package coverart

import (
	"github.com/aswild/ogg-coverart/internal/types"
)

// UnsupportedPixelFormatError is an alias to types.UnsupportedPixelFormatError.
// Re-exporting from internal/types to keep the public API in one package.
type UnsupportedPixelFormatError = types.UnsupportedPixelFormatError

// InvalidMIMETypeError is an alias to types.InvalidMIMETypeError.
// Re-exporting from internal/types to keep the public API in one package.
type InvalidMIMETypeError = types.InvalidMIMETypeError

// InvalidPictureTypeError is an alias to types.InvalidPictureTypeError.
// Re-exporting from internal/types to keep the public API in one package.
type InvalidPictureTypeError = types.InvalidPictureTypeError

// ImageTooLargeError is an alias to types.ImageTooLargeError.
// Re-exporting from internal/types to keep the public API in one package.
type ImageTooLargeError = types.ImageTooLargeError

// UnsupportedImageError is an alias to types.UnsupportedImageError.
// Re-exporting from internal/types to keep the public API in one package.
type UnsupportedImageError = types.UnsupportedImageError

// CorruptedImageError is an alias to types.CorruptedImageError.
// Re-exporting from internal/types to keep the public API in one package.
type CorruptedImageError = types.CorruptedImageError

// CorruptedBlockError is an alias to types.CorruptedBlockError.
// Re-exporting from internal/types to keep the public API in one package.
type CorruptedBlockError = types.CorruptedBlockError
