// Package picture builds and parses FLAC METADATA_BLOCK_PICTURE structures.
package picture

import (
	"fmt"
	"math"

	"github.com/aswild/ogg-coverart/internal/types"
)

// Encode validates image properties and builds a picture block from them.
//
// data is stored verbatim as the block's picture data; it is the encoded
// image file, not decoded pixels. The color count field is always 0:
// palette sizes are not recorded, even for indexed-color images.
func Encode(info types.ImageInfo, data []byte, pictureType types.PictureType, description string) (*types.Picture, error) {
	if !info.PixelFormat.Supported() {
		return nil, &types.UnsupportedPixelFormatError{
			Format:   info.PixelFormat,
			MIMEType: info.MIMEType,
		}
	}

	if err := validateMIMEType(info.MIMEType); err != nil {
		return nil, err
	}

	if pictureType > types.PicturePublisherLogotype {
		return nil, &types.InvalidPictureTypeError{Type: uint32(pictureType)}
	}

	if err := checkLength("MIME type", int64(len(info.MIMEType))); err != nil {
		return nil, err
	}
	if err := checkLength("description", int64(len(description))); err != nil {
		return nil, err
	}
	if err := checkLength("picture data", int64(len(data))); err != nil {
		return nil, err
	}

	return &types.Picture{
		Type:        pictureType,
		MIMEType:    info.MIMEType,
		Description: description,
		Width:       info.Width,
		Height:      info.Height,
		ColorDepth:  info.ColorDepth,
		ColorCount:  0,
		Data:        data,
	}, nil
}

// validateMIMEType checks the constraints the FLAC spec places on the
// MIME type field: non-empty, printable ASCII (0x20-0x7E).
func validateMIMEType(mime string) error {
	if mime == "" {
		return &types.InvalidMIMETypeError{MIMEType: mime, Reason: "empty"}
	}
	for i := 0; i < len(mime); i++ {
		if mime[i] < 0x20 || mime[i] > 0x7E {
			return &types.InvalidMIMETypeError{
				MIMEType: mime,
				Reason:   fmt.Sprintf("byte %#02x at index %d is not printable ASCII", mime[i], i),
			}
		}
	}
	return nil
}

// checkLength rejects fields whose byte length cannot be stored in the
// block's uint32 length prefix.
func checkLength(field string, n int64) error {
	if n > math.MaxUint32 {
		return &types.ImageTooLargeError{Field: field, Size: n}
	}
	return nil
}
