package picture

import (
	"encoding/base64"
	"fmt"

	binutil "github.com/aswild/ogg-coverart/internal/binary"
	"github.com/aswild/ogg-coverart/internal/types"
)

// Parse decodes a serialized picture block.
//
// The fields are read in the same fixed order Encode writes them:
//   - 4 bytes: picture type (uint32 BE)
//   - 4 bytes: MIME type length
//   - N bytes: MIME type string
//   - 4 bytes: description length
//   - N bytes: description string (UTF-8)
//   - 4 bytes: width
//   - 4 bytes: height
//   - 4 bytes: color depth
//   - 4 bytes: color count (0 for non-indexed)
//   - 4 bytes: image data length
//   - N bytes: image data
//
// Trailing bytes after the image data are ignored. The returned
// picture's Data field aliases data; no copy is made.
func Parse(data []byte) (*types.Picture, error) {
	// Minimum size: the eight fixed uint32 fields with empty payloads
	if len(data) < 32 {
		return nil, &types.CorruptedBlockError{
			Offset: 0,
			Reason: fmt.Sprintf("block too small: %d bytes", len(data)),
		}
	}

	r := binutil.NewReader(data)
	pic := &types.Picture{}

	pictureType, err := binutil.ReadValue[uint32](r, "picture type")
	if err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	pic.Type = types.PictureType(pictureType)

	mimeLength, err := binutil.ReadValue[uint32](r, "MIME type length")
	if err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	pic.MIMEType, err = r.ReadString(int(mimeLength), "MIME type")
	if err != nil {
		return nil, corrupted(r, "MIME type length exceeds data")
	}

	descLength, err := binutil.ReadValue[uint32](r, "description length")
	if err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	pic.Description, err = r.ReadString(int(descLength), "description")
	if err != nil {
		return nil, corrupted(r, "description length exceeds data")
	}

	if pic.Width, err = binutil.ReadValue[uint32](r, "width"); err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	if pic.Height, err = binutil.ReadValue[uint32](r, "height"); err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	if pic.ColorDepth, err = binutil.ReadValue[uint32](r, "color depth"); err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	if pic.ColorCount, err = binutil.ReadValue[uint32](r, "color count"); err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}

	dataLength, err := binutil.ReadValue[uint32](r, "picture data length")
	if err != nil {
		return nil, corrupted(r, "unexpected end of data")
	}
	pic.Data, err = r.ReadBytes(int(dataLength), "picture data")
	if err != nil {
		return nil, corrupted(r, "picture data length exceeds data")
	}

	return pic, nil
}

// ParseBase64 decodes a base64-encoded picture block, the form carried
// by METADATA_BLOCK_PICTURE Vorbis comments.
func ParseBase64(value string) (*types.Picture, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, &types.CorruptedBlockError{
			Offset: 0,
			Reason: fmt.Sprintf("invalid base64: %v", err),
		}
	}
	return Parse(data)
}

func corrupted(r *binutil.Reader, reason string) error {
	return &types.CorruptedBlockError{Offset: r.Offset(), Reason: reason}
}
