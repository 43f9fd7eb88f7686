package coverart

import (
	"github.com/aswild/ogg-coverart/internal/picture"
	"github.com/aswild/ogg-coverart/internal/types"
)

// Picture is an alias to types.Picture.
// Re-exporting from internal/types to keep the public API in one package.
type Picture = types.Picture

// PictureType is an alias to types.PictureType.
// Re-exporting from internal/types to keep the public API in one package.
type PictureType = types.PictureType

// Re-export all picture type constants
const (
	PictureOther             = types.PictureOther
	PictureFileIcon          = types.PictureFileIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// ParsePicture decodes a raw METADATA_BLOCK_PICTURE structure back into
// a Picture. It is the exact inverse of Picture.Bytes().
//
// Trailing bytes after the picture data are ignored; every other
// malformation (short buffer, length prefix past the end of data)
// returns a CorruptedBlockError with the offset of the bad field.
func ParsePicture(data []byte) (*Picture, error) {
	return picture.Parse(data)
}

// ParsePictureBase64 decodes a base64-encoded METADATA_BLOCK_PICTURE
// structure, the form stored in a Vorbis comment's
// METADATA_BLOCK_PICTURE tag value.
func ParsePictureBase64(value string) (*Picture, error) {
	return picture.ParseBase64(value)
}
