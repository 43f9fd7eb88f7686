package types

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aswild/ogg-coverart/internal/binary"
)

// Picture represents a FLAC METADATA_BLOCK_PICTURE structure.
//
// The same binary layout is used by FLAC picture metadata blocks and by
// the base64-encoded METADATA_BLOCK_PICTURE Vorbis comment that Ogg
// streams use to embed cover art. All integer fields are serialized as
// big-endian uint32, and both string fields and the image data are
// preceded by their byte length.
type Picture struct {
	// Type of picture (front cover, back cover, artist photo, etc.)
	Type PictureType

	// MIME type of the image data
	MIMEType string // "image/png", "image/jpeg"

	// Description of the picture (optional, UTF-8)
	Description string

	// Dimensions in pixels
	Width  uint32
	Height uint32

	// Color depth in bits per pixel
	ColorDepth uint32

	// Number of palette colors for indexed images, 0 otherwise.
	// Always 0 for pictures built by this library.
	ColorCount uint32

	// Image binary data, stored verbatim
	Data []byte
}

// PictureType categorizes the purpose/content of a picture.
//
// Values and wording follow the FLAC picture block specification, which
// in turn mirrors the ID3v2 APIC frame picture types.
// See: https://xiph.org/flac/format.html#metadata_block_picture
type PictureType uint32

const (
	PictureOther             PictureType = iota // Other
	PictureFileIcon                             // 32x32 pixels 'file icon' (PNG only)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Cover (front)
	PictureBackCover                            // Cover (back)
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (e.g. label side of CD)
	PictureLeadArtist                           // Lead artist/lead performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/Orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording Location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright coloured fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/Studio logotype
)

// String returns the FLAC specification wording for the picture type.
//
// The front cover wording ("Cover (front)") is also what ffmpeg expects
// as the stream title for attached pictures.
func (t PictureType) String() string {
	switch t {
	case PictureOther:
		return "Other"
	case PictureFileIcon:
		return "32x32 pixels 'file icon' (PNG only)"
	case PictureOtherIcon:
		return "Other file icon"
	case PictureFrontCover:
		return "Cover (front)"
	case PictureBackCover:
		return "Cover (back)"
	case PictureLeaflet:
		return "Leaflet page"
	case PictureMedia:
		return "Media (e.g. label side of CD)"
	case PictureLeadArtist:
		return "Lead artist/lead performer/soloist"
	case PictureArtist:
		return "Artist/performer"
	case PictureConductor:
		return "Conductor"
	case PictureBand:
		return "Band/Orchestra"
	case PictureComposer:
		return "Composer"
	case PictureLyricist:
		return "Lyricist/text writer"
	case PictureRecordingLocation:
		return "Recording Location"
	case PictureDuringRecording:
		return "During recording"
	case PictureDuringPerformance:
		return "During performance"
	case PictureVideoCapture:
		return "Movie/video screen capture"
	case PictureBrightFish:
		return "A bright coloured fish"
	case PictureIllustration:
		return "Illustration"
	case PictureBandLogotype:
		return "Band/artist logotype"
	case PicturePublisherLogotype:
		return "Publisher/Studio logotype"
	default:
		return fmt.Sprintf("Reserved (%d)", uint32(t))
	}
}

// EncodedLen returns the exact serialized size of the picture block:
// 32 bytes of fixed integer fields plus the MIME type, description, and
// image data payloads.
func (p *Picture) EncodedLen() int {
	return 32 + len(p.MIMEType) + len(p.Description) + len(p.Data)
}

// WriteTo serializes the picture block to w and implements io.WriterTo.
//
// Fields are written in the fixed METADATA_BLOCK_PICTURE order: type,
// MIME type (length-prefixed), description (length-prefixed), width,
// height, color depth, color count, and image data (length-prefixed).
// Length prefixes are taken from the field contents; callers that
// construct a Picture directly must keep each field under 4GiB.
func (p *Picture) WriteTo(w io.Writer) (int64, error) {
	sw := binary.NewSafeWriter(w)

	if err := sw.WriteUint32(uint32(p.Type)); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WritePrefixedString(p.MIMEType); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WritePrefixedString(p.Description); err != nil {
		return sw.Offset(), err
	}
	for _, v := range [4]uint32{p.Width, p.Height, p.ColorDepth, p.ColorCount} {
		if err := sw.WriteUint32(v); err != nil {
			return sw.Offset(), err
		}
	}
	if err := sw.WritePrefixed(p.Data); err != nil {
		return sw.Offset(), err
	}

	return sw.Offset(), nil
}

// Bytes returns the serialized picture block.
func (p *Picture) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, p.EncodedLen()))
	p.WriteTo(buf) //nolint:errcheck // bytes.Buffer writes cannot fail
	return buf.Bytes()
}

// String returns a human-readable description of the picture.
//
// Example output: "Cover (front) (1200x1200 PNG, 245KB)"
func (p *Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)",
		p.Type, dims, mimeLabel(p.MIMEType), formatSize(len(p.Data)))
}

// formatSize formats a byte count in human-readable form. Data
// payloads can legally reach the 4GiB length-field limit.
func formatSize(n int) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)

	switch {
	case n >= gb:
		return fmt.Sprintf("%.1fGB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// mimeLabel shortens a MIME type for display, "image/png" -> "PNG".
func mimeLabel(mime string) string {
	sub, ok := strings.CutPrefix(mime, "image/")
	if !ok || sub == "" {
		return "Image"
	}
	return strings.ToUpper(sub)
}
