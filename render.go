package coverart

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/aswild/ogg-coverart/internal/ffmeta"
)

// PictureTag is the Vorbis comment field name that carries a
// base64-encoded picture block in OGG files.
const PictureTag = "METADATA_BLOCK_PICTURE"

// OutputMode selects the serialization Render produces.
type OutputMode int

const (
	// OutputFFMetadata emits an ffmetadata ini document with one
	// [STREAM] section per picture, suitable for ffmpeg's
	// -map_metadata option. This is the default mode.
	OutputFFMetadata OutputMode = iota

	// OutputBinary emits the raw picture block bytes.
	OutputBinary

	// OutputBase64 emits the base64-encoded block as a single
	// unwrapped token with no trailing newline.
	OutputBase64

	// OutputTag emits a complete METADATA_BLOCK_PICTURE=<base64>
	// comment line for vorbiscomment-style tools.
	OutputTag
)

// String returns the mode name as used by the command-line flags.
func (m OutputMode) String() string {
	switch m {
	case OutputFFMetadata:
		return "ffmetadata"
	case OutputBinary:
		return "binary"
	case OutputBase64:
		return "base64"
	case OutputTag:
		return "tag"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// Render serializes picture blocks to w in the given mode.
//
// OutputBinary, OutputBase64, and OutputTag accept exactly one picture;
// OutputFFMetadata accepts one or more and renders one [STREAM] section
// per picture in argument order.
//
// The mode only changes the envelope, never the block itself: the
// base64 of OutputBinary's bytes, OutputBase64's token, OutputTag's
// value, and the metadata= value in OutputFFMetadata are all identical
// for the same picture.
//
// Example:
//
//	pic, err := coverart.FromFile("cover.png")
//	if err != nil {
//		return err
//	}
//	err = coverart.Render(os.Stdout, coverart.OutputFFMetadata, pic)
func Render(w io.Writer, mode OutputMode, pics ...*Picture) error {
	if len(pics) == 0 {
		return fmt.Errorf("no pictures to render")
	}
	if mode != OutputFFMetadata && len(pics) > 1 {
		return fmt.Errorf("%s output supports exactly one picture, got %d", mode, len(pics))
	}

	switch mode {
	case OutputFFMetadata:
		return renderFFMetadata(w, pics)

	case OutputBinary:
		_, err := pics[0].WriteTo(w)
		return err

	case OutputBase64:
		return writeBase64(w, pics[0])

	case OutputTag:
		if _, err := io.WriteString(w, PictureTag+"="); err != nil {
			return err
		}
		if err := writeBase64(w, pics[0]); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err

	default:
		return fmt.Errorf("unknown output mode %d", int(mode))
	}
}

// RenderString serializes picture blocks to a string.
//
// Note that OutputBinary produces raw bytes; they survive the string
// round-trip unchanged but are not text.
func RenderString(mode OutputMode, pics ...*Picture) (string, error) {
	var b strings.Builder
	if err := Render(&b, mode, pics...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderFFMetadata writes the ffmetadata document: the identification
// header, then a [STREAM] section per picture. title and comment carry
// the picture type name so merging tools label the attachment.
func renderFFMetadata(w io.Writer, pics []*Picture) error {
	fw := ffmeta.NewWriter(w)

	if err := fw.WriteHeader(); err != nil {
		return err
	}
	for _, pic := range pics {
		if err := fw.BeginSection(ffmeta.StreamSection); err != nil {
			return err
		}
		if err := fw.WriteTag("title", pic.Type.String()); err != nil {
			return err
		}
		if err := fw.WriteTag("comment", pic.Type.String()); err != nil {
			return err
		}
		err := fw.WriteRawTag("metadata", func(dst io.Writer) error {
			return writeBase64(dst, pic)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeBase64 streams the picture block through a base64 encoder so
// the full encoded text never has to sit in memory alongside the block.
// Standard alphabet, padded, no line wrapping, no trailing newline.
func writeBase64(w io.Writer, pic *Picture) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := pic.WriteTo(enc); err != nil {
		return err
	}
	return enc.Close()
}
