// Package probe extracts image properties from encoded image files
// without decoding pixel data.
//
// Picture blocks need only the MIME type, dimensions, and color depth of
// an image, all of which sit in the file header: the PNG IHDR chunk and
// the JPEG frame header (SOF segment). Probing reads just those.
package probe

import (
	"github.com/aswild/ogg-coverart/internal/types"
)

// proberFunc parses one image format's header into image properties.
type proberFunc func(data []byte) (*types.ImageInfo, error)

// probers maps formats to their probers.
var probers = make(map[types.Format]proberFunc)

// register registers a prober for a format.
// Called by format files during initialization (init functions).
func register(format types.Format, prober proberFunc) {
	probers[format] = prober
}

// Probe detects the format of data and returns the image properties a
// picture block records.
//
// data must be the complete encoded image file; it is inspected in
// place, never decoded or copied.
func Probe(data []byte) (*types.ImageInfo, error) {
	format := types.DetectFormat(data)

	prober := probers[format]
	if prober == nil {
		return nil, &types.UnsupportedImageError{
			Reason: "unrecognized image format (supported: PNG, JPEG)",
		}
	}

	return prober(data)
}
