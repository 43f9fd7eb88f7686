package coverart

// Option configures how a picture block is built.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	pic, err := coverart.FromFile("back.png",
//	    coverart.WithPictureType(coverart.PictureBackCover),
//	    coverart.WithDescription("Back cover"),
//	)
type Option func(*encodeOptions)

// encodeOptions holds configuration for building picture blocks.
type encodeOptions struct {
	pictureType PictureType // FLAC picture type field
	description string      // UTF-8 description field
}

// defaultOptions returns the default configuration.
func defaultOptions() *encodeOptions {
	return &encodeOptions{
		pictureType: PictureFrontCover,
		description: "",
	}
}

// WithPictureType sets the picture type field of the block.
//
// The default is PictureFrontCover (3), which is what players look for
// when choosing which embedded image to display.
//
// Valid values are 0 through 20; the encoder rejects anything above
// PicturePublisherLogotype with an InvalidPictureTypeError.
//
// Example:
//
//	pic, err := coverart.FromFile("band.jpg",
//	    coverart.WithPictureType(coverart.PictureBand),
//	)
func WithPictureType(t PictureType) Option {
	return func(o *encodeOptions) {
		o.pictureType = t
	}
}

// WithDescription sets the description field of the block.
//
// The description may be any UTF-8 string, including empty (the
// default). Most players ignore it; it exists for cataloguing.
//
// Example:
//
//	pic, err := coverart.FromFile("cover.png",
//	    coverart.WithDescription("Album cover, 2019 remaster"),
//	)
func WithDescription(desc string) Option {
	return func(o *encodeOptions) {
		o.description = desc
	}
}
