// Package coverart builds METADATA_BLOCK_PICTURE structures, the
// binary format FLAC and OGG files use to embed cover art.
//
// coverart turns an ordinary PNG or JPEG file into a ready-to-embed
// picture block and renders it in the envelope your tagging tool
// expects: raw bytes, a base64 token, a METADATA_BLOCK_PICTURE comment
// line, or an ffmetadata document for ffmpeg.
//
// # Quick Start
//
// Building a front cover block from an image file:
//
//	pic, err := coverart.FromFile("cover.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(pic)                  // Cover (front) (1200x1200 PNG, 245KB)
//	fmt.Println(pic.Type)             // Cover (front)
//	fmt.Println(len(pic.Bytes()))     // encoded block size
//
// Rendering it for ffmpeg:
//
//	err = coverart.Render(os.Stdout, coverart.OutputFFMetadata, pic)
//
// # Output Modes
//
//   - OutputFFMetadata: ffmetadata ini document with a [STREAM] section
//     per picture (default)
//   - OutputBinary: the raw block, e.g. for `metaflac --import-picture-from`
//   - OutputBase64: the bare base64 token
//   - OutputTag: a METADATA_BLOCK_PICTURE=<base64> line for
//     vorbiscomment-style tools
//
// Each mode is a different envelope around the same block: the base64
// of the binary output, the base64 token, the tag value, and the
// ffmetadata metadata= value are always identical for the same picture.
//
// # Using with ffmpeg
//
// The ffmetadata output attaches cover art to an OGG file without
// re-encoding:
//
//	ogg-coverart -o cover.ffmeta cover.png
//	ffmpeg -i input.ogg -i cover.ffmeta -map_metadata 1 -codec copy output.ogg
//
// With vorbiscomment:
//
//	ogg-coverart -tag cover.png | vorbiscomment -a input.ogg
//
// # Design
//
// Images are probed, never decoded. The prober reads only the PNG IHDR
// chunk or the JPEG frame header to learn dimensions, color depth, and
// pixel format; the compressed pixel data goes into the block verbatim.
// Probing a multi-megabyte image costs the same as probing a tiny one.
//
// The pipeline is pure and synchronous: probe, validate, encode,
// render, with no retries and no partial output. Anything invalid
// (unknown format, CMYK JPEG, non-ASCII MIME type, oversized field)
// fails the whole invocation with a typed error.
//
// # Batch Processing
//
// Build blocks for several images concurrently:
//
//	pics, err := coverart.FromFiles(ctx, []string{"front.png", "back.png"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = coverart.Render(os.Stdout, coverart.OutputFFMetadata, pics...)
//
// # Error Handling
//
// All failures carry typed errors with the offending values:
//
//	pic, err := coverart.FromFile("scan.jpg")
//	var pfErr *coverart.UnsupportedPixelFormatError
//	if errors.As(err, &pfErr) {
//		log.Fatalf("cannot embed %s images", pfErr.Format)
//	}
//
// See UnsupportedImageError, CorruptedImageError,
// UnsupportedPixelFormatError, InvalidMIMETypeError,
// InvalidPictureTypeError, ImageTooLargeError, and CorruptedBlockError.
package coverart
