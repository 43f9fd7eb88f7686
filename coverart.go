package coverart

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/aswild/ogg-coverart/internal/picture"
	"github.com/aswild/ogg-coverart/internal/probe"
)

// FromFile reads an image file and builds its picture block.
//
// The whole file is read into memory (picture blocks embed the complete
// image, so streaming buys nothing), probed for format and dimensions,
// and encoded. Supported image formats: PNG and JPEG.
//
// Options customize the block's picture type and description:
//
//	pic, err := coverart.FromFile("cover.png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(pic) // Cover (front) (1200x1200 PNG, 245KB)
func FromFile(path string, opts ...Option) (*Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return FromBytes(data, opts...)
}

// FromBytes probes an in-memory image and builds its picture block.
//
// The image format is detected from magic bytes and its header is
// probed for dimensions and color depth; the pixel data is never
// decoded. The returned Picture holds data itself (no copy is made),
// so the caller must not modify it afterwards.
//
// Example:
//
//	data, _ := os.ReadFile("cover.jpg")
//	pic, err := coverart.FromBytes(data,
//	    coverart.WithDescription("Front cover"),
//	)
func FromBytes(data []byte, opts ...Option) (*Picture, error) {
	info, err := probe.Probe(data)
	if err != nil {
		return nil, err
	}
	return FromImage(*info, data, opts...)
}

// FromImage builds a picture block from an already probed image.
//
// Use this instead of FromBytes when the image metadata comes from
// somewhere other than the built-in prober (a full decoder, a sidecar
// file). The info fields are trusted as given; only the structural
// constraints of the block itself are validated:
//
//   - info.PixelFormat must be encodable (not Unknown or CMYK)
//   - info.MIMEType must be non-empty printable ASCII
//   - the picture type must be 0-20
//   - no field may exceed the 32-bit length limit
func FromImage(info ImageInfo, data []byte, opts ...Option) (*Picture, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return picture.Encode(info, data, options.pictureType, options.description)
}

// FromFiles builds picture blocks for several image files concurrently.
//
// Files are processed in parallel using up to runtime.NumCPU()
// goroutines. Results are returned in the same order as the input
// paths, and the options apply to every picture in the batch.
//
// If any file fails, the remaining work is cancelled and the first
// error is returned.
//
// Example:
//
//	pics, err := coverart.FromFiles(ctx, []string{"front.png", "back.png"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = coverart.Render(os.Stdout, coverart.OutputFFMetadata, pics...)
func FromFiles(ctx context.Context, paths []string, opts ...Option) ([]*Picture, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Picture, len(paths))

	for i, path := range paths {
		i, path := i, path // per-iteration copies for pre-1.22 loop semantics
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pic, err := FromFile(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = pic
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
