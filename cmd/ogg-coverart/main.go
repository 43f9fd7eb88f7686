// Command ogg-coverart builds METADATA_BLOCK_PICTURE cover art blocks
// from PNG or JPEG images and prints them in a form tagging tools accept.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aswild/ogg-coverart"
)

var (
	ffmetadata  bool
	binaryMode  bool
	base64Mode  bool
	tagMode     bool
	output      string
	pictureType int
	description string
	showVersion bool
)

func init() {
	flag.BoolVar(&ffmetadata, "f", false, "")
	flag.BoolVar(&ffmetadata, "ffmetadata", false, "")
	flag.BoolVar(&binaryMode, "b", false, "")
	flag.BoolVar(&binaryMode, "binary", false, "")
	flag.BoolVar(&base64Mode, "B", false, "")
	flag.BoolVar(&base64Mode, "base64", false, "")
	flag.BoolVar(&tagMode, "tag", false, "")
	flag.StringVar(&output, "o", "", "")
	flag.StringVar(&output, "output", "", "")
	flag.IntVar(&pictureType, "type", int(coverart.PictureFrontCover), "")
	flag.StringVar(&description, "desc", "", "")
	flag.BoolVar(&showVersion, "version", false, "")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ogg-coverart [options] IMAGE [IMAGE...]\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Build METADATA_BLOCK_PICTURE cover art blocks from PNG or JPEG images.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Output format (at most one):\n")
		fmt.Fprintf(os.Stderr, "  -f, -ffmetadata  ffmetadata document for ffmpeg -map_metadata (default)\n")
		fmt.Fprintf(os.Stderr, "  -b, -binary      raw picture block bytes\n")
		fmt.Fprintf(os.Stderr, "  -B, -base64      bare base64 token\n")
		fmt.Fprintf(os.Stderr, "  -tag             METADATA_BLOCK_PICTURE=<base64> comment line\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  -o, -output FILE write to FILE instead of stdout (\"-\" means stdout)\n")
		fmt.Fprintf(os.Stderr, "  -type N          picture type 0-20 (default 3, front cover)\n")
		fmt.Fprintf(os.Stderr, "  -desc TEXT       description stored in the block\n")
		fmt.Fprintf(os.Stderr, "  -version         print version and exit\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Multiple images are allowed only with -ffmetadata; each becomes its\n")
		fmt.Fprintf(os.Stderr, "own [STREAM] section.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  ogg-coverart cover.png | ffmpeg -i in.ogg -i - -map_metadata 1 -c copy out.ogg\n")
		fmt.Fprintf(os.Stderr, "  ogg-coverart -tag cover.png | vorbiscomment -a in.ogg\n")
		fmt.Fprintf(os.Stderr, "  ogg-coverart -b -o block.bin cover.jpg\n")
	}
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ogg-coverart: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if showVersion {
		fmt.Printf("ogg-coverart %s\n", coverart.GetVersionInfo())
		return nil
	}

	mode, err := selectMode()
	if err != nil {
		return err
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return fmt.Errorf("no input image")
	}
	if mode != coverart.OutputFFMetadata && flag.NArg() > 1 {
		return fmt.Errorf("%s output takes exactly one image, got %d", mode, flag.NArg())
	}

	pics, err := coverart.FromFiles(context.Background(), flag.Args(),
		coverart.WithPictureType(coverart.PictureType(pictureType)),
		coverart.WithDescription(description),
	)
	if err != nil {
		return err
	}

	return writeOutput(output, mode, pics)
}

// selectMode maps the format flags to an output mode, rejecting
// combinations.
func selectMode() (coverart.OutputMode, error) {
	mode := coverart.OutputFFMetadata
	selected := 0

	if ffmetadata {
		selected++
	}
	if binaryMode {
		mode = coverart.OutputBinary
		selected++
	}
	if base64Mode {
		mode = coverart.OutputBase64
		selected++
	}
	if tagMode {
		mode = coverart.OutputTag
		selected++
	}

	if selected > 1 {
		return 0, fmt.Errorf("at most one output format may be selected")
	}
	return mode, nil
}

// writeOutput renders to stdout or to a file. Output is buffered and
// nothing is written until every input image has been validated.
func writeOutput(path string, mode coverart.OutputMode, pics []*coverart.Picture) error {
	if path == "" || path == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := coverart.Render(w, mode, pics...); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := coverart.Render(w, mode, pics...); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
