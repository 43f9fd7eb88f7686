package coverart_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aswild/ogg-coverart"
)

// createTestPNG builds a minimal PNG file: signature, IHDR, and IEND.
// This duplicates some logic from internal/probe but keeps the public
// API tests independent.
func createTestPNG(width, height uint32, bitDepth, colorType uint8) []byte {
	png := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG signature
		0x00, 0x00, 0x00, 0x0D, // IHDR chunk length (13)
		'I', 'H', 'D', 'R',
	}
	png = binary.BigEndian.AppendUint32(png, width)
	png = binary.BigEndian.AppendUint32(png, height)
	png = append(png,
		bitDepth,
		colorType,
		0x00,                   // Compression
		0x00,                   // Filter
		0x00,                   // Interlace
		0x00, 0x00, 0x00, 0x00, // CRC (dummy)
		0x00, 0x00, 0x00, 0x00, // IEND chunk length
		'I', 'E', 'N', 'D',
		0xAE, 0x42, 0x60, 0x82, // CRC
	)
	return png
}

// createTestPNGFile writes a test PNG to a temp file and returns its path.
func createTestPNGFile(t *testing.T, width, height uint32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cover.png")
	if err := os.WriteFile(path, createTestPNG(width, height, 8, 2), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromBytes(t *testing.T) {
	data := createTestPNG(640, 480, 8, 2)

	pic, err := coverart.FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	if pic.Type != coverart.PictureFrontCover {
		t.Errorf("Type = %v, want PictureFrontCover", pic.Type)
	}
	if pic.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want %q", pic.MIMEType, "image/png")
	}
	if pic.Description != "" {
		t.Errorf("Description = %q, want empty", pic.Description)
	}
	if pic.Width != 640 || pic.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", pic.Width, pic.Height)
	}
	if pic.ColorDepth != 24 {
		t.Errorf("ColorDepth = %d, want 24", pic.ColorDepth)
	}
	if pic.ColorCount != 0 {
		t.Errorf("ColorCount = %d, want 0", pic.ColorCount)
	}
	if !bytes.Equal(pic.Data, data) {
		t.Error("Data should hold the image bytes verbatim")
	}
}

func TestFromBytes_Options(t *testing.T) {
	pic, err := coverart.FromBytes(createTestPNG(10, 10, 8, 2),
		coverart.WithPictureType(coverart.PictureBackCover),
		coverart.WithDescription("Back cover"),
	)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	if pic.Type != coverart.PictureBackCover {
		t.Errorf("Type = %v, want PictureBackCover", pic.Type)
	}
	if pic.Description != "Back cover" {
		t.Errorf("Description = %q, want %q", pic.Description, "Back cover")
	}
}

func TestFromBytes_UnknownFormat(t *testing.T) {
	_, err := coverart.FromBytes([]byte("not a valid image file"))
	if err == nil {
		t.Fatal("expected error for unrecognized data")
	}

	var uiErr *coverart.UnsupportedImageError
	if !errors.As(err, &uiErr) {
		t.Errorf("expected UnsupportedImageError, got %T", err)
	}
}

func TestFromBytes_InvalidPictureType(t *testing.T) {
	_, err := coverart.FromBytes(createTestPNG(10, 10, 8, 2),
		coverart.WithPictureType(coverart.PictureType(21)),
	)
	if err == nil {
		t.Fatal("expected error for out-of-range picture type")
	}

	var ptErr *coverart.InvalidPictureTypeError
	if !errors.As(err, &ptErr) {
		t.Fatalf("expected InvalidPictureTypeError, got %T", err)
	}
	if ptErr.Type != 21 {
		t.Errorf("Type = %d, want 21", ptErr.Type)
	}
}

func TestFromImage(t *testing.T) {
	// Metadata from an external decoder, not the built-in prober.
	info := coverart.ImageInfo{
		MIMEType:    "image/bmp",
		Width:       32,
		Height:      32,
		ColorDepth:  24,
		PixelFormat: coverart.PixelRGB8,
	}
	data := []byte{0x42, 0x4D, 0x00, 0x01}

	pic, err := coverart.FromImage(info, data)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if pic.MIMEType != "image/bmp" {
		t.Errorf("MIMEType = %q, want %q", pic.MIMEType, "image/bmp")
	}
	if !bytes.Equal(pic.Data, data) {
		t.Error("Data should hold the given bytes verbatim")
	}
}

func TestFromImage_UnsupportedPixelFormat(t *testing.T) {
	info := coverart.ImageInfo{
		MIMEType:    "image/jpeg",
		Width:       100,
		Height:      100,
		ColorDepth:  32,
		PixelFormat: coverart.PixelCMYK8,
	}

	_, err := coverart.FromImage(info, []byte{0xFF})
	if err == nil {
		t.Fatal("expected error for CMYK image")
	}

	var pfErr *coverart.UnsupportedPixelFormatError
	if !errors.As(err, &pfErr) {
		t.Fatalf("expected UnsupportedPixelFormatError, got %T", err)
	}
	if pfErr.Format != coverart.PixelCMYK8 {
		t.Errorf("Format = %v, want PixelCMYK8", pfErr.Format)
	}
}

func TestFromFile(t *testing.T) {
	path := createTestPNGFile(t, 800, 600)

	pic, err := coverart.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	if pic.Width != 800 || pic.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", pic.Width, pic.Height)
	}
	if pic.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want %q", pic.MIMEType, "image/png")
	}
}

func TestFromFile_NotFound(t *testing.T) {
	_, err := coverart.FromFile("/nonexistent/cover.png")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestFromFiles(t *testing.T) {
	// Distinguishable dimensions verify result ordering.
	paths := []string{
		createTestPNGFile(t, 100, 1),
		createTestPNGFile(t, 200, 2),
		createTestPNGFile(t, 300, 3),
	}

	pics, err := coverart.FromFiles(context.Background(), paths)
	if err != nil {
		t.Fatalf("FromFiles failed: %v", err)
	}

	if len(pics) != 3 {
		t.Fatalf("got %d pictures, want 3", len(pics))
	}
	for i, want := range []uint32{100, 200, 300} {
		if pics[i].Width != want {
			t.Errorf("pics[%d].Width = %d, want %d (results out of order?)", i, pics[i].Width, want)
		}
	}
}

func TestFromFiles_Options(t *testing.T) {
	paths := []string{
		createTestPNGFile(t, 10, 10),
		createTestPNGFile(t, 20, 20),
	}

	pics, err := coverart.FromFiles(context.Background(), paths,
		coverart.WithPictureType(coverart.PictureLeaflet),
	)
	if err != nil {
		t.Fatalf("FromFiles failed: %v", err)
	}

	for i, pic := range pics {
		if pic.Type != coverart.PictureLeaflet {
			t.Errorf("pics[%d].Type = %v, want PictureLeaflet", i, pic.Type)
		}
	}
}

func TestFromFiles_Empty(t *testing.T) {
	pics, err := coverart.FromFiles(context.Background(), nil)
	if err != nil {
		t.Errorf("FromFiles(nil) error = %v, want nil", err)
	}
	if pics != nil {
		t.Errorf("FromFiles(nil) = %v, want nil", pics)
	}
}

// TestFromFiles_Cancellation verifies that cancelled operations return early
func TestFromFiles_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = createTestPNGFile(t, 10, 10)
	}

	// Create a context that's already cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	pics, err := coverart.FromFiles(ctx, paths)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if pics != nil {
		t.Error("expected nil pictures on error")
	}
}

// TestFromFiles_PartialFailure verifies all-or-nothing behavior
func TestFromFiles_PartialFailure(t *testing.T) {
	paths := []string{
		createTestPNGFile(t, 10, 10),
		"/nonexistent/cover.png",
		createTestPNGFile(t, 10, 10),
	}

	pics, err := coverart.FromFiles(context.Background(), paths)

	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}
	if !strings.Contains(err.Error(), "/nonexistent/cover.png") {
		t.Errorf("error should name the failing path, got: %v", err)
	}
	if pics != nil {
		t.Error("expected nil pictures on partial failure")
	}
}
