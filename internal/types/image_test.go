package types

import "testing"

func TestPixelFormat_BitsPerPixel(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   int
	}{
		{PixelGray1, 1},
		{PixelGray2, 2},
		{PixelGray4, 4},
		{PixelGray8, 8},
		{PixelGray16, 16},
		{PixelGrayAlpha8, 16},
		{PixelGrayAlpha16, 32},
		{PixelIndexed1, 1},
		{PixelIndexed2, 2},
		{PixelIndexed4, 4},
		{PixelIndexed8, 8},
		{PixelRGB8, 24},
		{PixelRGB16, 48},
		{PixelRGBA8, 32},
		{PixelRGBA16, 64},
		{PixelCMYK8, 32},
		{PixelUnknown, 0},
	}

	for _, tt := range tests {
		if got := tt.format.BitsPerPixel(); got != tt.want {
			t.Errorf("%s.BitsPerPixel() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

func TestPixelFormat_Supported(t *testing.T) {
	unsupported := map[PixelFormat]bool{
		PixelUnknown: true,
		PixelCMYK8:   true,
	}

	all := []PixelFormat{
		PixelUnknown,
		PixelGray1, PixelGray2, PixelGray4, PixelGray8, PixelGray16,
		PixelGrayAlpha8, PixelGrayAlpha16,
		PixelIndexed1, PixelIndexed2, PixelIndexed4, PixelIndexed8,
		PixelRGB8, PixelRGB16, PixelRGBA8, PixelRGBA16,
		PixelCMYK8,
	}

	for _, format := range all {
		want := !unsupported[format]
		if got := format.Supported(); got != want {
			t.Errorf("%s.Supported() = %v, want %v", format, got, want)
		}
	}
}

func TestPixelFormat_String(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   string
	}{
		{PixelRGB8, "RGB8"},
		{PixelGrayAlpha16, "GrayAlpha16"},
		{PixelIndexed4, "Indexed4"},
		{PixelCMYK8, "CMYK8"},
		{PixelUnknown, "Unknown"},
		{PixelFormat(-1), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("PixelFormat.String() = %q, want %q", got, tt.want)
		}
	}
}
