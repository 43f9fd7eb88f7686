package types

import (
	"strings"
	"testing"
)

func TestPictureType_String(t *testing.T) {
	tests := []struct {
		typ  PictureType
		want string
	}{
		{PictureOther, "Other"},
		{PictureFrontCover, "Cover (front)"},
		{PictureBackCover, "Cover (back)"},
		{PictureMedia, "Media (e.g. label side of CD)"},
		{PictureBrightFish, "A bright coloured fish"},
		{PicturePublisherLogotype, "Publisher/Studio logotype"},
		{PictureType(21), "Reserved (21)"},
		{PictureType(99), "Reserved (99)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("PictureType(%d).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
	}
}

func TestPicture_EncodedLen(t *testing.T) {
	pic := &Picture{
		Type:        PictureFrontCover,
		MIMEType:    "image/png",
		Description: "front",
		Width:       100,
		Height:      100,
		ColorDepth:  24,
		Data:        make([]byte, 1000),
	}

	want := 32 + 9 + 5 + 1000
	if got := pic.EncodedLen(); got != want {
		t.Errorf("EncodedLen() = %d, want %d", got, want)
	}
	if got := len(pic.Bytes()); got != want {
		t.Errorf("len(Bytes()) = %d, want %d", got, want)
	}
}

func TestPicture_String(t *testing.T) {
	tests := []struct {
		name     string
		pic      Picture
		contains []string
	}{
		{
			name: "front cover png",
			pic: Picture{
				Type:     PictureFrontCover,
				MIMEType: "image/png",
				Width:    1200,
				Height:   1200,
				Data:     make([]byte, 250*1024),
			},
			contains: []string{"Cover (front)", "1200x1200", "PNG", "250KB"},
		},
		{
			name: "jpeg without dimensions",
			pic: Picture{
				Type:     PictureBackCover,
				MIMEType: "image/jpeg",
				Data:     make([]byte, 100),
			},
			contains: []string{"Cover (back)", "JPEG", "100B"},
		},
		{
			name: "large image in megabytes",
			pic: Picture{
				Type:     PictureOther,
				MIMEType: "image/png",
				Width:    4000,
				Height:   4000,
				Data:     make([]byte, 3*1024*1024),
			},
			contains: []string{"Other", "3.0MB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pic.String()
			for _, substr := range tt.contains {
				if !strings.Contains(got, substr) {
					t.Errorf("String() = %q, should contain %q", got, substr)
				}
			}
		})
	}
}

func TestImageInfo_String(t *testing.T) {
	info := ImageInfo{
		MIMEType:    "image/png",
		Width:       640,
		Height:      480,
		ColorDepth:  24,
		PixelFormat: PixelRGB8,
	}

	got := info.String()
	for _, substr := range []string{"PNG", "640x480", "RGB8", "24-bit"} {
		if !strings.Contains(got, substr) {
			t.Errorf("String() = %q, should contain %q", got, substr)
		}
	}
}
