// Package ffmeta writes ffmetadata ini documents, the text format
// ffmpeg's metadata muxer reads and writes.
//
// The format is line-oriented: an identification header, optional
// [SECTION] lines, and key=value pairs. Special characters in keys and
// values ('=', ';', '#', '\' and newline) are escaped with a backslash.
// See: https://ffmpeg.org/ffmpeg-formats.html#Metadata-2
package ffmeta

import (
	"io"
	"strings"
)

// Header is the identification line every ffmetadata document starts with.
const Header = ";FFMETADATA1"

// StreamSection marks a section describing one stream. A picture
// rendered under [STREAM] is treated by merging tools as an attached
// picture rather than a displayed video track.
const StreamSection = "STREAM"

// Writer emits an ffmetadata ini document.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the identification line. It must be the first line
// of the document.
func (w *Writer) WriteHeader() error {
	_, err := io.WriteString(w.w, Header+"\n")
	return err
}

// BeginSection writes a [NAME] section line. Tags written afterwards
// belong to this section until the next BeginSection.
func (w *Writer) BeginSection(name string) error {
	_, err := io.WriteString(w.w, "["+name+"]\n")
	return err
}

// WriteTag writes a key=value line with escaping applied to both parts.
func (w *Writer) WriteTag(key, value string) error {
	_, err := io.WriteString(w.w, escape(key)+"="+escape(value)+"\n")
	return err
}

// WriteRawTag writes a key= line whose value is produced by value
// writing directly to the document. The caller must only emit bytes
// that need no escaping (base64 qualifies); the trailing newline is
// added here.
func (w *Writer) WriteRawTag(key string, value func(io.Writer) error) error {
	if _, err := io.WriteString(w.w, escape(key)+"="); err != nil {
		return err
	}
	if err := value(w.w); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, "\n")
	return err
}

// escape backslash-escapes the characters the ffmetadata format
// reserves: '=', ';', '#', '\' and newline.
func escape(s string) string {
	if !strings.ContainsAny(s, "=;#\\\n") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '=', ';', '#', '\\', '\n':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
