package cuesheet

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported by DecodeText
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF8BOM     = "utf-8-sig"
	EncodingUTF16LE     = "utf-16le"
	EncodingUTF16BE     = "utf-16be"
	EncodingWindows1252 = "windows-1252"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw CUE bytes to UTF-8 text. A non-empty charset forces
// that encoding (any WHATWG label, e.g. "shift_jis"); otherwise the encoding
// is detected from the byte order mark, falling back to windows-1252 for
// input that is not valid UTF-8.
func DecodeText(data []byte, charset string) (string, string, error) {
	if charset != "" {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return "", "", fmt.Errorf("unknown character set %q: %w", charset, err)
		}
		name, _ := htmlindex.Name(enc)
		text, err := decodeWith(enc, data)
		return text, name, err
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), EncodingUTF8BOM, nil
	case bytes.HasPrefix(data, bomUTF16LE):
		text, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
		return text, EncodingUTF16LE, err
	case bytes.HasPrefix(data, bomUTF16BE):
		text, err := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data)
		return text, EncodingUTF16BE, err
	case utf8.Valid(data):
		return string(data), EncodingUTF8, nil
	}

	text, err := decodeWith(charmap.Windows1252, data)
	return text, EncodingWindows1252, err
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode CUE text: %w", err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}
