package calendar

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeShiftJIS converts a Shift-JIS buffer to UTF-8.
// Decoding is strict: x/text substitutes U+FFFD for unmappable sequences and
// Shift-JIS has no code point for U+FFFD, so any replacement rune in the output
// means the input was invalid.
func DecodeShiftJIS(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return "", &DecodeError{Msg: err.Error()}
	}

	text := string(decoded)
	if i := strings.IndexRune(text, utf8.RuneError); i >= 0 {
		line := strings.Count(text[:i], "\n") + 1
		return "", &DecodeError{Line: line, Msg: "invalid Shift-JIS byte sequence"}
	}

	return text, nil
}
