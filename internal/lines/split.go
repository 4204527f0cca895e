package lines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidInput marks input that is absent or not text.
var ErrInvalidInput = errors.New("invalid input")

// Split breaks text into lines on "\n" and "\r\n", dropping the empty element
// left by a trailing terminator. Empty text yields an empty slice. A "\r" not
// followed by "\n" is part of the line.
func Split(text string) []string {
	parts := strings.Split(text, "\n")
	last := len(parts) - 1
	for i := range parts[:last] {
		parts[i] = strings.TrimSuffix(parts[i], "\r")
	}
	if parts[last] == "" {
		parts = parts[:last]
	}
	return parts
}

// SplitBytes validates that data is UTF-8 text and splits it.
func SplitBytes(data []byte) ([]string, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no data", ErrInvalidInput)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: data is not UTF-8 text", ErrInvalidInput)
	}
	return Split(string(data)), nil
}

// Read consumes r and splits its contents. A leading byte-order mark selects
// UTF-16 decoding so listings saved by Windows shells are accepted; without a
// BOM the input must already be UTF-8.
func Read(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no reader", ErrInvalidInput)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return SplitBytes(decoded)
}

func decode(raw []byte) ([]byte, error) {
	if !hasBOM(raw) {
		return raw, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidInput, err)
	}
	return out, nil
}

func hasBOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(raw, []byte{0xFE, 0xFF})
}
