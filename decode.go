package hexdisplay

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOddLength is returned by Decode when the input has an odd number of digits.
	ErrOddLength = errors.New("hex length must be even")

	// ErrInvalidChar is returned by Decode when the input contains a non-hex character.
	ErrInvalidChar = errors.New("hex contains non-hex character")
)

// Decode parses hex text into bytes. It is the inverse of rendering a view in
// either case: input is case-insensitive and may carry an optional "0x" prefix.
func Decode(s string) (Bytes, error) {
	h := s
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	b, err := hex.DecodeString(h)
	if err != nil {
		// DecodeString fails only with InvalidByteError or ErrLength.
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidChar, rune(invalid), strings.IndexByte(h, byte(invalid)))
		}
		return nil, fmt.Errorf("%w, got %d", ErrOddLength, len(h))
	}
	return Bytes(b), nil
}
