package textcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter indicates a rune outside the 44-symbol alphabet.
	ErrInvalidCharacter = errors.New("textcodec: invalid character")
	// ErrChecksumMismatch indicates a decoded payload failed its integrity
	// check (checksum, length header or code range).
	ErrChecksumMismatch = errors.New("textcodec: checksum mismatch")
)

// InvalidCharacterError reports the offending rune and its rune position in
// the input text.
type InvalidCharacterError struct {
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("textcodec: invalid character %q at position %d", e.Char, e.Position)
}

// Unwrap lets errors.Is match ErrInvalidCharacter.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }
