// Package textcodec converts text to fixed-length 148-bit panel payloads and back.
//
// Payload layout (MSB first):
//
//	[ L:5 ][ checksum:3 ][ code₀:6 ] … [ code_{L-1}:6 ][ zero padding ]
//
// L is the character count of the panel (0..23). The checksum is the XOR of
// all L codes masked to three bits. Text longer than MaxChars is split into
// consecutive panels, each self-describing.
//
// Alphabet (44 symbols):
//
//	A–Z → 0–25, 0–9 → 26–35, ' ' → 36, '.' → 37, ',' → 38,
//	'-' → 39, '!' → 40, '?' → 41, '\'' → 42, ':' → 43
//
// Letters are case-folded before lookup. Any other rune fails with an
// *InvalidCharacterError wrapping ErrInvalidCharacter.
package textcodec
