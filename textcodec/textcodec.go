package textcodec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/circuitcode/gridmodel"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxChars is the largest number of characters one panel carries.
	MaxChars = 23
	// AlphabetSize is the number of encodable symbols.
	AlphabetSize = 44

	lengthBits   = 5
	checksumBits = 3
	codeBits     = 6
	checksumMask = 1<<checksumBits - 1
)

// alphabet lists symbols in code order.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,-!?':"

var codeTable = func() map[rune]int {
	m := make(map[rune]int, AlphabetSize)
	for i, r := range alphabet {
		m[r] = i
	}
	return m
}()

// Panel is one chunk of a message: its character codes, the payload bits and
// the data seed that drives decorative choices.
type Panel struct {
	Index int
	Codes []int
	Bits  gridmodel.Bits
	Seed  uint64
}

// Text returns the panel's characters.
func (p Panel) Text() string {
	var b strings.Builder
	for _, c := range p.Codes {
		r, _ := SymbolOf(c)
		b.WriteRune(r)
	}
	return b.String()
}

// CodeOf returns the code of an already folded rune.
func CodeOf(r rune) (int, bool) {
	c, ok := codeTable[r]
	return c, ok
}

// SymbolOf returns the rune for code c.
func SymbolOf(c int) (rune, bool) {
	if c < 0 || c >= AlphabetSize {
		return 0, false
	}
	return rune(alphabet[c]), true
}

// Codes folds text to upper case rune by rune and maps it to alphabet codes.
// The first rune outside the alphabet aborts with *InvalidCharacterError.
func Codes(text string) ([]int, error) {
	upper := cases.Upper(language.Und)
	codes := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		folded := []rune(upper.String(string(r)))
		if len(folded) != 1 {
			return nil, &InvalidCharacterError{Char: r, Position: pos}
		}
		c, ok := CodeOf(folded[0])
		if !ok {
			return nil, &InvalidCharacterError{Char: r, Position: pos}
		}
		codes = append(codes, c)
		pos++
	}
	return codes, nil
}

// Encode validates text and splits it into panels of at most MaxChars
// characters. Empty text yields a single empty panel. No panel is returned
// when any character is invalid.
func Encode(text string) ([]Panel, error) {
	codes, err := Codes(text)
	if err != nil {
		return nil, err
	}
	return lo.Map(Chunk(codes), func(chunk []int, i int) Panel {
		return Panel{Index: i, Codes: chunk, Bits: Pack(chunk), Seed: DataSeed(chunk)}
	}), nil
}

// Chunk splits codes into consecutive runs of at most MaxChars. An empty
// input still yields one empty chunk.
func Chunk(codes []int) [][]int {
	chunks := lo.Chunk(codes, MaxChars)
	if len(chunks) == 0 {
		return [][]int{{}}
	}
	return chunks
}

// Pack writes the header and codes of one panel into a payload. Callers
// guarantee len(codes) ≤ MaxChars and every code < AlphabetSize.
func Pack(codes []int) gridmodel.Bits {
	var bits gridmodel.Bits
	w := bitWriter{bits: &bits}
	w.write(len(codes), lengthBits)
	w.write(Checksum(codes), checksumBits)
	for _, c := range codes {
		w.write(c, codeBits)
	}
	return bits
}

// Decode reads one panel payload back into text.
//
// Errors: ErrChecksumMismatch (wrapped) when the length header exceeds
// MaxChars, a code falls outside the alphabet, or the recomputed checksum
// disagrees with the stored one.
func Decode(bits gridmodel.Bits) (string, error) {
	r := bitReader{bits: &bits}
	n := r.read(lengthBits)
	stored := r.read(checksumBits)
	if n > MaxChars {
		return "", fmt.Errorf("textcodec: length header %d exceeds %d: %w", n, MaxChars, ErrChecksumMismatch)
	}
	codes := make([]int, n)
	for i := range codes {
		codes[i] = r.read(codeBits)
		if codes[i] >= AlphabetSize {
			return "", fmt.Errorf("textcodec: code %d at %d outside alphabet: %w", codes[i], i, ErrChecksumMismatch)
		}
	}
	if got := Checksum(codes); got != stored {
		return "", fmt.Errorf("textcodec: checksum %d, stored %d: %w", got, stored, ErrChecksumMismatch)
	}
	return Panel{Codes: codes}.Text(), nil
}

// Checksum is the XOR of all codes masked to three bits.
func Checksum(codes []int) int {
	return lo.Reduce(codes, func(acc, c int, _ int) int { return acc ^ c }, 0) & checksumMask
}

// DataSeed derives the decorative seed of a panel from its codes. It is
// sensitive to both the characters and their order.
func DataSeed(codes []int) uint64 {
	seed := gridmodel.Fold(uint64(len(codes)), uint64(Checksum(codes)))
	for _, c := range codes {
		seed = gridmodel.Fold(seed, uint64(c)+1)
	}
	return seed
}

type bitWriter struct {
	bits *gridmodel.Bits
	pos  int
}

func (w *bitWriter) write(v, width int) {
	for i := width - 1; i >= 0; i-- {
		w.bits[w.pos] = v>>i&1 == 1
		w.pos++
	}
}

type bitReader struct {
	bits *gridmodel.Bits
	pos  int
}

func (r *bitReader) read(width int) int {
	v := 0
	for i := 0; i < width; i++ {
		v <<= 1
		if r.bits[r.pos] {
			v |= 1
		}
		r.pos++
	}
	return v
}
