package decoder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/circuitcode/textcodec"
)

var (
	// ErrInsufficientVariants indicates fewer than three variant documents.
	ErrInsufficientVariants = errors.New("decoder: three variant documents required")
	// ErrTooManyVariants indicates more than three variant documents.
	ErrTooManyVariants = errors.New("decoder: at most three variant documents accepted")
	// ErrStructuralParse indicates a document could not be turned into segments,
	// or the documents disagree on their panel count.
	ErrStructuralParse = errors.New("decoder: structural parse failure")
	// ErrChecksumMismatch is re-exported from textcodec for callers that only
	// import the decoder.
	ErrChecksumMismatch = textcodec.ErrChecksumMismatch
)

// PanelError reports a panel whose recovered payload failed validation.
type PanelError struct {
	Panel int
	Err   error
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("decoder: panel %d: %v", e.Panel, e.Err)
}

func (e *PanelError) Unwrap() error { return e.Err }
