package camelcards

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is returned when a line is not exactly "<hand> <bid>"
var ErrMalformedLine = errors.New("line must contain a hand and a bid")

// ErrInvalidBid is returned when the bid is not a non-negative integer
var ErrInvalidBid = errors.New("bid must be a non-negative integer")

// ErrInvalidCardSymbol is returned when a hand contains a symbol outside the alphabet
var ErrInvalidCardSymbol = errors.New("invalid card symbol")

// ErrInvalidLabelLength is returned when a hand does not have exactly five cards
var ErrInvalidLabelLength = errors.New("hand must have exactly five cards")

// ErrWinningsOverflow is returned when the total winnings do not fit in a uint64
var ErrWinningsOverflow = errors.New("total winnings overflow uint64")

// LineError is an error tied to a specific line of input
type LineError struct {
	Line int
	Text string
	Err  error
}

func (l *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", l.Line, l.Text, l.Err)
}

// Unwrap returns the underlying error
func (l *LineError) Unwrap() error {
	return l.Err
}

func symbolError(r rune) error {
	return fmt.Errorf("%w: %q", ErrInvalidCardSymbol, r)
}
