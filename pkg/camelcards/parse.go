package camelcards

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a line in the format of "<hand> <bid>", i.e., "32T3K 765"
func ParseLine(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: got %d fields", ErrMalformedLine, len(fields))
	}

	bid, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidBid, fields[1])
	}

	return NewHand(fields[0], bid)
}

// ParseHands parses one hand per line
// Blank lines are ignored. Parsing stops at the first bad line, which is reported as a *LineError
func ParseHands(r io.Reader) ([]Hand, error) {
	hands := make([]Hand, 0)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		hand, err := ParseLine(text)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Err: err}
		}

		hands = append(hands, hand)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read hands: %w", err)
	}

	return hands, nil
}
