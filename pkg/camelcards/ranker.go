package camelcards

import (
	"fmt"
	"io"
	"math/bits"
	"sort"

	"fortio.org/safecast"
)

// RankedHand is a hand with its position after ranking
type RankedHand struct {
	Hand
	Rank     int
	Winnings uint64
}

// Compare orders hands by category, then by the tiebreak from the first card on
// It returns -1 if a is weaker than b, 1 if a is stronger, and 0 if they tie
func Compare(a, b Hand) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}

		return 1
	}

	for i := range a.Tiebreak {
		if a.Tiebreak[i] < b.Tiebreak[i] {
			return -1
		} else if a.Tiebreak[i] > b.Tiebreak[i] {
			return 1
		}
	}

	return 0
}

// Rank sorts the hands weakest to strongest and numbers them from 1
// Hands that tie keep their input order. The hands slice is not modified
func Rank(hands []Hand) ([]RankedHand, error) {
	sorted := make([]Hand, len(hands))
	copy(sorted, hands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})

	ranked := make([]RankedHand, len(sorted))
	for i, hand := range sorted {
		rank, err := safecast.Conv[uint64](i + 1)
		if err != nil {
			return nil, err
		}

		hi, winnings := bits.Mul64(rank, hand.Bid)
		if hi != 0 {
			return nil, fmt.Errorf("%w: hand %s at rank %d", ErrWinningsOverflow, hand.Label, i+1)
		}

		ranked[i] = RankedHand{
			Hand:     hand,
			Rank:     i + 1,
			Winnings: winnings,
		}
	}

	return ranked, nil
}

// SumWinnings adds up the winnings of ranked hands
func SumWinnings(ranked []RankedHand) (uint64, error) {
	var total uint64
	for _, r := range ranked {
		var carry uint64
		total, carry = bits.Add64(total, r.Winnings, 0)
		if carry != 0 {
			return 0, ErrWinningsOverflow
		}
	}

	return total, nil
}

// Winnings returns the sum of rank × bid over all hands
func Winnings(hands []Hand) (uint64, error) {
	ranked, err := Rank(hands)
	if err != nil {
		return 0, err
	}

	return SumWinnings(ranked)
}

// TotalWinnings parses the hands from r and returns their winnings
func TotalWinnings(r io.Reader) (uint64, error) {
	hands, err := ParseHands(r)
	if err != nil {
		return 0, err
	}

	return Winnings(hands)
}
