package camelcards

import (
	"fmt"
	"sort"
)

// Tiebreak is the rank of each card in the order it was dealt
type Tiebreak [HandSize]int

// Hand is a five card label with its bid
// A Hand is never modified after NewHand returns it
type Hand struct {
	Label    string
	Category Category
	Tiebreak Tiebreak
	Bid      uint64
}

// NewHand classifies label and returns a hand with the bid attached
func NewHand(label string, bid uint64) (Hand, error) {
	category, tiebreak, err := Classify(label)
	if err != nil {
		return Hand{}, err
	}

	return Hand{
		Label:    label,
		Category: category,
		Tiebreak: tiebreak,
		Bid:      bid,
	}, nil
}

func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Label, h.Category)
}

// Classify returns the category and tiebreak for a hand label
func Classify(label string) (Category, Tiebreak, error) {
	cards, err := CardsFromString(label)
	if err != nil {
		return 0, Tiebreak{}, err
	}

	if len(cards) != HandSize {
		return 0, Tiebreak{}, fmt.Errorf("%w: got %d", ErrInvalidLabelLength, len(cards))
	}

	var tiebreak Tiebreak
	for i, card := range cards {
		tiebreak[i] = card.Rank()
	}

	return categoryFromCounts(countCards(cards)), tiebreak, nil
}

// CategoryOf returns the category for a hand label
func CategoryOf(label string) (Category, error) {
	category, _, err := Classify(label)
	return category, err
}

// countCards returns how many times each distinct card appears, largest group first
func countCards(cards []Card) [HandSize]int {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	groups := make([]int, 0, HandSize)
	for i, card := range sorted {
		if i > 0 && card == sorted[i-1] {
			groups[len(groups)-1]++
			continue
		}

		groups = append(groups, 1)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(groups)))

	var counts [HandSize]int
	copy(counts[:], groups)
	return counts
}
