package camelcards

import "fmt"

// Category is the strength class of a hand, i.e., full house
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// categoryFromCounts maps the symbol counts, sorted high to low and padded with zeros, to a category
func categoryFromCounts(counts [HandSize]int) Category {
	switch counts {
	case [HandSize]int{5}:
		return FiveOfAKind
	case [HandSize]int{4, 1}:
		return FourOfAKind
	case [HandSize]int{3, 2}:
		return FullHouse
	case [HandSize]int{3, 1, 1}:
		return ThreeOfAKind
	case [HandSize]int{2, 2, 1}:
		return TwoPair
	case [HandSize]int{2, 1, 1, 1}:
		return OnePair
	case [HandSize]int{1, 1, 1, 1, 1}:
		return HighCard
	default:
		panic(fmt.Sprintf("impossible card counts: %v", counts))
	}
}
