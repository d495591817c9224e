package camelcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c, tb, err := Classify("22TTT")
	assert.NoError(t, err)
	assert.Equal(t, FullHouse, c)
	assert.Equal(t, Tiebreak{0, 0, 8, 8, 8}, tb)

	// five of a kind is its own category, not a pair
	c, tb, err = Classify("33333")
	assert.NoError(t, err)
	assert.Equal(t, FiveOfAKind, c)
	assert.Equal(t, Tiebreak{1, 1, 1, 1, 1}, tb)

	c, tb, err = Classify("2AAAA")
	assert.NoError(t, err)
	assert.Equal(t, FourOfAKind, c)
	assert.Equal(t, Tiebreak{0, 12, 12, 12, 12}, tb)
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		label    string
		expected Category
	}{
		{"AAAAA", FiveOfAKind},
		{"AA8AA", FourOfAKind},
		{"23332", FullHouse},
		{"TTT98", ThreeOfAKind},
		{"23432", TwoPair},
		{"A23A4", OnePair},
		{"23456", HighCard},
		{"32T3K", OnePair},
		{"T55J5", ThreeOfAKind},
		{"KK677", TwoPair},
		{"KTJJT", TwoPair},
		{"QQQJA", ThreeOfAKind},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			c, err := CategoryOf(test.label)
			assert.NoError(t, err)
			assert.Equal(t, test.expected, c)
		})
	}
}

func TestClassify_errors(t *testing.T) {
	_, _, err := Classify("2345")
	assert.ErrorIs(t, err, ErrInvalidLabelLength)

	_, _, err = Classify("234567")
	assert.ErrorIs(t, err, ErrInvalidLabelLength)

	_, _, err = Classify("")
	assert.ErrorIs(t, err, ErrInvalidLabelLength)

	_, _, err = Classify("2345X")
	assert.ErrorIs(t, err, ErrInvalidCardSymbol)

	_, _, err = Classify("t2345")
	assert.ErrorIs(t, err, ErrInvalidCardSymbol)

	_, _, err = Classify("1TJQK")
	assert.ErrorIs(t, err, ErrInvalidCardSymbol)

	_, _, err = Classify("ÄTJQK")
	assert.ErrorIs(t, err, ErrInvalidCardSymbol)
}

// precedenceCategory classifies with an ordered chain of count checks
// It is kept as an independent oracle for the direct mapping
func precedenceCategory(label string) Category {
	groups := make(map[rune]int)
	for _, r := range label {
		groups[r]++
	}

	has := func(n int) bool {
		for _, count := range groups {
			if count == n {
				return true
			}
		}

		return false
	}

	if len(groups) == 5 {
		return HighCard
	} else if has(4) {
		return FourOfAKind
	} else if has(3) && has(2) {
		return FullHouse
	} else if has(3) {
		return ThreeOfAKind
	} else if has(5) {
		return FiveOfAKind
	} else if has(2) && len(groups) == 3 {
		return TwoPair
	}

	return OnePair
}

func TestClassify_matchesPrecedenceChain(t *testing.T) {
	// every shape of count multiset appears among these labels
	labels := []string{
		"33333", "2AAAA", "AAAA2", "22TTT", "TTT22", "T2TT9",
		"KK677", "KTJJT", "32T3K", "23456", "AKQJT", "99A99",
	}

	for _, label := range labels {
		c, err := CategoryOf(label)
		assert.NoError(t, err)
		assert.Equal(t, precedenceCategory(label), c, label)
	}
}

func TestNewHand(t *testing.T) {
	h, err := NewHand("QQQJA", 483)
	assert.NoError(t, err)
	assert.Equal(t, Hand{
		Label:    "QQQJA",
		Category: ThreeOfAKind,
		Tiebreak: Tiebreak{10, 10, 10, 9, 12},
		Bid:      483,
	}, h)
	assert.Equal(t, "QQQJA (Three of a kind)", h.String())

	_, err = NewHand("QQQJZ", 483)
	assert.ErrorIs(t, err, ErrInvalidCardSymbol)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.Equal(t, "Two pair", TwoPair.String())
	assert.Equal(t, "Three of a kind", ThreeOfAKind.String())
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Four of a kind", FourOfAKind.String())
	assert.Equal(t, "Five of a kind", FiveOfAKind.String())
	assert.Panics(t, func() {
		_ = Category(0).String()
	})
}

func TestCategory_order(t *testing.T) {
	assert.Equal(t, 1, int(HighCard))
	assert.Equal(t, 7, int(FiveOfAKind))
	assert.True(t, HighCard < OnePair)
	assert.True(t, OnePair < TwoPair)
	assert.True(t, TwoPair < ThreeOfAKind)
	assert.True(t, ThreeOfAKind < FullHouse)
	assert.True(t, FullHouse < FourOfAKind)
	assert.True(t, FourOfAKind < FiveOfAKind)
}
