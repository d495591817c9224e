package camelcards

import "strings"

// Alphabet lists every card symbol from weakest to strongest
const Alphabet = "23456789TJQKA"

// HandSize is the number of cards in a hand
const HandSize = 5

// Card is a single card symbol, i.e., 'T' or 'A'
type Card byte

// face cards
const (
	Ten   Card = 'T'
	Jack  Card = 'J'
	Queen Card = 'Q'
	King  Card = 'K'
	Ace   Card = 'A'
)

// CardFromRune returns the card for r
func CardFromRune(r rune) (Card, error) {
	if r > 0x7f || !strings.ContainsRune(Alphabet, r) {
		return 0, symbolError(r)
	}

	return Card(r), nil
}

// Rank returns the strength of the card, 0 for a two up to 12 for an ace
func (c Card) Rank() int {
	return strings.IndexByte(Alphabet, byte(c))
}

// IsValid returns true if the card is in the alphabet
func (c Card) IsValid() bool {
	return c.Rank() >= 0
}

func (c Card) String() string {
	return string(rune(c))
}

// CardsFromString parses a hand label into cards
func CardsFromString(s string) ([]Card, error) {
	cards := make([]Card, 0, len(s))
	for _, r := range s {
		card, err := CardFromRune(r)
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// CardsToString joins cards back into a label
func CardsToString(cards []Card) string {
	var sb strings.Builder
	sb.Grow(len(cards))
	for _, c := range cards {
		sb.WriteByte(byte(c))
	}

	return sb.String()
}
