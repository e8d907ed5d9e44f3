package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"showdown-server/internal/rng"
)

// ErrEndOfDeck is the panic value when a draw goes past the last card.
// A round never needs more than 26 cards, so this is a programming error.
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards never move once shuffled. The cursor marks the next card to draw.
type Deck struct {
	Cards  []*Card `json:"-"`
	cursor int
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	d.Cards = cards
	d.cursor = 0
}

// Shuffle rebuilds the deck and performs a Fisher-Yates shuffle with the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	// we always want to shuffle from an unshuffled deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next n cards
// Drawing past the end of the deck panics with ErrEndOfDeck
func (d *Deck) Draw(n int) []*Card {
	if !d.CanDraw(n) {
		panic(ErrEndOfDeck)
	}

	cards := make([]*Card, n)
	copy(cards, d.Cards[d.cursor:d.cursor+n])
	d.cursor += n

	return cards
}

// Burn draws a single card and throws it away
func (d *Deck) Burn() {
	_ = d.Draw(1)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards)-d.cursor >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards) - d.cursor
}

// Position returns the draw cursor
func (d *Deck) Position() int {
	return d.cursor
}
