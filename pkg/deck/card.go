package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// canonical suit order used to build a deck
var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Priority returns the reveal priority of the suit (spades > hearts > diamonds > clubs)
func (s Suit) Priority() int {
	switch s {
	case Spades:
		return 4
	case Hearts:
		return 3
	case Diamonds:
		return 2
	case Clubs:
		return 1
	}

	return 0
}

// Card is an individual playing card
// Index is the position of the card within an unshuffled deck. Two cards from the same deck
// never share an index, so it identifies the physical card.
type Card struct {
	Rank  int  `json:"rank"`
	Suit  Suit `json:"suit"`
	Index int  `json:"index"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// NewCard returns a card with its canonical index
func NewCard(rank int, suit Suit) *Card {
	return &Card{
		Rank:  rank,
		Suit:  suit,
		Index: canonicalIndex(rank, suit),
	}
}

func canonicalIndex(rank int, suit Suit) int {
	for i, s := range suits {
		if s == suit {
			return i*13 + rank - 2
		}
	}

	panic(fmt.Sprintf("unknown suit: %s", suit))
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// MarshalJSON adds the display label next to rank and suit
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rank  int    `json:"rank"`
		Suit  Suit   `json:"suit"`
		Index int    `json:"index"`
		Label string `json:"label"`
	}{
		Rank:  c.Rank,
		Suit:  c.Suit,
		Index: c.Index,
		Label: c.String(),
	})
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// RevealsBefore returns true if c is presented before card: higher rank first, then suit priority
func (c *Card) RevealsBefore(card *Card) bool {
	if c.Rank != card.Rank {
		return c.Rank > card.Rank
	}

	return c.Suit.Priority() > card.Suit.Priority()
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
