package domain

import "fmt"

// Suit - масть карты.
type Suit uint8

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitDiamonds
	SuitClubs
)

var suitToString = map[Suit]string{
	SuitSpades:   "spades",
	SuitHearts:   "hearts",
	SuitDiamonds: "diamonds",
	SuitClubs:    "clubs",
}

func (s Suit) String() string {
	if val, ok := suitToString[s]; ok {
		return val
	}
	return "unknown"
}

// Card - игральная карта из руки.
// Идентичность карты позиционная: внутри руки она адресуется индексом,
// поэтому интенты несут и карту, и её позицию.
type Card struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // 1 (туз) .. 13 (король)
	Suit  Suit   `json:"suit"`
}

var faceNames = map[int]string{
	1:  "Ace",
	11: "Jack",
	12: "Queen",
	13: "King",
}

// NewCard собирает карту с человекочитаемым именем ("7 of Spades").
func NewCard(value int, suit Suit) Card {
	face, ok := faceNames[value]
	if !ok {
		face = fmt.Sprintf("%d", value)
	}
	return Card{
		Name:  fmt.Sprintf("%s of %s", face, titleSuit(suit)),
		Value: value,
		Suit:  suit,
	}
}

func titleSuit(s Suit) string {
	switch s {
	case SuitSpades:
		return "Spades"
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}
