package challenge

import (
	"testing"

	"majesty-server/internal/domain"
)

func TestDeckDeterministicShuffle(t *testing.T) {
	a := NewDeck(42)
	b := NewDeck(42)

	for i := 0; i < 52; i++ {
		ca, oka := a.Draw()
		cb, okb := b.Draw()
		if !oka || !okb {
			t.Fatalf("Deck exhausted early at %d", i)
		}
		if ca != cb {
			t.Fatalf("Same seed must give the same order, diverged at %d: %s vs %s", i, ca.Name, cb.Name)
		}
	}
	if _, ok := a.Draw(); ok {
		t.Error("53rd draw from a fresh deck must fail")
	}
}

func TestDeckRecyclesDiscards(t *testing.T) {
	d := NewDeck(7)
	for i := 0; i < 52; i++ {
		d.Draw()
	}
	d.Bury(domain.NewCard(1, domain.SuitSpades))

	card, ok := d.Draw()
	if !ok {
		t.Fatal("Discard pile must be reshuffled into the draw pile")
	}
	if card != domain.NewCard(1, domain.SuitSpades) {
		t.Errorf("Expected the buried ace back, got %s", card.Name)
	}
}

func TestHandLedgerDealAndCopy(t *testing.T) {
	l := NewHandLedger(NewDeck(1))
	l.Deal("hero", 4)

	hand := l.Hand("hero")
	if len(hand) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(hand))
	}

	original := hand[0]
	hand[0] = domain.Card{Name: "Forged", Value: 99}
	if l.Hand("hero")[0] != original {
		t.Error("Hand must return a copy")
	}

	// Deal добирает, не пересдает
	l.Deal("hero", 4)
	if len(l.Hand("hero")) != 4 {
		t.Error("Deal to the same size must be a no-op")
	}
}

func TestHandLedgerDiscardByPosition(t *testing.T) {
	l := NewHandLedger(NewDeck(1))
	l.Deal("hero", 3)
	want := l.Hand("hero")[1]

	card, err := l.Discard("hero", 1)
	if err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if card != want {
		t.Errorf("Expected %s, got %s", want.Name, card.Name)
	}
	if len(l.Hand("hero")) != 2 {
		t.Error("Discard must shrink the hand")
	}

	if _, err := l.Discard("hero", 5); err == nil {
		t.Error("Out-of-range discard must fail")
	}
	if _, err := l.Discard("ghost", 0); err == nil {
		t.Error("Unknown hand must fail")
	}
}
