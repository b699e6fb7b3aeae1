package challenge

import (
	"testing"

	"majesty-server/internal/domain"
)

func TestInitiativeQueueOrder(t *testing.T) {
	pq := make(InitiativeQueue, 0)

	e1 := &domain.CombatEntity{ID: "e1"}
	e2 := &domain.CombatEntity{ID: "e2"}
	e3 := &domain.CombatEntity{ID: "e3"}

	pq.PushItem(&InitiativeItem{Entity: e1, Card: domain.NewCard(5, domain.SuitSpades), Order: 0})
	pq.PushItem(&InitiativeItem{Entity: e2, Card: domain.NewCard(13, domain.SuitHearts), Order: 1})
	pq.PushItem(&InitiativeItem{Entity: e3, Card: domain.NewCard(9, domain.SuitClubs), Order: 2})

	if pq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", pq.Len())
	}

	// Старшая карта ходит первой
	first := pq.PopItem()
	if first.Entity.ID != "e2" {
		t.Errorf("Expected e2 (King), got %s", first.Entity.ID)
	}
	second := pq.PopItem()
	if second.Entity.ID != "e3" {
		t.Errorf("Expected e3 (9), got %s", second.Entity.ID)
	}
	third := pq.PopItem()
	if third.Entity.ID != "e1" {
		t.Errorf("Expected e1 (5), got %s", third.Entity.ID)
	}
	if pq.PopItem() != nil {
		t.Error("Empty queue must pop nil")
	}
}

func TestInitiativeQueueTieBreaksByRosterOrder(t *testing.T) {
	pq := make(InitiativeQueue, 0)

	late := &domain.CombatEntity{ID: "late"}
	early := &domain.CombatEntity{ID: "early"}

	pq.PushItem(&InitiativeItem{Entity: late, Card: domain.NewCard(7, domain.SuitHearts), Order: 3})
	pq.PushItem(&InitiativeItem{Entity: early, Card: domain.NewCard(7, domain.SuitSpades), Order: 1})

	if pq.PopItem().Entity.ID != "early" {
		t.Error("Equal values must fall back to roster order")
	}
	if pq.PopItem().Entity.ID != "late" {
		t.Error("Later roster slot must come second")
	}
}

func TestInitiativeQueuePeek(t *testing.T) {
	pq := make(InitiativeQueue, 0)
	if pq.Peek() != nil {
		t.Error("Empty queue must peek nil")
	}

	e := &domain.CombatEntity{ID: "e"}
	pq.PushItem(&InitiativeItem{Entity: e, Card: domain.NewCard(2, domain.SuitClubs)})
	if pq.Peek().Entity.ID != "e" || pq.Len() != 1 {
		t.Error("Peek must not consume the item")
	}
}
