package challenge

import (
	"testing"

	"majesty-server/internal/domain"
)

func testChallenge() (*Challenge, *domain.CombatEntity, *domain.CombatEntity, *domain.CombatEntity) {
	hero := &domain.CombatEntity{ID: "hero", Name: "Hero", IsPC: true, Zone: "near"}
	bard := &domain.CombatEntity{ID: "bard", Name: "Bard", IsPC: true, Zone: "center"}
	goblin := &domain.CombatEntity{ID: "goblin", Name: "Goblin", Zone: "near"}

	graph := NewZoneGraph()
	graph.Link("near", "center")
	graph.Link("center", "far")

	zones := []domain.Zone{
		{ID: "near", Name: "Near"},
		{ID: "center", Name: "Center"},
		{ID: "far", Name: "Far"},
	}

	c := NewChallenge(42, zones, graph, []*domain.CombatEntity{hero, bard}, []*domain.CombatEntity{goblin})
	return c, hero, bard, goblin
}

func TestChallengeStartsInactive(t *testing.T) {
	c, _, _, _ := testChallenge()
	if c.Active() {
		t.Error("A fresh challenge must be inactive")
	}
	if err := c.SubmitInitiative("hero", domain.NewCard(5, domain.SuitSpades)); err == nil {
		t.Error("Initiative outside pre_round must be rejected")
	}
}

func TestStartRoundDealsHands(t *testing.T) {
	c, _, _, _ := testChallenge()
	c.StartRound()

	if c.Phase() != domain.PhasePreRound || c.Round() != 1 {
		t.Errorf("Expected pre_round of round 1, got %v round %d", c.Phase(), c.Round())
	}
	for _, id := range []domain.EntityID{"hero", "bard", "goblin"} {
		if got := len(c.Hands().Hand(id)); got != handSize {
			t.Errorf("%s: expected %d cards, got %d", id, handSize, got)
		}
	}
}

func TestInitiativeCollectionStartsTurns(t *testing.T) {
	c, hero, bard, goblin := testChallenge()
	c.StartRound()

	if err := c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades)); err != nil {
		t.Fatalf("Hero initiative rejected: %v", err)
	}
	if c.Phase() != domain.PhasePreRound {
		t.Fatal("Turns must not begin until every living PC has placed initiative")
	}
	if err := c.SubmitInitiative(hero.ID, domain.NewCard(2, domain.SuitClubs)); err == nil {
		t.Error("Double initiative must be rejected")
	}

	if err := c.SubmitInitiative(bard.ID, domain.NewCard(3, domain.SuitHearts)); err != nil {
		t.Fatalf("Bard initiative rejected: %v", err)
	}

	if c.Phase() != domain.PhaseAwaitingAction {
		t.Fatal("All initiative in - turns must begin")
	}
	if !c.HasInitiative(goblin.ID) {
		t.Error("NPC must auto-play an initiative card")
	}
	// Король героя бьет любую карту NPC и тройку барда
	if c.ActiveEntity() != hero {
		t.Errorf("Hero holds the King and must act first, got %v", c.ActiveEntity())
	}
}

func TestSubmitActionAdvancesTurn(t *testing.T) {
	c, hero, bard, _ := testChallenge()
	c.StartRound()
	c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades))
	c.SubmitInitiative(bard.ID, domain.NewCard(1, domain.SuitHearts))

	// Не его ход - отклоняем
	err := c.SubmitAction(&domain.SubmittedActionIntent{ActorID: bard.ID, Actor: bard, Action: domain.ActionMelee})
	if err == nil {
		t.Error("Out-of-turn intent must be rejected")
	}

	err = c.SubmitAction(&domain.SubmittedActionIntent{ActorID: hero.ID, Actor: hero, Action: domain.ActionMove, DestinationZone: "center"})
	if err != nil {
		t.Fatalf("Active entity intent rejected: %v", err)
	}

	if len(c.Accepted()) != 1 {
		t.Fatal("Accepted intent must be journaled")
	}
	if c.ActiveEntity() == hero {
		t.Error("Accepting an intent must pass the turn on")
	}
}

func TestDeadTargetRejected(t *testing.T) {
	c, hero, bard, goblin := testChallenge()
	c.StartRound()
	c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades))
	c.SubmitInitiative(bard.ID, domain.NewCard(1, domain.SuitHearts))

	goblin.Conditions = domain.ConditionSet{domain.ConditionDead: true}
	err := c.SubmitAction(&domain.SubmittedActionIntent{
		ActorID: hero.ID, Actor: hero,
		Action: domain.ActionMelee, Target: goblin, TargetID: goblin.ID,
	})
	if err == nil {
		t.Error("Intent against a dead target must be rejected")
	}
	if len(c.Accepted()) != 0 {
		t.Error("Rejected intent must not be journaled")
	}
}

func TestMinorWindowRoundTrip(t *testing.T) {
	c, hero, bard, _ := testChallenge()
	c.StartRound()
	c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades))
	c.SubmitInitiative(bard.ID, domain.NewCard(1, domain.SuitHearts))

	if err := c.DeclareMinorAction(&domain.MinorActionIntent{ActorID: bard.ID}); err == nil {
		t.Error("Minor declaration outside the window must be rejected")
	}

	c.OpenMinorWindow()
	if c.Phase() != domain.PhaseMinorWindow {
		t.Fatal("Expected minor_window")
	}

	if err := c.DeclareMinorAction(&domain.MinorActionIntent{ActorID: bard.ID, Action: domain.ActionRally}); err != nil {
		t.Fatalf("Minor declaration rejected: %v", err)
	}
	if len(c.Minors()) != 1 {
		t.Error("Minor intent must be journaled")
	}

	c.ResumeFromMinorWindow()
	if c.Phase() != domain.PhaseAwaitingAction {
		t.Error("Resume must restore the interrupted phase")
	}
}

func TestDeadSkippedInTurnOrder(t *testing.T) {
	c, hero, bard, goblin := testChallenge()
	c.StartRound()
	c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades))
	c.SubmitInitiative(bard.ID, domain.NewCard(12, domain.SuitHearts))

	// Бард умирает до своего хода
	bard.Conditions = domain.ConditionSet{domain.ConditionDead: true}
	c.SubmitAction(&domain.SubmittedActionIntent{ActorID: hero.ID, Actor: hero, Action: domain.ActionAvoid})

	if active := c.ActiveEntity(); active == bard {
		t.Error("A dead participant must be skipped in the turn order")
	}
	_ = goblin
}

func TestRoundRollsOverWhenQueueEmpty(t *testing.T) {
	c, hero, bard, goblin := testChallenge()
	c.StartRound()
	c.SubmitInitiative(hero.ID, domain.NewCard(13, domain.SuitSpades))
	c.SubmitInitiative(bard.ID, domain.NewCard(12, domain.SuitHearts))

	// Проигрываем все три хода раунда
	for i := 0; i < 3 && c.Phase() == domain.PhaseAwaitingAction; i++ {
		actor := c.ActiveEntity()
		if actor == goblin {
			// NPC не шлет интент через ядро выбора - двигаем ход напрямую
			c.AdvanceTurn()
			continue
		}
		if err := c.SubmitAction(&domain.SubmittedActionIntent{ActorID: actor.ID, Actor: actor, Action: domain.ActionAvoid}); err != nil {
			t.Fatalf("Turn %d rejected: %v", i, err)
		}
	}

	if c.Phase() != domain.PhasePreRound || c.Round() != 2 {
		t.Errorf("Queue exhausted - expected pre_round of round 2, got %v round %d", c.Phase(), c.Round())
	}
	if c.HasInitiative(hero.ID) {
		t.Error("New round must clear initiative bookkeeping")
	}
}

func TestZoneGraph(t *testing.T) {
	g := NewZoneGraph()
	g.Link("a", "b")
	g.AddZone("c")

	if !g.Adjacent("a", "b") || !g.Adjacent("b", "a") {
		t.Error("Links must be symmetric")
	}
	if g.Adjacent("a", "c") {
		t.Error("Unlinked zones are not adjacent")
	}
	if !g.Knows("c") {
		t.Error("AddZone must make the zone known")
	}
	if g.Knows("ghost") {
		t.Error("Unregistered zone must be unknown")
	}
}
