package selection

import (
	"testing"

	"majesty-server/internal/domain"
)

func preRoundFixture() *fixture {
	fx := newFixture()
	fx.phase.phase = domain.PhasePreRound
	fx.phase.activeEntity = nil
	return fx
}

func TestInitiativeSelectAndSubmit(t *testing.T) {
	fx := preRoundFixture()

	res := fx.flow.SelectInitiativePC(0)
	if res.Msg == "" {
		t.Fatal("Expected a prompt for the initiative card")
	}
	if fx.flow.InitiativePC() != fx.hero {
		t.Fatal("First roster slot must select the hero")
	}

	// R - четвертая позиция, у героя только три карты
	res = fx.flow.HandleKey("hero", "r")
	if res.MsgType != "ERROR" {
		t.Errorf("Expected an out-of-hand notice, got %+v", res)
	}
	if fx.phase.HasInitiative("hero") {
		t.Fatal("Nothing must be submitted yet")
	}

	res = fx.flow.HandleKey("hero", "w")
	if !fx.phase.HasInitiative("hero") {
		t.Fatal("W must submit the second card")
	}
	want := domain.NewCard(3, domain.SuitHearts)
	if fx.phase.initiative["hero"] != want {
		t.Errorf("Expected %s, got %s", want.Name, fx.phase.initiative["hero"].Name)
	}
	if len(fx.hands.Hand("hero")) != 2 {
		t.Error("Initiative must consume the card")
	}
	if len(fx.hands.initiativeUsed) != 1 {
		t.Error("Card must leave through the initiative path, not the discard pile")
	}

	got := eventTypes(res.Events)
	if len(got) != 1 || got[0] != domain.EventInitiativeSubmitted {
		t.Errorf("Expected [initiative_submitted], got %v", got)
	}
	if fx.flow.InitiativePC() != nil {
		t.Error("Submission must clear the selected PC")
	}
}

func TestInitiativeFourthSlotWithFullHand(t *testing.T) {
	fx := preRoundFixture()
	fx.hands.hands["hero"] = append(fx.hands.hands["hero"], domain.NewCard(13, domain.SuitDiamonds))

	fx.flow.SelectInitiativePC(0)
	fx.flow.HandleKey("hero", "r")

	if fx.phase.initiative["hero"] != domain.NewCard(13, domain.SuitDiamonds) {
		t.Error("R must play the fourth card")
	}
}

func TestInitiativeSelectByNumberKey(t *testing.T) {
	fx := preRoundFixture()

	fx.flow.HandleKey("", "2")
	if fx.flow.InitiativePC() != fx.bard {
		t.Error("Key 2 must select the second roster slot")
	}
}

func TestInitiativeSkipsDeadAndSubmitted(t *testing.T) {
	fx := preRoundFixture()
	fx.hero.Conditions = domain.ConditionSet{domain.ConditionDead: true}

	if res := fx.flow.SelectInitiativePC(0); res.Msg != "" {
		t.Error("Dead PC must not be selectable")
	}

	fx.phase.initiative = map[domain.EntityID]domain.Card{"bard": domain.NewCard(2, domain.SuitClubs)}
	if res := fx.flow.SelectInitiativePC(1); res.Msg != "" {
		t.Error("PC with initiative already placed must not be selectable")
	}
	if fx.flow.InitiativePC() != nil {
		t.Error("No selection must stick")
	}
}

func TestInitiativeWrongPhaseIgnored(t *testing.T) {
	fx := newFixture() // awaiting_action

	if res := fx.flow.SelectInitiativePC(0); res.Msg != "" || fx.flow.InitiativePC() != nil {
		t.Error("Initiative input outside pre_round must be a no-op")
	}
	if res := fx.flow.ChooseInitiativeCard(0); res.Msg != "" {
		t.Error("Initiative card outside pre_round must be a no-op")
	}
}

func TestInitiativeEscapeClearsSelection(t *testing.T) {
	fx := preRoundFixture()

	fx.flow.SelectInitiativePC(0)
	fx.flow.HandleKey("hero", "escape")

	if fx.flow.InitiativePC() != nil {
		t.Error("Escape must drop the initiative selection")
	}
}

func TestBulkSubmitInitiative(t *testing.T) {
	fx := preRoundFixture()
	cleric := &domain.CombatEntity{ID: "cleric", Name: "Cleric", IsPC: true, Zone: "center"}
	rogue := &domain.CombatEntity{ID: "rogue", Name: "Rogue", IsPC: true, Zone: "far"}
	fx.phase.pcs = append(fx.phase.pcs, cleric, rogue)
	fx.hands.hands["rogue"] = []domain.Card{domain.NewCard(10, domain.SuitSpades)}
	// У клирика рука пуста, бард уже сдал
	fx.phase.initiative = map[domain.EntityID]domain.Card{"bard": domain.NewCard(4, domain.SuitHearts)}

	res := fx.flow.BulkSubmitInitiative()

	got := eventTypes(res.Events)
	if len(got) != 2 {
		t.Fatalf("Expected two submissions, got %d (%v)", len(got), got)
	}
	if res.Events[0].Actor != "hero" || res.Events[1].Actor != "rogue" {
		t.Errorf("Roster order broken: %s, %s", res.Events[0].Actor, res.Events[1].Actor)
	}

	// Space играет первую позицию руки
	if fx.phase.initiative["hero"] != domain.NewCard(7, domain.SuitSpades) {
		t.Errorf("Hero must play the first card, got %s", fx.phase.initiative["hero"].Name)
	}
	if fx.phase.initiative["rogue"] != domain.NewCard(10, domain.SuitSpades) {
		t.Errorf("Rogue must play the first card, got %s", fx.phase.initiative["rogue"].Name)
	}
	if _, ok := fx.phase.initiative["cleric"]; ok {
		t.Error("Empty hand must be skipped silently")
	}
	if len(fx.hands.Hand("bard")) != 2 {
		t.Error("Already-submitted PC must keep the hand")
	}
}

func TestBulkSubmitOutsidePreRound(t *testing.T) {
	fx := newFixture()

	res := fx.flow.BulkSubmitInitiative()
	if len(res.Events) != 0 || len(fx.hands.initiativeUsed) != 0 {
		t.Error("Bulk submit outside pre_round must be a no-op")
	}
}
