package systems

import (
	"testing"

	"majesty-server/internal/domain"
)

func makeEntity(id string, isPC bool, zone domain.ZoneID) *domain.CombatEntity {
	return &domain.CombatEntity{
		ID:   domain.EntityID(id),
		Name: id,
		IsPC: isPC,
		Zone: zone,
	}
}

func TestLegalTargetsMeleeLocality(t *testing.T) {
	def := domain.ActionDefinition{ID: domain.ActionMelee, TargetType: domain.TargetEnemy, RequiresTarget: true}

	actor := makeEntity("hero", true, "near")
	near := makeEntity("goblin", false, "near")
	far := makeEntity("archer", false, "far")

	targets := LegalTargets(def, actor, []*domain.CombatEntity{near, far}, nil)

	if len(targets) != 1 || targets[0].ID != "goblin" {
		t.Fatalf("Expected only the goblin in the actor's zone, got %d targets", len(targets))
	}
	for _, target := range targets {
		if target.Zone != actor.Zone {
			t.Errorf("Melee target %s outside actor zone", target.ID)
		}
	}
}

func TestLegalTargetsRangedIgnoresZones(t *testing.T) {
	def := domain.ActionDefinition{ID: domain.ActionShoot, TargetType: domain.TargetEnemy, RequiresTarget: true}

	actor := makeEntity("hero", true, "near")
	near := makeEntity("goblin", false, "near")
	far := makeEntity("archer", false, "far")

	targets := LegalTargets(def, actor, []*domain.CombatEntity{near, far}, nil)
	if len(targets) != 2 {
		t.Fatalf("Expected 2 ranged targets, got %d", len(targets))
	}
}

func TestLegalTargetsDeadExclusion(t *testing.T) {
	def := domain.ActionDefinition{ID: domain.ActionShoot, TargetType: domain.TargetAny, RequiresTarget: true}

	actor := makeEntity("hero", true, "near")
	corpse := makeEntity("corpse", false, "near")
	corpse.Conditions = domain.ConditionSet{domain.ConditionDead: true}
	alive := makeEntity("goblin", false, "far")

	targets := LegalTargets(def, actor, []*domain.CombatEntity{corpse, alive}, []*domain.CombatEntity{actor})

	for _, target := range targets {
		if target.IsDead() {
			t.Errorf("Dead entity %s appeared as a target", target.ID)
		}
	}
	if len(targets) != 2 {
		t.Errorf("Expected goblin + hero, got %d targets", len(targets))
	}
}

func TestLegalTargetsAnyOrder(t *testing.T) {
	// any: NPC идут перед PC, порядок ростера сохраняется
	def := domain.ActionDefinition{ID: domain.ActionShoot, TargetType: domain.TargetAny, RequiresTarget: true}

	actor := makeEntity("hero", true, "near")
	npcs := []*domain.CombatEntity{
		makeEntity("goblin", false, "near"),
		makeEntity("archer", false, "far"),
	}
	pcs := []*domain.CombatEntity{
		makeEntity("hero", true, "near"),
		makeEntity("bard", true, "center"),
	}

	targets := LegalTargets(def, actor, npcs, pcs)

	want := []domain.EntityID{"goblin", "archer", "hero", "bard"}
	if len(targets) != len(want) {
		t.Fatalf("Expected %d targets, got %d", len(want), len(targets))
	}
	for i, id := range want {
		if targets[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, targets[i].ID)
		}
	}
}

func TestLegalTargetsAllyPool(t *testing.T) {
	def := domain.ActionDefinition{ID: domain.ActionAid, TargetType: domain.TargetAlly, RequiresTarget: true}

	actor := makeEntity("hero", true, "near")
	npcs := []*domain.CombatEntity{makeEntity("goblin", false, "near")}
	pcs := []*domain.CombatEntity{actor, makeEntity("bard", true, "far")}

	targets := LegalTargets(def, actor, npcs, pcs)
	if len(targets) != 2 {
		t.Fatalf("Expected 2 allies, got %d", len(targets))
	}
	for _, target := range targets {
		if !target.IsPC {
			t.Errorf("NPC %s leaked into ally pool", target.ID)
		}
	}
}
