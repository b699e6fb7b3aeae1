package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"majesty-server/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	melee, ok := c.Get(domain.ActionMelee)
	if !ok {
		t.Fatal("Expected melee in default catalog")
	}
	if melee.TargetType != domain.TargetEnemy || !melee.RequiresTarget {
		t.Errorf("Unexpected melee definition: %+v", melee)
	}

	aid, ok := c.Get(domain.ActionAid)
	if !ok || aid.TargetType != domain.TargetAlly {
		t.Errorf("Expected aid to target allies, got %+v", aid)
	}

	vig, ok := c.Get(domain.ActionVigilance)
	if !ok || vig.RequiresTarget {
		t.Errorf("Vigilance must not require a target at declaration: %+v", vig)
	}

	if len(c.All()) != 12 {
		t.Errorf("Expected 12 default actions, got %d", len(c.All()))
	}
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.yaml")

	body := `actions:
  - id: shoot
    name: "Loose Arrow"
    targetType: enemy
    requiresTarget: true
  - id: rally
    targetType: ally
    requiresTarget: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	shoot, _ := c.Get(domain.ActionShoot)
	if shoot.Name != "Loose Arrow" {
		t.Errorf("Expected overridden name, got %q", shoot.Name)
	}

	// Имя опущено - должно остаться встроенное
	rally, _ := c.Get(domain.ActionRally)
	if rally.Name != "Rally" || rally.TargetType != domain.TargetAlly || !rally.RequiresTarget {
		t.Errorf("Unexpected rally override: %+v", rally)
	}

	// Дефолты, не упомянутые в файле, не должны пропадать
	if _, ok := c.Get(domain.ActionMelee); !ok {
		t.Error("Defaults must survive an override file")
	}
}

func TestLoadFileUnknownID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actions.yaml")

	if err := os.WriteFile(path, []byte("actions:\n  - id: fireball\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for unknown action id")
	}
}
