package systems

import (
	"testing"

	"majesty-server/internal/domain"
)

// fakeAdjacency - тестовый провайдер смежности
type fakeAdjacency struct {
	known map[domain.ZoneID]bool
	links map[[2]domain.ZoneID]bool
}

func (f *fakeAdjacency) Adjacent(a, b domain.ZoneID) bool {
	return f.links[[2]domain.ZoneID{a, b}] || f.links[[2]domain.ZoneID{b, a}]
}

func (f *fakeAdjacency) Knows(id domain.ZoneID) bool {
	return f.known[id]
}

func testZones() []domain.Zone {
	return []domain.Zone{
		{ID: "near", Name: "Near"},
		{ID: "center", Name: "Center"},
		{ID: "far", Name: "Far"},
	}
}

func TestAvailableZonesFallback(t *testing.T) {
	// Без провайдера доступны все зоны, кроме текущей
	actor := makeEntity("hero", true, "near")

	zones := AvailableZones(actor, testZones(), nil)
	if len(zones) != 2 {
		t.Fatalf("Expected 2 zones, got %d", len(zones))
	}
	if zones[0].ID != "center" || zones[1].ID != "far" {
		t.Errorf("Expected [center far], got [%s %s]", zones[0].ID, zones[1].ID)
	}
}

func TestAvailableZonesProviderFilters(t *testing.T) {
	actor := makeEntity("hero", true, "near")

	adj := &fakeAdjacency{
		known: map[domain.ZoneID]bool{"near": true, "center": true, "far": true},
		links: map[[2]domain.ZoneID]bool{
			{"near", "center"}: true,
			// near-far не связаны
		},
	}

	zones := AvailableZones(actor, testZones(), adj)
	if len(zones) != 1 || zones[0].ID != "center" {
		t.Fatalf("Expected only center, got %d zones", len(zones))
	}
}

func TestAvailableZonesUnknownExcluded(t *testing.T) {
	// Зона без записи у провайдера недоступна, даже если связь заявлена
	actor := makeEntity("hero", true, "near")

	adj := &fakeAdjacency{
		known: map[domain.ZoneID]bool{"near": true, "center": true}, // far неизвестна
		links: map[[2]domain.ZoneID]bool{
			{"near", "center"}: true,
			{"near", "far"}:    true,
		},
	}

	zones := AvailableZones(actor, testZones(), adj)
	if len(zones) != 1 || zones[0].ID != "center" {
		t.Fatalf("Unknown zone must be excluded, got %d zones", len(zones))
	}
}

func TestAvailableZonesNeverContainsCurrent(t *testing.T) {
	actor := makeEntity("hero", true, "center")

	zones := AvailableZones(actor, testZones(), nil)
	for _, z := range zones {
		if z.ID == actor.Zone {
			t.Errorf("Current zone %s leaked into destinations", z.ID)
		}
	}
}
