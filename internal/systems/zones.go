package systems

import (
	"majesty-server/internal/domain"
)

// AdjacencyProvider - интерфейс внешнего источника смежности зон.
// Провайдер опционален: nil означает, что данных о смежности нет вообще.
type AdjacencyProvider interface {
	// Adjacent сообщает, смежны ли две зоны.
	Adjacent(a, b domain.ZoneID) bool

	// Knows сообщает, есть ли у провайдера запись о зоне.
	Knows(id domain.ZoneID) bool
}

// AvailableZones вычисляет упорядоченный список зон, доступных актору.
//
// Порядок следования - порядок списка зон челленджа. Текущая зона актора
// исключается всегда. Без провайдера все остальные зоны считаются
// смежными (fallback-политика). Зона, о которой провайдер не знает,
// недоступна: отсутствие данных - это консервативное "нельзя",
// а не разрешающий дефолт.
//
// Функция чистая: входы не мутируются.
func AvailableZones(actor *domain.CombatEntity, zones []domain.Zone, adj AdjacencyProvider) []domain.Zone {
	out := make([]domain.Zone, 0, len(zones))
	for _, z := range zones {
		if z.ID == actor.Zone {
			continue
		}

		if adj == nil {
			out = append(out, z)
			continue
		}

		if !adj.Knows(z.ID) {
			continue
		}
		if adj.Adjacent(actor.Zone, z.ID) {
			out = append(out, z)
		}
	}
	return out
}
