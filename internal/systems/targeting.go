package systems

import (
	"majesty-server/internal/domain"
)

// LegalTargets вычисляет упорядоченный список допустимых целей для действия.
//
// Правила:
//   - melee-действия (melee, grapple, trip, disarm, displace) видят только
//     сущности в зоне актора; остальные действия зону не ограничивают;
//   - пул кандидатов строится по targetType: enemy - из NPC,
//     ally - из PC, any - из обоих (NPC первыми, порядок ростера сохраняется);
//   - мертвые не бывают целями никогда;
//   - больше никакой фильтрации: line-of-sight, иммунитеты и прочее -
//     забота внешнего резолвера, не этого шага.
//
// Функция чистая: входы не мутируются.
func LegalTargets(def domain.ActionDefinition, actor *domain.CombatEntity, npcs, pcs []*domain.CombatEntity) []*domain.CombatEntity {
	var pool []*domain.CombatEntity
	switch def.TargetType {
	case domain.TargetEnemy:
		pool = npcs
	case domain.TargetAlly:
		pool = pcs
	case domain.TargetAny:
		pool = make([]*domain.CombatEntity, 0, len(npcs)+len(pcs))
		pool = append(pool, npcs...)
		pool = append(pool, pcs...)
	}

	melee := def.ID.IsMelee()
	out := make([]*domain.CombatEntity, 0, len(pool))
	for _, e := range pool {
		if e == nil || e.IsDead() {
			continue
		}
		if melee && e.Zone != actor.Zone {
			continue
		}
		out = append(out, e)
	}
	return out
}
