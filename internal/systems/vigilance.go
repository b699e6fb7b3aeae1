package systems

import (
	"majesty-server/internal/domain"
)

// FollowUpPolicy - таблица разрешения цели для follow-up действия vigilance.
// Вычисляется один раз в момент объявления, не в момент срабатывания.
//
// Таблица закрытая, ровно четыре исхода:
//   - follow-up целит врагов   -> trigger_actor (цель - тот, кто сработал триггер)
//   - follow-up целит союзников -> self (цель - сам бдящий)
//   - иначе требует цель        -> trigger_actor
//   - цели не требует / отсутствует -> none
func FollowUpPolicy(def *domain.ActionDefinition) domain.TargetPolicy {
	if def == nil {
		return domain.PolicyNone
	}

	switch {
	case def.TargetType == domain.TargetEnemy:
		return domain.PolicyTriggerActor
	case def.TargetType == domain.TargetAlly:
		return domain.PolicySelf
	case def.RequiresTarget:
		return domain.PolicyTriggerActor
	default:
		return domain.PolicyNone
	}
}
