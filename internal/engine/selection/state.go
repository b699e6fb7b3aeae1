package selection

import (
	"majesty-server/internal/domain"
)

// State - запись незавершенного выбора действия.
// Владелец - только Flow; рендер читает её как снимок, валидный
// исключительно в момент вызова (следующий ввод может всё обнулить).
//
// Инвариант: AwaitingTarget и AwaitingZone не бывают true одновременно,
// и SelectedCard не бывает установлен без SelectedEntity.
type State struct {
	// SelectedEntity - действующий участник (nil = выбор не начат)
	SelectedEntity *domain.CombatEntity

	// SelectedCard и SelectedCardIndex ставятся и сбрасываются только вместе
	SelectedCard      *domain.Card
	SelectedCardIndex int // -1, когда карта не выбрана

	SelectedAction *domain.ActionDefinition

	AwaitingTarget bool
	AwaitingZone   bool

	// Списки кандидатов, посчитанные при входе в Awaiting*
	AvailableTargets []*domain.CombatEntity
	AvailableZones   []domain.Zone

	// MinorPC - кто выбирает минорное действие (только в минорном окне)
	MinorPC *domain.CombatEntity

	// VigilanceFollowUp - подготовленное follow-up действие для vigilance
	VigilanceFollowUp *domain.ActionDefinition
}

// Reset возвращает состояние в Idle одним присваиванием.
// Частичных сбросов не бывает: рендер и резолвер не должны увидеть
// полуобновленные значения.
func (s *State) Reset() {
	*s = State{SelectedCardIndex: -1}
}

// Idle сообщает, что никакой выбор не начат.
func (s *State) Idle() bool {
	return s.SelectedEntity == nil &&
		s.SelectedCard == nil &&
		s.SelectedAction == nil &&
		!s.AwaitingTarget &&
		!s.AwaitingZone &&
		s.MinorPC == nil &&
		s.VigilanceFollowUp == nil
}
