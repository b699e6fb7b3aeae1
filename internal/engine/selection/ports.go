package selection

import (
	"majesty-server/internal/domain"
)

// PhaseAuthority - контракт внешнего автомата фаз/ходов.
// Ядро выбора не владеет фазами, инициативой и ростерами, оно их читает
// и отдает готовые интенты. Конкретная реализация (internal/challenge)
// подключается через конструктор, никакого глобального стейта.
type PhaseAuthority interface {
	// Active сообщает, идет ли челлендж вообще.
	Active() bool

	Phase() domain.ChallengePhase

	// ActiveEntity - чей сейчас ход (nil вне хода).
	ActiveEntity() *domain.CombatEntity

	// Find ищет участника по ID в обоих ростерах.
	Find(id domain.EntityID) *domain.CombatEntity

	NPCs() []*domain.CombatEntity
	PCs() []*domain.CombatEntity

	// Zones - упорядоченный список зон челленджа.
	Zones() []domain.Zone

	// SubmitAction принимает интент полного хода. Ошибка = отказ с причиной.
	SubmitAction(intent *domain.SubmittedActionIntent) error

	// DeclareMinorAction принимает минорный интент.
	DeclareMinorAction(intent *domain.MinorActionIntent) error

	// SubmitInitiative фиксирует карту инициативы за PC.
	SubmitInitiative(id domain.EntityID, card domain.Card) error

	// HasInitiative сообщает, сдал ли PC инициативу в этом раунде.
	HasInitiative(id domain.EntityID) bool

	// ResumeFromMinorWindow закрывает минорное окно.
	ResumeFromMinorWindow()
}

// HandAuthority - контракт внешнего владельца рук/колоды.
// Ядро только запрашивает руку и инициирует удаление карты,
// само слайсы рук не мутирует.
type HandAuthority interface {
	// Hand возвращает текущую руку (копию, порядок позиционный).
	Hand(id domain.EntityID) []domain.Card

	// Discard убирает карту с позиции index из руки в сброс.
	Discard(id domain.EntityID, index int) (domain.Card, error)

	// UseForInitiative убирает карту с позиции index через
	// инициативную бухгалтерию руки.
	UseForInitiative(id domain.EntityID, index int) (domain.Card, error)
}
