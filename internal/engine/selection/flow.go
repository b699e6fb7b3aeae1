package selection

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"majesty-server/internal/catalog"
	"majesty-server/internal/domain"
	"majesty-server/internal/systems"
	"majesty-server/pkg/logger"
)

// Result - итог одного дискретного входного события.
// Msg/MsgType уходят в игровой лог, Events - подписчикам (рендер, анимации).
// Возврат событий вместо прямой публикации позволяет тестам проверять
// точные последовательности нотификаций.
type Result struct {
	Msg     string         // Текст лога
	MsgType string         // Тип лога (INFO, COMBAT, ERROR)
	Events  []domain.Event // Нотификации этого перехода
}

// Flow - автомат накопления выбора: карта -> действие -> цель/зона -> исполнение.
// Работает строго синхронно в ответ на одно входное событие; между событиями
// живет только State. Все мутации State проходят через методы Flow
// (single-writer дисциплина).
type Flow struct {
	phase PhaseAuthority
	hands HandAuthority

	// adjacency опционален: nil = данных о смежности нет,
	// все чужие зоны считаются смежными
	adjacency systems.AdjacencyProvider

	catalog *catalog.Catalog

	state State

	// initiativePC - выбранный в pre_round персонаж (под-поток инициативы)
	initiativePC *domain.CombatEntity
}

func NewFlow(phase PhaseAuthority, hands HandAuthority, adjacency systems.AdjacencyProvider, cat *catalog.Catalog) *Flow {
	f := &Flow{
		phase:     phase,
		hands:     hands,
		adjacency: adjacency,
		catalog:   cat,
	}
	f.state.Reset()
	return f
}

// State отдает состояние рендеру только для чтения.
// Снимок валиден до следующего входного события.
func (f *Flow) State() *State {
	return &f.state
}

// SelectCard записывает выбранную карту руки (Q/W/E или клик).
// Карта НЕ покидает руку здесь: удаление происходит только при успешном
// исполнении, чтобы отмена оставляла руку нетронутой.
func (f *Flow) SelectCard(actorID domain.EntityID, index int) Result {
	if !f.phase.Active() {
		return Result{}
	}
	actor := f.phase.Find(actorID)
	if actor == nil || actor.IsDead() {
		return Result{}
	}

	// Вне своего окна ввод молча игнорируется - это нормальная работа,
	// а не ошибка
	switch f.phase.Phase() {
	case domain.PhaseAwaitingAction:
		active := f.phase.ActiveEntity()
		if active == nil || active.ID != actor.ID {
			return Result{}
		}
	case domain.PhaseMinorWindow:
		if !actor.IsPC {
			return Result{}
		}
	default:
		return Result{}
	}

	if f.state.SelectedCard != nil {
		return Result{}
	}

	hand := f.hands.Hand(actorID)
	if index < 0 || index >= len(hand) {
		return Result{Msg: "Нет карты в этой позиции руки.", MsgType: "ERROR"}
	}

	card := hand[index]
	f.state.SelectedEntity = actor
	f.state.SelectedCard = &card
	f.state.SelectedCardIndex = index
	if f.phase.Phase() == domain.PhaseMinorWindow {
		f.state.MinorPC = actor
	}

	return Result{
		Msg:     fmt.Sprintf("%s выбирает карту (%s).", actor.Name, card.Name),
		MsgType: "INFO",
		Events: []domain.Event{
			{Type: domain.EventCardSelected, Actor: actor.ID, Card: &card, CardIndex: index},
		},
	}
}

// ChooseAction принимает выбранное снаружи определение действия и ветвится:
// vigilance исполняется сразу (с follow-up), зонные действия ждут зону,
// целевые - цель, остальные исполняются немедленно без цели.
func (f *Flow) ChooseAction(actionID, followUpID domain.ActionID) Result {
	if f.state.SelectedCard == nil || f.state.SelectedEntity == nil {
		return Result{}
	}
	if f.state.AwaitingTarget || f.state.AwaitingZone {
		return Result{}
	}

	def, ok := f.catalog.Get(actionID)
	if !ok {
		return f.abort("Неизвестное действие.")
	}

	actor := f.state.SelectedEntity
	f.state.SelectedAction = &def

	// 1. Vigilance: follow-up обязан приехать вместе с событием
	if def.ID == domain.ActionVigilance {
		fdef, ok := f.catalog.Get(followUpID)
		if !ok {
			logger.Log.WithField("actor", actor.ID).Warn("Vigilance declared without a follow-up action")
			return f.abort("Vigilance требует подготовленного действия.")
		}
		f.state.VigilanceFollowUp = &fdef
		// Цель триггера разрешится в момент срабатывания, не сейчас
		return f.execute(nil, "")
	}

	// 2. Зонные действия: считаем доступные зоны назначения
	if def.ID.IsZoneBased() {
		zones := systems.AvailableZones(actor, f.phase.Zones(), f.adjacency)
		if len(zones) == 0 {
			if def.ID == domain.ActionAvoid {
				// Avoid умеет исполняться "на месте"
				return f.execute(nil, "")
			}
			return f.abort("Нет доступных зон.")
		}
		f.state.AwaitingZone = true
		f.state.AvailableZones = zones
		return Result{Msg: "Выберите зону назначения.", MsgType: "INFO"}
	}

	// 3. Целевые действия: считаем допустимые цели
	if def.RequiresTarget {
		targets := systems.LegalTargets(def, actor, f.phase.NPCs(), f.phase.PCs())
		if len(targets) == 0 {
			if def.ID.IsMelee() {
				return f.abort("В вашей зоне нет врагов.")
			}
			return f.abort("Нет допустимых целей.")
		}
		f.state.AwaitingTarget = true
		f.state.AvailableTargets = targets
		return Result{Msg: "Выберите цель.", MsgType: "INFO"}
	}

	// 4. Ни цели, ни зоны - исполняем сразу
	return f.execute(nil, "")
}

// ChooseTargetIndex исполняет выбор цели по позиции в списке кандидатов.
func (f *Flow) ChooseTargetIndex(index int) Result {
	if !f.state.AwaitingTarget {
		return Result{}
	}
	if index < 0 || index >= len(f.state.AvailableTargets) {
		return Result{}
	}
	return f.execute(f.state.AvailableTargets[index], "")
}

// ChooseTargetByID - указательный путь (клик по сущности).
// Клик мимо списка кандидатов - не легальный выбор, игнорируем.
func (f *Flow) ChooseTargetByID(id domain.EntityID) Result {
	if !f.state.AwaitingTarget {
		return Result{}
	}
	for _, target := range f.state.AvailableTargets {
		if target.ID == id {
			return f.execute(target, "")
		}
	}
	return Result{}
}

// ChooseZoneIndex исполняет выбор зоны по позиции в AvailableZones.
func (f *Flow) ChooseZoneIndex(index int) Result {
	if !f.state.AwaitingZone {
		return Result{}
	}
	if index < 0 || index >= len(f.state.AvailableZones) {
		return Result{}
	}
	return f.execute(nil, f.state.AvailableZones[index].ID)
}

// ChooseZoneByID - указательный путь (клик по зоне).
func (f *Flow) ChooseZoneByID(id domain.ZoneID) Result {
	if !f.state.AwaitingZone {
		return Result{}
	}
	for _, z := range f.state.AvailableZones {
		if z.ID == id {
			return f.execute(nil, z.ID)
		}
	}
	return Result{}
}

// ConfirmInPlace исполняет avoid без зоны назначения ("остаюсь на месте").
func (f *Flow) ConfirmInPlace() Result {
	if !f.state.AwaitingZone {
		return Result{}
	}
	if f.state.SelectedAction == nil || f.state.SelectedAction.ID != domain.ActionAvoid {
		return Result{}
	}
	return f.execute(nil, "")
}

// Cancel сбрасывает любой незавершенный выбор (Escape).
// Ничего внешнего еще не тронуто, поэтому откатывать нечего.
func (f *Flow) Cancel() Result {
	f.initiativePC = nil
	if f.state.Idle() {
		return Result{}
	}

	var actorID domain.EntityID
	if f.state.SelectedEntity != nil {
		actorID = f.state.SelectedEntity.ID
	}
	f.state.Reset()
	return Result{
		Msg:     "Выбор отменен.",
		MsgType: "INFO",
		Events:  []domain.Event{{Type: domain.EventDeselected, Actor: actorID}},
	}
}

// ShowHand перечисляет карты руки, не меняя состояние выбора.
func (f *Flow) ShowHand(actorID domain.EntityID) Result {
	if !f.phase.Active() {
		return Result{}
	}
	actor := f.phase.Find(actorID)
	if actor == nil {
		return Result{}
	}

	hand := f.hands.Hand(actorID)
	if len(hand) == 0 {
		return Result{Msg: fmt.Sprintf("%s: рука пуста.", actor.Name), MsgType: "INFO"}
	}

	names := make([]string, len(hand))
	for i, c := range hand {
		names[i] = fmt.Sprintf("%d:%s", i+1, c.Name)
	}
	return Result{
		Msg:     fmt.Sprintf("%s: %s.", actor.Name, strings.Join(names, ", ")),
		MsgType: "INFO",
	}
}

// abort прерывает выбор локально: стейт сбрасывается одним шагом,
// внешнее состояние (рука, резолвер) еще не мутировалось.
func (f *Flow) abort(msg string) Result {
	var actorID domain.EntityID
	if f.state.SelectedEntity != nil {
		actorID = f.state.SelectedEntity.ID
	}
	f.state.Reset()
	return Result{
		Msg:     msg,
		MsgType: "ERROR",
		Events:  []domain.Event{{Type: domain.EventDeselected, Actor: actorID}},
	}
}

// execute превращает завершенный выбор во вход резолвера.
// Ветвится по фазе, которую сообщает внешний автомат: минорное окно
// против обычного хода.
func (f *Flow) execute(target *domain.CombatEntity, dest domain.ZoneID) Result {
	actor := f.state.SelectedEntity
	card := f.state.SelectedCard
	def := f.state.SelectedAction
	if actor == nil || card == nil || def == nil {
		return f.abort("")
	}
	index := f.state.SelectedCardIndex

	if f.phase.Phase() == domain.PhaseMinorWindow {
		return f.executeMinor(actor, target, dest, index, def)
	}

	intent := &domain.SubmittedActionIntent{
		ID:              uuid.NewString(),
		Actor:           actor,
		ActorID:         actor.ID,
		Card:            *card,
		CardIndex:       index,
		Action:          def.ID,
		DestinationZone: dest,
		Weapon:          actor.WieldedWeapon(),
	}
	if target != nil {
		intent.Target = target
		intent.TargetID = target.ID
	}

	if def.ID == domain.ActionVigilance {
		follow := f.state.VigilanceFollowUp
		intent.Trigger = domain.VigilanceTrigger()
		if follow != nil {
			intent.FollowUpAction = follow.ID
		}
		intent.FollowUpTargetPolicy = systems.FollowUpPolicy(follow)
	}

	if err := f.phase.SubmitAction(intent); err != nil {
		// Карта еще в руке: отказ резолвера никогда не съедает карту,
		// игрок выбирает заново
		logger.Log.WithFields(logrus.Fields{
			"actor":  actor.ID,
			"action": def.ID.String(),
		}).WithError(err).Info("Action intent rejected")
		return f.abort(fmt.Sprintf("Действие отклонено: %v", err))
	}

	// Принято - только теперь карта покидает руку
	if _, err := f.hands.Discard(actor.ID, index); err != nil {
		logger.Log.WithError(err).Warn("Discard after accepted action failed")
	}

	f.state.Reset()
	return Result{
		Msg:     fmt.Sprintf("%s: %s.", actor.Name, def.Name),
		MsgType: "COMBAT",
		Events: []domain.Event{
			{Type: domain.EventIntentSubmitted, Actor: actor.ID, Action: def.ID},
			{Type: domain.EventDeselected, Actor: actor.ID},
		},
	}
}

// executeMinor - ветка минорного окна: карта уходит из руки сразу,
// интент объявляется, окно закрывается.
// Карта адресуется позицией в руке, не значением.
func (f *Flow) executeMinor(actor *domain.CombatEntity, target *domain.CombatEntity, dest domain.ZoneID, index int, def *domain.ActionDefinition) Result {
	discarded, err := f.hands.Discard(actor.ID, index)
	if err != nil {
		logger.Log.WithError(err).Warn("Minor action discard failed")
		return f.abort("Карта недоступна.")
	}

	intent := &domain.MinorActionIntent{
		Actor:           actor,
		ActorID:         actor.ID,
		Card:            discarded,
		CardIndex:       index,
		Action:          def.ID,
		DestinationZone: dest,
		Weapon:          actor.WieldedWeapon(),
	}
	if target != nil {
		intent.Target = target
		intent.TargetID = target.ID
	}

	if err := f.phase.DeclareMinorAction(intent); err != nil {
		logger.Log.WithError(err).Warn("Minor action declaration failed")
	}
	f.phase.ResumeFromMinorWindow()

	f.state.Reset() // очищает и MinorPC
	return Result{
		Msg:     fmt.Sprintf("%s (минорное): %s.", actor.Name, def.Name),
		MsgType: "COMBAT",
		Events: []domain.Event{
			{Type: domain.EventMinorDeclared, Actor: actor.ID, Action: def.ID},
			{Type: domain.EventDeselected, Actor: actor.ID},
		},
	}
}
