package selection

import (
	"fmt"

	"majesty-server/internal/domain"
	"majesty-server/pkg/logger"
)

// Под-поток инициативы: активен только пока челлендж в фазе pre_round.
// Инициатива тянет из расширенного среза руки - до четырех позиций
// (Q/W/E/R), против трех в обычном ходу.

const initiativeHandSlots = 4

// SelectInitiativePC выбирает PC по позиции в ростере (числовые клавиши).
// Мертвые и уже сдавшие инициативу не выбираются.
func (f *Flow) SelectInitiativePC(index int) Result {
	if !f.phase.Active() || f.phase.Phase() != domain.PhasePreRound {
		return Result{}
	}
	pcs := f.phase.PCs()
	if index < 0 || index >= len(pcs) {
		return Result{}
	}
	return f.selectInitiativePC(pcs[index])
}

// SelectInitiativePCByID - указательный путь (клик по плашке персонажа).
func (f *Flow) SelectInitiativePCByID(id domain.EntityID) Result {
	if !f.phase.Active() || f.phase.Phase() != domain.PhasePreRound {
		return Result{}
	}
	for _, pc := range f.phase.PCs() {
		if pc.ID == id {
			return f.selectInitiativePC(pc)
		}
	}
	return Result{}
}

func (f *Flow) selectInitiativePC(pc *domain.CombatEntity) Result {
	if pc.IsDead() || f.phase.HasInitiative(pc.ID) {
		return Result{}
	}
	f.initiativePC = pc
	return Result{
		Msg:     fmt.Sprintf("%s: выберите карту инициативы.", pc.Name),
		MsgType: "INFO",
	}
}

// InitiativePC - текущий выбранный персонаж (для подсветки плашки).
func (f *Flow) InitiativePC() *domain.CombatEntity {
	return f.initiativePC
}

// ChooseInitiativeCard отдает карту с позиции index (Q/W/E/R -> 0..3)
// за выбранного персонажа.
func (f *Flow) ChooseInitiativeCard(index int) Result {
	if f.phase.Phase() != domain.PhasePreRound || f.initiativePC == nil {
		return Result{}
	}
	if index < 0 || index >= initiativeHandSlots {
		return Result{}
	}

	pc := f.initiativePC
	hand := f.hands.Hand(pc.ID)
	if index >= len(hand) {
		return Result{Msg: "Нет карты в этой позиции руки.", MsgType: "ERROR"}
	}
	return f.submitInitiative(pc, index)
}

// submitInitiative убирает карту через инициативную бухгалтерию руки
// и сообщает её внешнему контроллеру фаз.
func (f *Flow) submitInitiative(pc *domain.CombatEntity, index int) Result {
	card, err := f.hands.UseForInitiative(pc.ID, index)
	if err != nil {
		logger.Log.WithField("pc", pc.ID).WithError(err).Warn("Initiative card unavailable")
		return Result{Msg: "Не удалось сыграть карту инициативы.", MsgType: "ERROR"}
	}

	if err := f.phase.SubmitInitiative(pc.ID, card); err != nil {
		logger.Log.WithField("pc", pc.ID).WithError(err).Warn("Initiative submission rejected")
		return Result{Msg: fmt.Sprintf("Инициатива отклонена: %v", err), MsgType: "ERROR"}
	}

	f.initiativePC = nil
	return Result{
		Msg:     fmt.Sprintf("%s ставит %s на инициативу.", pc.Name, card.Name),
		MsgType: "INFO",
		Events: []domain.Event{
			{Type: domain.EventInitiativeSubmitted, Actor: pc.ID, Card: &card, CardIndex: index},
		},
	}
}

// BulkSubmitInitiative (Space) ставит карту с первой позиции за каждого PC,
// кто еще не сдал инициативу. Порядок - порядок ростера; пустая рука,
// мертвые и уже сдавшие пропускаются без ошибки.
func (f *Flow) BulkSubmitInitiative() Result {
	if !f.phase.Active() || f.phase.Phase() != domain.PhasePreRound {
		return Result{}
	}

	var out Result
	for _, pc := range f.phase.PCs() {
		if pc.IsDead() || f.phase.HasInitiative(pc.ID) {
			continue
		}
		if len(f.hands.Hand(pc.ID)) == 0 {
			continue
		}

		res := f.submitInitiative(pc, 0)
		out.Events = append(out.Events, res.Events...)
		if res.Msg != "" {
			if out.Msg != "" {
				out.Msg += " "
			}
			out.Msg += res.Msg
			out.MsgType = "INFO"
		}
	}

	f.initiativePC = nil
	return out
}
