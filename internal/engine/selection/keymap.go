package selection

import (
	"strings"

	"majesty-server/internal/domain"
)

// HandleKey транслирует нажатие клавиши в логический вход автомата.
// Клавиатурный и указательный пути обязаны давать одинаковый исход для
// одинакового логического выбора, поэтому здесь только трансляция -
// вся валидация живет в методах Flow.
//
// Раскладка:
//
//	pre_round:      1..9 - выбор PC, Q/W/E/R - карта инициативы, Space - за всех
//	awaiting target: 1..9 - цель из списка кандидатов
//	awaiting zone:   1..9 - зона, Enter - avoid на месте
//	иначе:          Q/W/E - карта руки (позиции 1-3), Tab - показать руку
//	Escape всегда сбрасывает незавершенный выбор
func (f *Flow) HandleKey(actorID domain.EntityID, key string) Result {
	k := strings.ToLower(strings.TrimSpace(key))

	if k == "escape" {
		return f.Cancel()
	}

	if f.phase.Active() && f.phase.Phase() == domain.PhasePreRound {
		switch k {
		case "q", "w", "e", "r":
			return f.ChooseInitiativeCard(initiativeKeySlot(k))
		case "space":
			return f.BulkSubmitInitiative()
		}
		if n, ok := digitKey(k); ok {
			return f.SelectInitiativePC(n - 1)
		}
		return Result{}
	}

	if f.state.AwaitingTarget {
		if n, ok := digitKey(k); ok {
			return f.ChooseTargetIndex(n - 1)
		}
		return Result{}
	}

	if f.state.AwaitingZone {
		if k == "enter" {
			return f.ConfirmInPlace()
		}
		if n, ok := digitKey(k); ok {
			return f.ChooseZoneIndex(n - 1)
		}
		return Result{}
	}

	switch k {
	case "q", "w", "e":
		return f.SelectCard(actorID, cardKeySlot(k))
	case "tab":
		return f.ShowHand(actorID)
	}
	return Result{}
}

func digitKey(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '0'), true
}

func cardKeySlot(k string) int {
	switch k {
	case "q":
		return 0
	case "w":
		return 1
	case "e":
		return 2
	}
	return -1
}

func initiativeKeySlot(k string) int {
	switch k {
	case "q":
		return 0
	case "w":
		return 1
	case "e":
		return 2
	case "r":
		return 3
	}
	return -1
}
