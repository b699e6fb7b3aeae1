package domain

// EventType - Внутренний числовой идентификатор события нотификации.
// События - это побочный выход автомата выбора: рендер и анимации
// подписаны на них, но корректность ядра от подписчиков не зависит.
type EventType uint8

const (
	EventUnknown EventType = iota
	EventCardSelected
	EventDeselected
	EventIntentSubmitted
	EventMinorDeclared
	EventInitiativeSubmitted
)

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventCardSelected:        "card_selected",
	EventDeselected:          "deselected",
	EventIntentSubmitted:     "intent_submitted",
	EventMinorDeclared:       "minor_declared",
	EventInitiativeSubmitted: "initiative_submitted",
}

// String реализует интерфейс Stringer
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "unknown"
}

// Event - одно событие нотификации.
// Каждый переход автомата возвращает срез событий, поэтому тесты
// могут проверять точные последовательности без живого подписчика.
type Event struct {
	Type  EventType `json:"type"`
	Actor EntityID  `json:"actor,omitempty"`

	// Card и CardIndex заполнены для card_selected / initiative_submitted
	Card      *Card `json:"card,omitempty"`
	CardIndex int   `json:"cardIndex,omitempty"`

	// Action заполнен для intent_submitted / minor_declared
	Action ActionID `json:"action,omitempty"`
}
