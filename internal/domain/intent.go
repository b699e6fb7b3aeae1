package domain

import "strings"

// TargetPolicy - правило разрешения цели отложенного (vigilance) действия.
// Вычисляется один раз в момент объявления, не в момент срабатывания.
type TargetPolicy uint8

const (
	PolicyNone TargetPolicy = iota
	PolicySelf
	PolicyTriggerActor
)

var policyToString = map[TargetPolicy]string{
	PolicyNone:         "none",
	PolicySelf:         "self",
	PolicyTriggerActor: "trigger_actor",
}

var stringToPolicy = map[string]TargetPolicy{
	"none":          PolicyNone,
	"self":          PolicySelf,
	"trigger_actor": PolicyTriggerActor,
}

func ParseTargetPolicy(s string) TargetPolicy {
	if val, ok := stringToPolicy[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val
	}
	return PolicyNone
}

func (p TargetPolicy) String() string {
	if val, ok := policyToString[p]; ok {
		return val
	}
	return "none"
}

// TriggerMode - условие срабатывания отложенного действия.
type TriggerMode uint8

const (
	TriggerTargetedByHostileAction TriggerMode = iota
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerTargetedByHostileAction:
		return "targeted_by_hostile_action"
	default:
		return "unknown"
	}
}

// TriggerDescriptor описывает, когда и против кого сработает vigilance.
type TriggerDescriptor struct {
	Mode        TriggerMode `json:"mode"`
	Target      string      `json:"target"` // "self": триггерит действие, нацеленное на владельца
	HostileOnly bool        `json:"hostileOnly"`
	ExcludeSelf bool        `json:"excludeSelf"`
}

// VigilanceTrigger - единственный дескриптор, который ядро умеет объявлять.
func VigilanceTrigger() *TriggerDescriptor {
	return &TriggerDescriptor{
		Mode:        TriggerTargetedByHostileAction,
		Target:      "self",
		HostileOnly: true,
		ExcludeSelf: true,
	}
}

// SubmittedActionIntent - полностью собранное действие полного хода.
// Это контракт с внешним резолвером: работа ядра заканчивается,
// когда резолвер принял эту структуру.
type SubmittedActionIntent struct {
	ID    string        `json:"id"`
	Actor *CombatEntity `json:"-"`

	// ActorID дублирует Actor.ID для сериализации (Actor не гоняем по проводу)
	ActorID EntityID `json:"actorId"`

	// Target == nil для зонных действий и действий по себе
	Target   *CombatEntity `json:"-"`
	TargetID EntityID      `json:"targetId,omitempty"`

	Card      Card     `json:"card"`
	CardIndex int      `json:"cardIndex"`
	Action    ActionID `json:"action"`

	// DestinationZone пустая для нецелевых зонами действий
	DestinationZone ZoneID `json:"destinationZone,omitempty"`

	Weapon Weapon `json:"weapon"`

	// Только для vigilance:
	Trigger              *TriggerDescriptor `json:"trigger,omitempty"`
	FollowUpAction       ActionID           `json:"followUpAction,omitempty"`
	FollowUpTargetPolicy TargetPolicy       `json:"followUpTargetPolicy,omitempty"`
}

// MinorActionIntent - укороченный вариант для окна минорных действий.
// Без триггеров и follow-up.
type MinorActionIntent struct {
	Actor   *CombatEntity `json:"-"`
	ActorID EntityID      `json:"actorId"`

	Target   *CombatEntity `json:"-"`
	TargetID EntityID      `json:"targetId,omitempty"`

	Card      Card     `json:"card"`
	CardIndex int      `json:"cardIndex"`
	Action    ActionID `json:"action"`

	DestinationZone ZoneID `json:"destinationZone,omitempty"`

	Weapon Weapon `json:"weapon"`
}
