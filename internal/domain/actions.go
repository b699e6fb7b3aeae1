package domain

import "strings"

// ActionID - Внутренний числовой идентификатор боевого действия
type ActionID uint8

const (
	ActionUnknown ActionID = iota
	ActionMelee
	ActionGrapple
	ActionTrip
	ActionDisarm
	ActionDisplace
	ActionShoot
	ActionMove
	ActionDash
	ActionAvoid
	ActionVigilance
	ActionAid
	ActionRally
	// В будущем: ActionTaunt, ActionFeint...
)

// Маппинг для конвертации JSON/каталога -> Domain
var actionStringToID = map[string]ActionID{
	"melee":     ActionMelee,
	"grapple":   ActionGrapple,
	"trip":      ActionTrip,
	"disarm":    ActionDisarm,
	"displace":  ActionDisplace,
	"shoot":     ActionShoot,
	"move":      ActionMove,
	"dash":      ActionDash,
	"avoid":     ActionAvoid,
	"vigilance": ActionVigilance,
	"aid":       ActionAid,
	"rally":     ActionRally,
}

// Маппинг для логов Domain -> String
var actionIDToString = map[ActionID]string{
	ActionMelee:     "melee",
	ActionGrapple:   "grapple",
	ActionTrip:      "trip",
	ActionDisarm:    "disarm",
	ActionDisplace:  "displace",
	ActionShoot:     "shoot",
	ActionMove:      "move",
	ActionDash:      "dash",
	ActionAvoid:     "avoid",
	ActionVigilance: "vigilance",
	ActionAid:       "aid",
	ActionRally:     "rally",
}

// ParseActionID конвертирует строку из JSON/YAML в ActionID
func ParseActionID(s string) ActionID {
	// Делаем нечувствительным к регистру для надежности
	lower := strings.ToLower(strings.TrimSpace(s))
	if val, ok := actionStringToID[lower]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionID) String() string {
	if val, ok := actionIDToString[a]; ok {
		return val
	}
	return "unknown"
}

// IsMelee сообщает, требует ли действие нахождения в одной зоне с целью.
// Дистанционные действия (shoot, aid) бьют в любую зону.
func (a ActionID) IsMelee() bool {
	switch a {
	case ActionMelee, ActionGrapple, ActionTrip, ActionDisarm, ActionDisplace:
		return true
	default:
		return false
	}
}

// IsZoneBased сообщает, выбирает ли действие зону назначения вместо цели.
func (a ActionID) IsZoneBased() bool {
	switch a {
	case ActionMove, ActionDash, ActionAvoid:
		return true
	default:
		return false
	}
}

// TargetType определяет, из какого ростера действие берет кандидатов.
type TargetType uint8

const (
	TargetAny TargetType = iota // NPC + PC (NPC идут первыми)
	TargetEnemy
	TargetAlly
)

var targetTypeToString = map[TargetType]string{
	TargetAny:   "any",
	TargetEnemy: "enemy",
	TargetAlly:  "ally",
}

var stringToTargetType = map[string]TargetType{
	"any":   TargetAny,
	"enemy": TargetEnemy,
	"ally":  TargetAlly,
}

func ParseTargetType(s string) TargetType {
	if val, ok := stringToTargetType[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val
	}
	return TargetAny
}

func (t TargetType) String() string {
	if val, ok := targetTypeToString[t]; ok {
		return val
	}
	return "any"
}

// ActionDefinition описывает одно действие из каталога.
// Каталог поставляется извне (internal/catalog), ядро его не мутирует.
type ActionDefinition struct {
	ID             ActionID   `json:"id"`
	Name           string     `json:"name"`
	TargetType     TargetType `json:"targetType"`
	RequiresTarget bool       `json:"requiresTarget"`
}
