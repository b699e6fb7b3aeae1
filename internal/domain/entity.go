package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// EntityID - идентификатор участника боя.
type EntityID string

func (id EntityID) String() string { return string(id) }

// GenerateID создает короткий hex-ID для участников (интенты используют UUID)
func GenerateID() EntityID {
	b := make([]byte, 8) // 16 символов hex
	rand.Read(b)
	return EntityID(hex.EncodeToString(b))
}

// Condition - состояние, висящее на сущности.
type Condition uint8

const (
	ConditionDead Condition = iota
	ConditionProne
	ConditionGrappled
	ConditionDisarmed
)

var conditionToString = map[Condition]string{
	ConditionDead:     "dead",
	ConditionProne:    "prone",
	ConditionGrappled: "grappled",
	ConditionDisarmed: "disarmed",
}

func (c Condition) String() string {
	if val, ok := conditionToString[c]; ok {
		return val
	}
	return "unknown"
}

// ConditionSet - набор активных состояний. nil трактуется как "ничего нет".
type ConditionSet map[Condition]bool

func (cs ConditionSet) Has(c Condition) bool { return cs != nil && cs[c] }

func (cs ConditionSet) Strings() []string {
	out := make([]string, 0, len(cs))
	for c, on := range cs {
		if on {
			out = append(out, c.String())
		}
	}
	return out
}

// Weapon - оружие в руках. Ядро его только читает и кладет в интент.
type Weapon struct {
	Name    string `json:"name"`
	IsMelee bool   `json:"isMelee"`
}

// BareHands - дефолт, когда в руках пусто.
func BareHands() Weapon {
	return Weapon{Name: "Fists", IsMelee: true}
}

// CombatEntity - участник челленджа (PC или NPC).
// Жизненным циклом владеют внешние подсистемы, ядро выбора хранит только ссылки.
type CombatEntity struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
	IsPC bool     `json:"isPc"`

	// Zone - текущая зона. Меняется внешним резолвером, не ядром.
	Zone ZoneID `json:"zone"`

	Conditions ConditionSet `json:"conditions,omitempty"`

	// Weapon - экипированное оружие (nil = голые руки)
	Weapon *Weapon `json:"weapon,omitempty"`
}

// IsDead - мертвые никогда не попадают в списки целей.
func (e *CombatEntity) IsDead() bool {
	return e.Conditions.Has(ConditionDead)
}

// WieldedWeapon возвращает оружие для интента, подставляя кулаки при пустых руках.
func (e *CombatEntity) WieldedWeapon() Weapon {
	if e.Weapon != nil {
		return *e.Weapon
	}
	return BareHands()
}
