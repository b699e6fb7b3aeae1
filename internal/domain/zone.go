package domain

// ZoneID - идентификатор зоны внутри челленджа.
type ZoneID string

func (id ZoneID) String() string { return string(id) }

// Zone - абстрактная область боя ("near", "center", "far").
// Смежность зон хранится не здесь, а у внешнего провайдера (если он есть).
type Zone struct {
	ID          ZoneID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
