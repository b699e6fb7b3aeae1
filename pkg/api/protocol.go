package api

import (
	"encoding/json"
	"errors"
)

// Validator реализуют payload-структуры, которым нужна проверка полей
// до вызова хендлера.
type Validator interface {
	Validate() error
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект от сервера клиенту: полный снимок
// столкновения, видимый конкретным клиентом. Отправляется после каждого
// обработанного входного события.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Round номер текущего раунда столкновения.
	Round int `json:"round"`

	// Phase текущая фаза: pre_round, awaiting_action, minor_window, other.
	Phase string `json:"phase"`

	// ActiveEntityID ID участника, чей ход сейчас.
	// КЛИЕНТ ДОЛЖЕН СРАВНИВАТЬ ЭТО ПОЛЕ СО СВОИМ ID: совпало - можно
	// принимать ввод главного действия.
	ActiveEntityID string `json:"activeEntityId,omitempty"`

	// MyEntityID ID участника, которым управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Zones упорядоченный список зон площадки.
	Zones []ZoneView `json:"zones,omitempty"`

	// Entities все участники столкновения.
	Entities []EntityView `json:"entities,omitempty"`

	// Hand рука данного клиента (другие руки сервер не раскрывает).
	Hand []CardView `json:"hand,omitempty"`

	// Selection снимок незавершенного выбора действия (nil - выбор не начат).
	Selection *SelectionView `json:"selection,omitempty"`

	// Events нотификации переходов с прошлого снимка (подсветки, анимации).
	Events []EventView `json:"events,omitempty"`

	// Logs новые записи игрового лога с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// ZoneView - DTO зоны площадки.
type ZoneView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntityView - DTO участника столкновения.
type EntityView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsPC   bool   `json:"isPc"`
	Zone   string `json:"zone"`
	IsDead bool   `json:"isDead"`

	// Conditions активные состояния (prone, grappled, disarmed).
	Conditions []string `json:"conditions,omitempty"`

	// HasInitiative true, когда карта инициативы этого раунда уже сыграна.
	HasInitiative bool `json:"hasInitiative"`
}

// CardView - DTO карты руки.
type CardView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Suit  string `json:"suit"`
}

// SelectionView - снимок автомата выбора для рендера.
type SelectionView struct {
	CardIndex int    `json:"cardIndex"`
	Action    string `json:"action,omitempty"`

	AwaitingTarget bool `json:"awaitingTarget"`
	AwaitingZone   bool `json:"awaitingZone"`

	// Кандидаты, посчитанные при входе в Awaiting* (ID, в порядке списка)
	Targets []string `json:"targets,omitempty"`
	ZoneIDs []string `json:"zoneIds,omitempty"`

	// InitiativePC выбранный в pre_round персонаж (подсветка плашки)
	InitiativePC string `json:"initiativePc,omitempty"`
}

// EventView - DTO нотификации перехода.
type EventView struct {
	Type      string `json:"type"`
	Actor     string `json:"actor,omitempty"`
	Card      string `json:"card,omitempty"`
	CardIndex int    `json:"cardIndex,omitempty"`
	Action    string `json:"action,omitempty"`
}

// LogEntry - одна запись игрового лога.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Token ID участника, от имени которого выполняется действие.
	// Обязателен только для первого сообщения "LOGIN".
	Token string `json:"token,omitempty"`

	// Action название команды (SELECT_CARD, CHOOSE_ACTION, KEY, ...).
	Action string `json:"action"`

	// Payload JSON-объект с данными команды. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// CardPayload - выбор карты руки по позиции.
type CardPayload struct {
	Index int `json:"index"`
}

func (p CardPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("card index must not be negative")
	}
	return nil
}

// ActionPayload - выбор действия; followUp обязателен только для vigilance.
type ActionPayload struct {
	ActionID string `json:"actionId"`
	FollowUp string `json:"followUp,omitempty"`
}

func (p ActionPayload) Validate() error {
	if p.ActionID == "" {
		return errors.New("actionId is required")
	}
	return nil
}

// EntityPayload - клик по участнику (выбор цели).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

// ZonePayload - клик по зоне (выбор зоны назначения).
type ZonePayload struct {
	ZoneID string `json:"zoneId"`
}

func (p ZonePayload) Validate() error {
	if p.ZoneID == "" {
		return errors.New("zoneId is required")
	}
	return nil
}

// KeyPayload - нажатие клавиши.
type KeyPayload struct {
	Key string `json:"key"`
}

func (p KeyPayload) Validate() error {
	if p.Key == "" {
		return errors.New("key is required")
	}
	return nil
}

// PlatePayload - клик по плашке персонажа (под-поток инициативы).
type PlatePayload struct {
	EntityID string `json:"entityId"`
}

func (p PlatePayload) Validate() error {
	if p.EntityID == "" {
		return errors.New("entityId is required")
	}
	return nil
}
