package domain

import (
	"encoding/json"
	"strings"
)

// CommandType - Внутренний числовой идентификатор клиентской команды
type CommandType uint8

const (
	CmdUnknown CommandType = iota
	CmdInit
	CmdKey
	CmdSelectCard
	CmdChooseAction
	CmdClickEntity
	CmdClickZone
	CmdClickPlate
	CmdCancel
	CmdShowHand
)

// Маппинг для конвертации JSON -> Domain
var cmdStringToID = map[string]CommandType{
	"INIT":          CmdInit,
	"KEY":           CmdKey,
	"SELECT_CARD":   CmdSelectCard,
	"CHOOSE_ACTION": CmdChooseAction,
	"CLICK_ENTITY":  CmdClickEntity,
	"CLICK_ZONE":    CmdClickZone,
	"CLICK_PLATE":   CmdClickPlate,
	"CANCEL":        CmdCancel,
	"SHOW_HAND":     CmdShowHand,
}

// Маппинг для логов Domain -> String
var cmdIDToString = map[CommandType]string{
	CmdInit:         "INIT",
	CmdKey:          "KEY",
	CmdSelectCard:   "SELECT_CARD",
	CmdChooseAction: "CHOOSE_ACTION",
	CmdClickEntity:  "CLICK_ENTITY",
	CmdClickZone:    "CLICK_ZONE",
	CmdClickPlate:   "CLICK_PLATE",
	CmdCancel:       "CANCEL",
	CmdShowHand:     "SHOW_HAND",
}

// ParseCommand конвертирует строку из JSON в CommandType
func ParseCommand(s string) CommandType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := cmdStringToID[upper]; ok {
		return val
	}
	return CmdUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c CommandType) String() string {
	if val, ok := cmdIDToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// InternalCommand - оптимизированная команда для движка.
// Использует CommandType вместо string.
type InternalCommand struct {
	Cmd     CommandType     // Число! Быстро и безопасно.
	Token   EntityID        // ID сущности (Actor)
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
