package domain

import "strings"

// ChallengePhase - фаза внешнего автомата челленджа.
// Ядро выбора не владеет фазами, оно только читает их через PhaseAuthority.
type ChallengePhase uint8

const (
	PhaseOther ChallengePhase = iota // всё, что не касается ядра (резолв, анимации)
	PhasePreRound
	PhaseAwaitingAction
	PhaseMinorWindow
)

var phaseStringToID = map[string]ChallengePhase{
	"other":           PhaseOther,
	"pre_round":       PhasePreRound,
	"awaiting_action": PhaseAwaitingAction,
	"minor_window":    PhaseMinorWindow,
}

var phaseIDToString = map[ChallengePhase]string{
	PhaseOther:          "other",
	PhasePreRound:       "pre_round",
	PhaseAwaitingAction: "awaiting_action",
	PhaseMinorWindow:    "minor_window",
}

// ParsePhase конвертирует строку в ChallengePhase
func ParsePhase(s string) ChallengePhase {
	if val, ok := phaseStringToID[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val
	}
	return PhaseOther
}

// String реализует интерфейс Stringer
func (p ChallengePhase) String() string {
	if val, ok := phaseIDToString[p]; ok {
		return val
	}
	return "other"
}
