package actions

import (
	"majesty-server/internal/domain"
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

func HandleChooseAction(ctx handlers.Context, p api.ActionPayload) (selection.Result, error) {
	// Неизвестные строки дают ActionUnknown - автомат ответит отказом сам
	actionID := domain.ParseActionID(p.ActionID)
	followUp := domain.ParseActionID(p.FollowUp)
	return ctx.Flow.ChooseAction(actionID, followUp), nil
}
