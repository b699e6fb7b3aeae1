package actions

import (
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

func HandleSelectCard(ctx handlers.Context, p api.CardPayload) (selection.Result, error) {
	return ctx.Flow.SelectCard(ctx.Actor, p.Index), nil
}
