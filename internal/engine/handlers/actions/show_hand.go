package actions

import (
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
)

func HandleShowHand(ctx handlers.Context) (selection.Result, error) {
	return ctx.Flow.ShowHand(ctx.Actor), nil
}
