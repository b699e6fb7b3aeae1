package actions

import (
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
)

func HandleCancel(ctx handlers.Context) (selection.Result, error) {
	return ctx.Flow.Cancel(), nil
}
