package actions

import (
	"majesty-server/internal/domain"
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

func HandleClickEntity(ctx handlers.Context, p api.EntityPayload) (selection.Result, error) {
	return ctx.Flow.ChooseTargetByID(domain.EntityID(p.TargetID)), nil
}
