package actions

import (
	"majesty-server/internal/domain"
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

// HandleClickPlate - клик по плашке персонажа в фазе сбора инициативы.
func HandleClickPlate(ctx handlers.Context, p api.PlatePayload) (selection.Result, error) {
	return ctx.Flow.SelectInitiativePCByID(domain.EntityID(p.EntityID)), nil
}
