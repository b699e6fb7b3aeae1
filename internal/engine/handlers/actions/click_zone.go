package actions

import (
	"majesty-server/internal/domain"
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

func HandleClickZone(ctx handlers.Context, p api.ZonePayload) (selection.Result, error) {
	return ctx.Flow.ChooseZoneByID(domain.ZoneID(p.ZoneID)), nil
}
