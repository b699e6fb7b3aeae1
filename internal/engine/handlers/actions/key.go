package actions

import (
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

// HandleKey - клавиатурный путь. Трансляция клавиш в логический вход
// живет в самом автомате, чтобы оба пути ввода сходились в одной точке.
func HandleKey(ctx handlers.Context, p api.KeyPayload) (selection.Result, error) {
	return ctx.Flow.HandleKey(ctx.Actor, p.Key), nil
}
