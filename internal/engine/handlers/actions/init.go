package actions

import (
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/selection"
)

// HandleInit - первое сообщение клиента после логина.
// Состояние уйдет с ближайшим снимком, здесь только приветствие.
func HandleInit(ctx handlers.Context) (selection.Result, error) {
	return selection.Result{Msg: "Добро пожаловать в Majesty.", MsgType: "INFO"}, nil
}
