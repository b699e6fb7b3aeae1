package handlers

import (
	"encoding/json"

	"majesty-server/internal/domain"
	"majesty-server/internal/engine/selection"
)

// Context передает хендлеру автомат выбора и отправителя команды.
// Вся валидация ввода живет в методах Flow - хендлер только транслирует
// payload в логический вход.
type Context struct {
	Flow  *selection.Flow
	Actor domain.EntityID // Отправитель команды (из токена сессии)
}

// HandlerFunc - контракт для любой команды (SELECT_CARD, KEY, etc).
// Хендлер НЕ пишет в логи сервиса напрямую - он возвращает Result,
// сервис сам раскладывает его по логам и нотификациям.
type HandlerFunc func(ctx Context, payload json.RawMessage) (selection.Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() selection.Result {
	return selection.Result{}
}
