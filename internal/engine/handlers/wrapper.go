package handlers

import (
	"encoding/json"
	"fmt"

	"majesty-server/internal/engine/selection"
	"majesty-server/pkg/api"
)

// TypedHandlerFunc - "чистый" хендлер, работающий с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (selection.Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (INIT, CANCEL)
type EmptyHandlerFunc func(ctx Context) (selection.Result, error)

// WithPayload превращает "чистый" хендлер в стандартный HandlerFunc,
// беря на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (selection.Result, error) {
		var payload T

		// 1. Распаковка JSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return selection.Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Автоматическая валидация, если T реализует Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return selection.Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных (INIT, CANCEL, SHOW_HAND)
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (selection.Result, error) {
		return handler(ctx)
	}
}
