package network

import (
	"sync"

	"majesty-server/internal/domain"
	"majesty-server/pkg/api"
)

// Broadcaster занимается только рассылкой снимков подписчикам.
// Каждый участник получает личный канал: снимки персональны
// (чужие руки сервер не раскрывает).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: EntityID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для участника.
func (b *Broadcaster) Register(entityID domain.EntityID) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[entityID.String()]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[entityID.String()] = ch
	return ch
}

// Unregister удаляет подписчика.
func (b *Broadcaster) Unregister(entityID domain.EntityID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[entityID.String()]; ok {
		close(ch)
		delete(b.subscribers, entityID.String())
	}
}

// SendTo отправляет снимок конкретному ID (Unicast).
// Полный канал роняет снимок: следующий все равно будет полнее.
func (b *Broadcaster) SendTo(entityID domain.EntityID, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[entityID.String()]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Subscribers перечисляет ID активных подписчиков.
// Сервис строит персональный снимок для каждого из них.
func (b *Broadcaster) Subscribers() []domain.EntityID {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.EntityID, 0, len(b.subscribers))
	for id := range b.subscribers {
		out = append(out, domain.EntityID(id))
	}
	return out
}

// HasSubscriber проверяет, управляется ли участник кем-то.
func (b *Broadcaster) HasSubscriber(entityID domain.EntityID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[entityID.String()]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
