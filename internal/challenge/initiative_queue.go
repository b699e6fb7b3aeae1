package challenge

import (
	"container/heap"

	"majesty-server/internal/domain"
)

// InitiativeItem - участник в очереди хода раунда.
type InitiativeItem struct {
	Entity *domain.CombatEntity
	Card   domain.Card // Сыгранная карта инициативы
	Order  int         // Позиция в ростере: разбивает ничьи по значению
	index  int         // Индекс в куче
}

// InitiativeQueue реализует heap.Interface: MaxHeap по значению карты,
// при равных значениях раньше ходит тот, кто раньше в ростере.
type InitiativeQueue []*InitiativeItem

func (pq InitiativeQueue) Len() int { return len(pq) }

func (pq InitiativeQueue) Less(i, j int) bool {
	if pq[i].Card.Value != pq[j].Card.Value {
		return pq[i].Card.Value > pq[j].Card.Value
	}
	return pq[i].Order < pq[j].Order
}

func (pq InitiativeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *InitiativeQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*InitiativeItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *InitiativeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// PushItem - типизированная обертка над heap.Push.
func (pq *InitiativeQueue) PushItem(item *InitiativeItem) {
	heap.Push(pq, item)
}

// PopItem снимает следующего по инициативе участника.
func (pq *InitiativeQueue) PopItem() *InitiativeItem {
	if pq.Len() == 0 {
		return nil
	}
	return heap.Pop(pq).(*InitiativeItem)
}

// Peek показывает вершину без извлечения (для отладочных дампов).
func (pq InitiativeQueue) Peek() *InitiativeItem {
	if len(pq) == 0 {
		return nil
	}
	return pq[0]
}
