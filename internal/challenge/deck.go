package challenge

import (
	"fmt"
	"math/rand"

	"majesty-server/internal/domain"
)

// Deck - колода из 52 карт с собственным генератором случайности.
// Детерминированный seed дает воспроизводимые раздачи (реплеи, тесты).
type Deck struct {
	rng     *rand.Rand
	draw    []domain.Card
	discard []domain.Card
}

func NewDeck(seed int64) *Deck {
	d := &Deck{rng: rand.New(rand.NewSource(seed))}
	for _, suit := range []domain.Suit{domain.SuitSpades, domain.SuitHearts, domain.SuitDiamonds, domain.SuitClubs} {
		for value := 1; value <= 13; value++ {
			d.draw = append(d.draw, domain.NewCard(value, suit))
		}
	}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw снимает верхнюю карту. Пустая стопка добора пересобирается
// из сброса; пустые обе - колода исчерпана.
func (d *Deck) Draw() (domain.Card, bool) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return domain.Card{}, false
		}
		d.draw = d.discard
		d.discard = nil
		d.shuffle()
	}
	card := d.draw[0]
	d.draw = d.draw[1:]
	return card, true
}

// Bury кладет карту в сброс (вернется в добор при пересборке).
func (d *Deck) Bury(card domain.Card) {
	d.discard = append(d.discard, card)
}

// Remaining - размер стопки добора (для отладочных дампов).
func (d *Deck) Remaining() int {
	return len(d.draw)
}

// HandLedger - бухгалтерия рук поверх общей колоды.
// Карты адресуются позицией в руке, не значением: в руке могут быть
// одинаковые карты после пересборки колоды.
type HandLedger struct {
	deck  *Deck
	hands map[domain.EntityID][]domain.Card
}

func NewHandLedger(deck *Deck) *HandLedger {
	return &HandLedger{
		deck:  deck,
		hands: make(map[domain.EntityID][]domain.Card),
	}
}

// Deal добирает руку до count карт из колоды.
func (l *HandLedger) Deal(id domain.EntityID, count int) {
	for len(l.hands[id]) < count {
		card, ok := l.deck.Draw()
		if !ok {
			return
		}
		l.hands[id] = append(l.hands[id], card)
	}
}

// Hand возвращает копию руки: вызывающий не может мутировать бухгалтерию.
func (l *HandLedger) Hand(id domain.EntityID) []domain.Card {
	hand := l.hands[id]
	out := make([]domain.Card, len(hand))
	copy(out, hand)
	return out
}

func (l *HandLedger) take(id domain.EntityID, index int) (domain.Card, error) {
	hand := l.hands[id]
	if index < 0 || index >= len(hand) {
		return domain.Card{}, fmt.Errorf("hand %s has no card at position %d", id, index)
	}
	card := hand[index]
	l.hands[id] = append(hand[:index:index], hand[index+1:]...)
	return card, nil
}

// Discard убирает карту с позиции index в сброс колоды.
func (l *HandLedger) Discard(id domain.EntityID, index int) (domain.Card, error) {
	card, err := l.take(id, index)
	if err != nil {
		return domain.Card{}, err
	}
	l.deck.Bury(card)
	return card, nil
}

// UseForInitiative убирает карту под инициативу. Карта уходит в сброс
// точно так же - отдельной стопки инициативы у колоды нет.
func (l *HandLedger) UseForInitiative(id domain.EntityID, index int) (domain.Card, error) {
	return l.Discard(id, index)
}
