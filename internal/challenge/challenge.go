package challenge

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"majesty-server/internal/domain"
	"majesty-server/pkg/logger"
)

// handSize - до скольких карт добирается рука на начало раунда
const handSize = 4

// Challenge - контроллер боевого столкновения: фазы, ростеры, инициатива,
// прием интентов. Не потокобезопасен - все вызовы приходят из одной
// горутины сервиса.
//
// Фазовый цикл раунда:
//
//	pre_round -> (вся инициатива собрана) -> awaiting_action
//	awaiting_action -> minor_window -> awaiting_action (резюме)
//	очередь пуста -> новый pre_round
type Challenge struct {
	phase domain.ChallengePhase
	round int

	pcs   []*domain.CombatEntity
	npcs  []*domain.CombatEntity
	zones []domain.Zone
	graph *ZoneGraph

	deck  *Deck
	hands *HandLedger

	initiative map[domain.EntityID]domain.Card
	queue      InitiativeQueue
	current    *InitiativeItem

	// resumePhase - куда возвращаться после минорного окна
	resumePhase domain.ChallengePhase

	// Журналы принятых интентов - вход следующего за ядром слоя (резолюции)
	accepted []*domain.SubmittedActionIntent
	minors   []*domain.MinorActionIntent
}

func NewChallenge(seed int64, zones []domain.Zone, graph *ZoneGraph, pcs, npcs []*domain.CombatEntity) *Challenge {
	deck := NewDeck(seed)
	return &Challenge{
		phase: domain.PhaseOther,
		zones: zones,
		graph: graph,
		pcs:   pcs,
		npcs:  npcs,
		deck:  deck,
		hands: NewHandLedger(deck),
	}
}

// Hands - бухгалтерия рук (авторитет руки для ядра выбора).
func (c *Challenge) Hands() *HandLedger { return c.hands }

// Graph - граф смежности зон.
func (c *Challenge) Graph() *ZoneGraph { return c.graph }

func (c *Challenge) Round() int { return c.round }

// StartRound открывает новый раунд: добор рук, сбор инициативы заново.
func (c *Challenge) StartRound() {
	c.round++
	c.phase = domain.PhasePreRound
	c.initiative = make(map[domain.EntityID]domain.Card)
	c.queue = nil
	c.current = nil

	for _, e := range append(append([]*domain.CombatEntity{}, c.pcs...), c.npcs...) {
		if e.IsDead() {
			continue
		}
		c.hands.Deal(e.ID, handSize)
	}

	logger.Log.WithField("round", c.round).Info("Round started")
}

// --- Реализация авторитета фаз ---

func (c *Challenge) Active() bool {
	return c.phase != domain.PhaseOther
}

func (c *Challenge) Phase() domain.ChallengePhase {
	return c.phase
}

func (c *Challenge) ActiveEntity() *domain.CombatEntity {
	if c.current == nil {
		return nil
	}
	return c.current.Entity
}

func (c *Challenge) Find(id domain.EntityID) *domain.CombatEntity {
	for _, e := range c.pcs {
		if e.ID == id {
			return e
		}
	}
	for _, e := range c.npcs {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (c *Challenge) NPCs() []*domain.CombatEntity { return c.npcs }
func (c *Challenge) PCs() []*domain.CombatEntity  { return c.pcs }
func (c *Challenge) Zones() []domain.Zone         { return c.zones }

// SubmitAction принимает или отклоняет главный интент хода.
// Принятый интент попадает в журнал, ход передается дальше по очереди.
func (c *Challenge) SubmitAction(intent *domain.SubmittedActionIntent) error {
	if c.phase != domain.PhaseAwaitingAction {
		return fmt.Errorf("challenge is not awaiting an action")
	}
	active := c.ActiveEntity()
	if active == nil || active.ID != intent.ActorID {
		return fmt.Errorf("it is not %s's turn", intent.ActorID)
	}
	if active.IsDead() {
		return fmt.Errorf("%s cannot act", intent.ActorID)
	}
	if intent.Target != nil && intent.Target.IsDead() {
		return fmt.Errorf("target %s is already down", intent.TargetID)
	}

	c.accepted = append(c.accepted, intent)
	logger.Log.WithFields(logrus.Fields{
		"actor":  intent.ActorID,
		"action": intent.Action.String(),
		"target": intent.TargetID,
	}).Info("Action intent accepted")

	c.AdvanceTurn()
	return nil
}

// DeclareMinorAction журналирует минорный интент. Окно закрывает не он:
// ядро выбора зовет ResumeFromMinorWindow отдельно.
func (c *Challenge) DeclareMinorAction(intent *domain.MinorActionIntent) error {
	if c.phase != domain.PhaseMinorWindow {
		return fmt.Errorf("no minor window is open")
	}
	c.minors = append(c.minors, intent)
	logger.Log.WithFields(logrus.Fields{
		"actor":  intent.ActorID,
		"action": intent.Action.String(),
	}).Info("Minor action declared")
	return nil
}

// SubmitInitiative записывает карту инициативы. Как только все живые PC
// сдали, NPC добирают свои карты и начинается фаза ходов.
func (c *Challenge) SubmitInitiative(id domain.EntityID, card domain.Card) error {
	if c.phase != domain.PhasePreRound {
		return fmt.Errorf("initiative is not being collected")
	}
	e := c.Find(id)
	if e == nil || e.IsDead() {
		return fmt.Errorf("%s cannot place initiative", id)
	}
	if _, ok := c.initiative[id]; ok {
		return fmt.Errorf("%s already placed initiative", id)
	}

	c.initiative[id] = card

	if c.allPCsReady() {
		c.beginTurns()
	}
	return nil
}

func (c *Challenge) HasInitiative(id domain.EntityID) bool {
	_, ok := c.initiative[id]
	return ok
}

func (c *Challenge) allPCsReady() bool {
	for _, pc := range c.pcs {
		if pc.IsDead() {
			continue
		}
		if !c.HasInitiative(pc.ID) {
			return false
		}
	}
	return true
}

// beginTurns строит очередь раунда. NPC играют инициативу с верха
// собственной руки автоматически.
func (c *Challenge) beginTurns() {
	order := 0
	for _, pc := range c.pcs {
		if card, ok := c.initiative[pc.ID]; ok {
			c.queue.PushItem(&InitiativeItem{Entity: pc, Card: card, Order: order})
		}
		order++
	}
	for _, npc := range c.npcs {
		if npc.IsDead() {
			continue
		}
		card, err := c.hands.Discard(npc.ID, 0)
		if err != nil {
			logger.Log.WithField("npc", npc.ID).WithError(err).Warn("NPC has no initiative card")
			continue
		}
		c.initiative[npc.ID] = card
		c.queue.PushItem(&InitiativeItem{Entity: npc, Card: card, Order: order})
		order++
	}

	c.phase = domain.PhaseAwaitingAction
	c.AdvanceTurn()
}

// AdvanceTurn передает ход следующему по очереди живому участнику.
// Пустая очередь закрывает раунд и открывает следующий.
func (c *Challenge) AdvanceTurn() {
	for {
		item := c.queue.PopItem()
		if item == nil {
			c.StartRound()
			return
		}
		if item.Entity.IsDead() {
			continue
		}
		c.current = item
		c.phase = domain.PhaseAwaitingAction
		logger.Log.WithFields(logrus.Fields{
			"entity": item.Entity.ID,
			"card":   item.Card.Name,
		}).Info("Turn started")
		return
	}
}

// OpenMinorWindow прерывает текущий ход окном минорных действий.
func (c *Challenge) OpenMinorWindow() {
	if c.phase != domain.PhaseAwaitingAction {
		return
	}
	c.resumePhase = c.phase
	c.phase = domain.PhaseMinorWindow
}

// ResumeFromMinorWindow закрывает окно и возвращает прерванную фазу.
func (c *Challenge) ResumeFromMinorWindow() {
	if c.phase != domain.PhaseMinorWindow {
		return
	}
	c.phase = c.resumePhase
}

// Accepted - журнал принятых главных интентов.
func (c *Challenge) Accepted() []*domain.SubmittedActionIntent { return c.accepted }

// Minors - журнал объявленных минорных интентов.
func (c *Challenge) Minors() []*domain.MinorActionIntent { return c.minors }

// QueueSnapshot - оставшаяся очередь хода (для отладочных дампов).
func (c *Challenge) QueueSnapshot() []*InitiativeItem {
	out := make([]*InitiativeItem, len(c.queue))
	copy(out, c.queue)
	return out
}
