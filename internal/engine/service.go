package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"majesty-server/internal/catalog"
	"majesty-server/internal/challenge"
	"majesty-server/internal/domain"
	"majesty-server/internal/engine/handlers"
	"majesty-server/internal/engine/handlers/actions"
	"majesty-server/internal/engine/selection"
	"majesty-server/internal/network"
	"majesty-server/pkg/api"
	"majesty-server/pkg/logger"
)

// ChallengeService - владелец всего состояния столкновения.
// Единственный писатель: все мутации проходят через одну горутину run(),
// читающую CommandChan. Транспорт только кладет команды в канал и
// читает снимки из Hub.
type ChallengeService struct {
	Challenge *challenge.Challenge
	Flow      *selection.Flow
	Catalog   *catalog.Catalog

	Logs   []api.LogEntry
	events []domain.Event

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.CommandType]handlers.HandlerFunc
}

func NewService(cfg Config) (*ChallengeService, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load action catalog: %w", err)
		}
		cat = loaded
	}

	zones, graph := buildArena()
	pcs, npcs := buildRoster()

	ch := challenge.NewChallenge(cfg.Seed, zones, graph, pcs, npcs)
	flow := selection.NewFlow(ch, ch.Hands(), graph, cat)

	s := &ChallengeService{
		Challenge:   ch,
		Flow:        flow,
		Catalog:     cat,
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.CommandType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s, nil
}

// buildArena - площадка по умолчанию: три зоны цепочкой.
func buildArena() ([]domain.Zone, *challenge.ZoneGraph) {
	zones := []domain.Zone{
		{ID: "threshold", Name: "Порог", Description: "Разбитые ворота зала."},
		{ID: "hall", Name: "Зал", Description: "Колонны и опрокинутые столы."},
		{ID: "dais", Name: "Возвышение", Description: "Трон над залом."},
	}
	graph := challenge.NewZoneGraph()
	graph.Link("threshold", "hall")
	graph.Link("hall", "dais")
	return zones, graph
}

// buildRoster - стартовые ростеры (подключение клиентов их не меняет).
func buildRoster() (pcs, npcs []*domain.CombatEntity) {
	pcs = []*domain.CombatEntity{
		{ID: "hero_1", Name: "Герой", IsPC: true, Zone: "threshold",
			Weapon: &domain.Weapon{Name: "Меч", IsMelee: true}},
		{ID: "hero_2", Name: "Бард", IsPC: true, Zone: "threshold"},
	}
	npcs = []*domain.CombatEntity{
		{ID: "npc_1", Name: "Гоблин", Zone: "hall",
			Weapon: &domain.Weapon{Name: "Тесак", IsMelee: true}},
		{ID: "npc_2", Name: "Лучник", Zone: "dais",
			Weapon: &domain.Weapon{Name: "Лук", IsMelee: false}},
	}
	return pcs, npcs
}

func (s *ChallengeService) registerHandlers() {
	s.handlers[domain.CmdInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.CmdKey] = handlers.WithPayload(actions.HandleKey)
	s.handlers[domain.CmdSelectCard] = handlers.WithPayload(actions.HandleSelectCard)
	s.handlers[domain.CmdChooseAction] = handlers.WithPayload(actions.HandleChooseAction)
	s.handlers[domain.CmdClickEntity] = handlers.WithPayload(actions.HandleClickEntity)
	s.handlers[domain.CmdClickZone] = handlers.WithPayload(actions.HandleClickZone)
	s.handlers[domain.CmdClickPlate] = handlers.WithPayload(actions.HandleClickPlate)
	s.handlers[domain.CmdCancel] = handlers.WithEmptyPayload(actions.HandleCancel)
	s.handlers[domain.CmdShowHand] = handlers.WithEmptyPayload(actions.HandleShowHand)
}

func (s *ChallengeService) Start() {
	s.Challenge.StartRound()
	go s.run()
}

// ProcessCommand принимает команду от транспорта.
// Токен уже проверен слоем WebSocket - здесь доверяем, что Token
// соответствует вошедшему участнику.
func (s *ChallengeService) ProcessCommand(externalCmd api.ClientCommand) {
	cmdType := domain.ParseCommand(externalCmd.Action)
	if cmdType == domain.CmdUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown command")
		return
	}

	select {
	case s.CommandChan <- domain.InternalCommand{
		Cmd:     cmdType,
		Token:   domain.EntityID(externalCmd.Token),
		Payload: externalCmd.Payload,
	}:
	default:
		logger.Log.Warn("Command queue full, dropping command")
	}
}

// --- ГЛАВНЫЙ ЦИКЛ ---

func (s *ChallengeService) run() {
	logger.Log.Info("Challenge loop started")

	for {
		// 1. Ходы NPC не ждут ввода
		s.stepNPCs()

		// 2. Каждый подписчик видит свежий снимок до следующего ввода
		s.publishUpdate()

		// 3. Ждем одно входное событие
		cmd, ok := <-s.CommandChan
		if !ok {
			logger.Log.Info("Challenge loop stopped")
			return
		}
		s.executeCommand(cmd)
	}
}

// stepNPCs проигрывает ходы NPC, пока очередь не дойдет до PC
// или не закончится фаза ходов. NPC пока действуют одинаково:
// играют верхнюю карту на avoid.
func (s *ChallengeService) stepNPCs() {
	const maxSteps = 100 // защита от зацикливания
	for i := 0; i < maxSteps; i++ {
		if s.Challenge.Phase() != domain.PhaseAwaitingAction {
			return
		}
		active := s.Challenge.ActiveEntity()
		if active == nil || active.IsPC {
			return
		}
		s.processNPCTurn(active)
	}
	logger.Log.Error("NPC step limit hit, forcing turn advance")
	s.Challenge.AdvanceTurn()
}

func (s *ChallengeService) processNPCTurn(npc *domain.CombatEntity) {
	hand := s.Challenge.Hands().Hand(npc.ID)
	if len(hand) == 0 {
		logger.Log.WithField("npc", npc.ID).Warn("NPC has no cards, skipping turn")
		s.Challenge.AdvanceTurn()
		return
	}

	intent := &domain.SubmittedActionIntent{
		ID:        uuid.NewString(),
		Actor:     npc,
		ActorID:   npc.ID,
		Card:      hand[0],
		CardIndex: 0,
		Action:    domain.ActionAvoid,
		Weapon:    npc.WieldedWeapon(),
	}
	if err := s.Challenge.SubmitAction(intent); err != nil {
		logger.Log.WithField("npc", npc.ID).WithError(err).Warn("NPC intent rejected")
		s.Challenge.AdvanceTurn()
		return
	}
	if _, err := s.Challenge.Hands().Discard(npc.ID, 0); err != nil {
		logger.Log.WithField("npc", npc.ID).WithError(err).Warn("NPC discard failed")
	}
	s.AddLog(fmt.Sprintf("%s выжидает.", npc.Name), "COMBAT")
}

// executeCommand выполняет хендлер и раскладывает результат
// по логам и буферу событий.
func (s *ChallengeService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Cmd]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Flow:  s.Flow,
		Actor: cmd.Token,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"cmd":   cmd.Cmd.String(),
			"token": cmd.Token,
		}).WithError(err).Warn("Command failed")
		s.AddLog("Некорректная команда.", "ERROR")
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
	s.events = append(s.events, result.Events...)
}

// publishUpdate строит персональный снимок для каждого подписчика.
// Логи и события уходят один раз и очищаются.
func (s *ChallengeService) publishUpdate() {
	for _, id := range s.Hub.Subscribers() {
		state := s.BuildStateFor(id)
		s.Hub.SendTo(id, *state)
	}
	s.Logs = []api.LogEntry{}
	s.events = nil
}

// BuildStateFor создает персональный слепок столкновения для observer.
// Чужие руки не раскрываются.
func (s *ChallengeService) BuildStateFor(observer domain.EntityID) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Round:      s.Challenge.Round(),
		Phase:      s.Challenge.Phase().String(),
		MyEntityID: observer.String(),
	}
	if active := s.Challenge.ActiveEntity(); active != nil {
		resp.ActiveEntityID = active.ID.String()
	}

	for _, z := range s.Challenge.Zones() {
		resp.Zones = append(resp.Zones, api.ZoneView{ID: z.ID.String(), Name: z.Name})
	}

	roster := append(append([]*domain.CombatEntity{}, s.Challenge.PCs()...), s.Challenge.NPCs()...)
	for _, e := range roster {
		resp.Entities = append(resp.Entities, api.EntityView{
			ID:            e.ID.String(),
			Name:          e.Name,
			IsPC:          e.IsPC,
			Zone:          e.Zone.String(),
			IsDead:        e.IsDead(),
			Conditions:    e.Conditions.Strings(),
			HasInitiative: s.Challenge.HasInitiative(e.ID),
		})
	}

	for _, c := range s.Challenge.Hands().Hand(observer) {
		resp.Hand = append(resp.Hand, api.CardView{Name: c.Name, Value: c.Value, Suit: c.Suit.String()})
	}

	resp.Selection = s.buildSelectionView()

	for _, ev := range s.events {
		view := api.EventView{
			Type:      ev.Type.String(),
			Actor:     ev.Actor.String(),
			CardIndex: ev.CardIndex,
		}
		if ev.Card != nil {
			view.Card = ev.Card.Name
		}
		if ev.Action != domain.ActionUnknown {
			view.Action = ev.Action.String()
		}
		resp.Events = append(resp.Events, view)
	}

	resp.Logs = make([]api.LogEntry, len(s.Logs))
	copy(resp.Logs, s.Logs)

	return resp
}

func (s *ChallengeService) buildSelectionView() *api.SelectionView {
	st := s.Flow.State()
	initiativePC := s.Flow.InitiativePC()
	if st.Idle() && initiativePC == nil {
		return nil
	}

	view := &api.SelectionView{
		CardIndex:      st.SelectedCardIndex,
		AwaitingTarget: st.AwaitingTarget,
		AwaitingZone:   st.AwaitingZone,
	}
	if st.SelectedAction != nil {
		view.Action = st.SelectedAction.ID.String()
	}
	for _, t := range st.AvailableTargets {
		view.Targets = append(view.Targets, t.ID.String())
	}
	for _, z := range st.AvailableZones {
		view.ZoneIDs = append(view.ZoneIDs, z.ID.String())
	}
	if initiativePC != nil {
		view.InitiativePC = initiativePC.ID.String()
	}
	return view
}

func (s *ChallengeService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
