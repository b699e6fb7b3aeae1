package server

import (
	"encoding/json"
	"net/http"

	"majesty-server/internal/domain"
	"majesty-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Чтение идет мимо командного канала - для живой отладки сойдет,
// но на консистентность снимка рассчитывать нельзя.
type DebugHandler struct {
	Service *engine.ChallengeService
}

func NewDebugHandler(s *engine.ChallengeService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/challenge", h.handleChallenge)
	mux.HandleFunc("/debug/selection", h.handleSelection)
	mux.HandleFunc("/debug/queue", h.handleQueue)
}

// /debug/challenge - фаза, раунд, ростеры и сыгранная инициатива
func (h *DebugHandler) handleChallenge(w http.ResponseWriter, r *http.Request) {
	type EntityDump struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		IsPC          bool     `json:"is_pc"`
		Zone          string   `json:"zone"`
		IsDead        bool     `json:"is_dead"`
		Conditions    []string `json:"conditions,omitempty"`
		HasInitiative bool     `json:"has_initiative"`
	}

	ch := h.Service.Challenge
	roster := make([]*domain.CombatEntity, 0, len(ch.PCs())+len(ch.NPCs()))
	roster = append(roster, ch.PCs()...)
	roster = append(roster, ch.NPCs()...)

	var entities []EntityDump
	for _, e := range roster {
		entities = append(entities, EntityDump{
			ID:            e.ID.String(),
			Name:          e.Name,
			IsPC:          e.IsPC,
			Zone:          e.Zone.String(),
			IsDead:        e.IsDead(),
			Conditions:    e.Conditions.Strings(),
			HasInitiative: ch.HasInitiative(e.ID),
		})
	}

	writeJSON(w, map[string]interface{}{
		"phase":    ch.Phase().String(),
		"round":    ch.Round(),
		"entities": entities,
		"accepted": len(ch.Accepted()),
		"minors":   len(ch.Minors()),
	})
}

// /debug/selection - снимок автомата выбора
func (h *DebugHandler) handleSelection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.BuildStateFor("").Selection)
}

// /debug/queue - оставшаяся очередь хода раунда
func (h *DebugHandler) handleQueue(w http.ResponseWriter, r *http.Request) {
	type QueueItemView struct {
		EntityID string `json:"entity_id"`
		Name     string `json:"name"`
		Card     string `json:"card"`
		Value    int    `json:"value"`
	}

	var dump []QueueItemView
	for _, item := range h.Service.Challenge.QueueSnapshot() {
		dump = append(dump, QueueItemView{
			EntityID: item.Entity.ID.String(),
			Name:     item.Entity.Name,
			Card:     item.Card.Name,
			Value:    item.Card.Value,
		})
	}
	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустая очередь отдается как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
