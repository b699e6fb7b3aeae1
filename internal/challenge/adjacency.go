package challenge

import (
	"majesty-server/internal/domain"
)

// ZoneGraph - карта смежности зон боевой площадки.
// Ребра симметричны: Link(a, b) делает обе зоны известными графу.
type ZoneGraph struct {
	links map[domain.ZoneID]map[domain.ZoneID]bool
}

func NewZoneGraph() *ZoneGraph {
	return &ZoneGraph{links: make(map[domain.ZoneID]map[domain.ZoneID]bool)}
}

// AddZone регистрирует зону без ребер (известную, но изолированную).
func (g *ZoneGraph) AddZone(id domain.ZoneID) {
	if _, ok := g.links[id]; !ok {
		g.links[id] = make(map[domain.ZoneID]bool)
	}
}

func (g *ZoneGraph) Link(a, b domain.ZoneID) {
	if a == b {
		return
	}
	g.AddZone(a)
	g.AddZone(b)
	g.links[a][b] = true
	g.links[b][a] = true
}

func (g *ZoneGraph) Adjacent(a, b domain.ZoneID) bool {
	return g.links[a][b]
}

func (g *ZoneGraph) Knows(id domain.ZoneID) bool {
	_, ok := g.links[id]
	return ok
}
