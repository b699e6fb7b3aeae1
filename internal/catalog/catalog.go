package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"majesty-server/internal/domain"
)

// Catalog - таблица определений действий, доступных в челлендже.
// Ядро выбора читает её, но никогда не мутирует.
type Catalog struct {
	defs  map[domain.ActionID]domain.ActionDefinition
	order []domain.ActionID
}

// Default возвращает встроенный каталог.
// Таблица повторяет командную доску: melee-действия бьют только свою зону,
// зонные действия выбирают зону назначения, vigilance откладывает follow-up.
func Default() *Catalog {
	c := &Catalog{defs: make(map[domain.ActionID]domain.ActionDefinition)}

	c.put(domain.ActionDefinition{ID: domain.ActionMelee, Name: "Melee", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionGrapple, Name: "Grapple", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionTrip, Name: "Trip", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionDisarm, Name: "Disarm", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionDisplace, Name: "Displace", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionShoot, Name: "Shoot", TargetType: domain.TargetEnemy, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionMove, Name: "Move", TargetType: domain.TargetAny, RequiresTarget: false})
	c.put(domain.ActionDefinition{ID: domain.ActionDash, Name: "Dash", TargetType: domain.TargetAny, RequiresTarget: false})
	c.put(domain.ActionDefinition{ID: domain.ActionAvoid, Name: "Avoid", TargetType: domain.TargetAny, RequiresTarget: false})
	c.put(domain.ActionDefinition{ID: domain.ActionVigilance, Name: "Vigilance", TargetType: domain.TargetAny, RequiresTarget: false})
	c.put(domain.ActionDefinition{ID: domain.ActionAid, Name: "Aid", TargetType: domain.TargetAlly, RequiresTarget: true})
	c.put(domain.ActionDefinition{ID: domain.ActionRally, Name: "Rally", TargetType: domain.TargetAny, RequiresTarget: false})

	return c
}

func (c *Catalog) put(def domain.ActionDefinition) {
	if _, exists := c.defs[def.ID]; !exists {
		c.order = append(c.order, def.ID)
	}
	c.defs[def.ID] = def
}

// Get возвращает определение по ID.
func (c *Catalog) Get(id domain.ActionID) (domain.ActionDefinition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// All возвращает определения в стабильном порядке (порядок доски).
func (c *Catalog) All() []domain.ActionDefinition {
	out := make([]domain.ActionDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// --- YAML override ---

// fileEntry - одна запись файла каталога.
type fileEntry struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	TargetType     string `yaml:"targetType"`
	RequiresTarget bool   `yaml:"requiresTarget"`
}

type fileRoot struct {
	Actions []fileEntry `yaml:"actions"`
}

// LoadFile читает YAML-файл и накладывает его записи поверх дефолтов.
// Неизвестные id отвергаются: каталог - закрытое перечисление.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var root fileRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := Default()
	for _, entry := range root.Actions {
		id := domain.ParseActionID(entry.ID)
		if id == domain.ActionUnknown {
			return nil, fmt.Errorf("catalog: unknown action id %q", entry.ID)
		}

		def := domain.ActionDefinition{
			ID:             id,
			Name:           entry.Name,
			TargetType:     domain.ParseTargetType(entry.TargetType),
			RequiresTarget: entry.RequiresTarget,
		}
		if def.Name == "" {
			// Имя можно опустить - возьмем встроенное
			if base, ok := c.Get(id); ok {
				def.Name = base.Name
			}
		}
		c.put(def)
	}

	return c, nil
}
