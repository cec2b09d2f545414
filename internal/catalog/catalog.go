package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Catalog is the immutable list of actions available to the player.
type Catalog struct {
	actions []model.Action
	byID    map[string]int
}

// New builds a catalog, keeping declaration order. Later duplicates of an id are dropped.
func New(actions []model.Action) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(actions))}
	for _, a := range actions {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.byID[a.ID] = len(c.actions)
		c.actions = append(c.actions, a)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog { return New(defaultActions) }

// Load reads a catalog from a YAML file of the form `actions: [...]`.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc struct {
		Actions []model.Action `yaml:"actions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Actions) == 0 {
		return nil, fmt.Errorf("catalog %s has no actions", path)
	}
	return New(doc.Actions), nil
}

// Actions returns a copy of all actions in declaration order.
func (c *Catalog) Actions() []model.Action {
	out := make([]model.Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// Lookup finds an action by id.
func (c *Catalog) Lookup(id string) (model.Action, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Action{}, false
	}
	return c.actions[i], true
}

// Filter returns the actions whose id is in set, in declaration order. Unknown ids are ignored.
func (c *Catalog) Filter(set model.ActionSet) []model.Action {
	var out []model.Action
	for _, a := range c.actions {
		if set.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of actions.
func (c *Catalog) Len() int { return len(c.actions) }
