// Package catalog holds the best-practice rule catalog: the rule model,
// the pillar and risk enums, and an immutable Catalog loaded once from
// embedded YAML data files.
//
// The Catalog preserves data-file order. Downstream ranking uses stable
// sorts with catalog order as the tie-break, so iteration order is part
// of the package contract, not an implementation detail.
package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// dataFiles lists the embedded pillar files in catalog order.
var dataFiles = []string{
	"data/operational-excellence.yaml",
	"data/security.yaml",
	"data/reliability.yaml",
	"data/performance-efficiency.yaml",
	"data/cost-optimization.yaml",
	"data/sustainability.yaml",
}

// pillarFile is the YAML document shape of one embedded data file.
type pillarFile struct {
	Pillar Pillar `yaml:"pillar"`
	Rules  []Rule `yaml:"rules"`
}

// Catalog is the read-only rule table. It is safe for concurrent use:
// nothing mutates it after Load returns.
type Catalog struct {
	rules []Rule
	byID  map[string]int
}

// Load parses the embedded data files into a Catalog.
func Load() (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int)}

	for _, name := range dataFiles {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read catalog data %s: %w", name, err)
		}

		var file pillarFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog data %s: %w", name, err)
		}
		if !file.Pillar.Valid() {
			return nil, fmt.Errorf("catalog data %s: unknown pillar %q", name, file.Pillar)
		}

		for _, rule := range file.Rules {
			if err := validateRule(rule); err != nil {
				return nil, fmt.Errorf("catalog data %s: %w", name, err)
			}
			if _, dup := c.byID[rule.ID]; dup {
				return nil, fmt.Errorf("catalog data %s: duplicate rule id %s", name, rule.ID)
			}
			rule.Pillar = file.Pillar
			c.byID[rule.ID] = len(c.rules)
			c.rules = append(c.rules, rule)
		}
	}

	return c, nil
}

func validateRule(r Rule) error {
	if r.ID == "" {
		return fmt.Errorf("rule with empty id (title %q)", r.Title)
	}
	if r.Title == "" {
		return fmt.Errorf("rule %s: empty title", r.ID)
	}
	if !r.Risk.Valid() {
		return fmt.Errorf("rule %s: unknown risk level %q", r.ID, r.Risk)
	}
	return nil
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int { return len(c.rules) }

// Rules returns all rules in catalog order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Rules() []Rule { return c.rules }

// Lookup returns the rule with the given id. A miss yields an
// *UnknownRuleIDError carrying the sorted list of valid ids.
func (c *Catalog) Lookup(id string) (Rule, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Rule{}, &UnknownRuleIDError{ID: id, ValidIDs: c.IDs()}
	}
	return c.rules[idx], nil
}

// Contains reports whether the catalog holds a rule with the given id.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns all rule ids sorted lexically.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	return ids
}

// Select returns the rules whose pillar is in the given set, preserving
// catalog order. An empty or nil pillar set selects every rule.
func (c *Catalog) Select(pillars []Pillar) []Rule {
	if len(pillars) == 0 {
		out := make([]Rule, len(c.rules))
		copy(out, c.rules)
		return out
	}

	want := make(map[Pillar]bool, len(pillars))
	for _, p := range pillars {
		want[p] = true
	}

	var out []Rule
	for _, r := range c.rules {
		if want[r.Pillar] {
			out = append(out, r)
		}
	}
	return out
}

// ByPillar returns the rules of a single pillar in catalog order.
func (c *Catalog) ByPillar(p Pillar) []Rule {
	return c.Select([]Pillar{p})
}
