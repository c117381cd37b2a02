package model

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

type subcategory struct {
	Name   string   `yaml:"name"`
	Labels []string `yaml:"labels"`
}

type category struct {
	Name          string        `yaml:"name"`
	Subcategories []subcategory `yaml:"subcategories"`
}

// Taxonomy is the fixed set of skill categories, subcategories and labels
// the form offers. It is loaded once and never modified; every accessor
// returns copies.
type Taxonomy struct {
	categories []category
}

var skillTaxonomy = mustParseTaxonomy(taxonomyYAML)

// SkillTaxonomy returns the process-wide skill taxonomy.
func SkillTaxonomy() *Taxonomy {
	return skillTaxonomy
}

func mustParseTaxonomy(b []byte) *Taxonomy {
	t, err := ParseTaxonomy(b)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTaxonomy decodes a taxonomy document. Names must be non-empty and
// unique at their level.
func ParseTaxonomy(b []byte) (*Taxonomy, error) {
	var cats []category
	if err := yaml.Unmarshal(b, &cats); err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	seenCat := map[string]bool{}
	for _, c := range cats {
		if c.Name == "" {
			return nil, fmt.Errorf("taxonomy: category name is empty")
		}
		if seenCat[c.Name] {
			return nil, fmt.Errorf("taxonomy: duplicate category %q", c.Name)
		}
		seenCat[c.Name] = true
		seenSub := map[string]bool{}
		for _, s := range c.Subcategories {
			if s.Name == "" {
				return nil, fmt.Errorf("taxonomy: empty subcategory name in %q", c.Name)
			}
			if seenSub[s.Name] {
				return nil, fmt.Errorf("taxonomy: duplicate subcategory %q in %q", s.Name, c.Name)
			}
			seenSub[s.Name] = true
		}
	}
	return &Taxonomy{categories: cats}, nil
}

// CategoryNames returns the categories in declared order.
func (t *Taxonomy) CategoryNames() []string {
	out := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, c.Name)
	}
	return out
}

// SubcategoryNames returns the subcategories of category in declared order,
// or nil for an unknown category.
func (t *Taxonomy) SubcategoryNames(cat string) []string {
	c := t.find(cat)
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		out = append(out, s.Name)
	}
	return out
}

// Labels returns the labels offered under category/subcategory.
func (t *Taxonomy) Labels(cat, sub string) []string {
	c := t.find(cat)
	if c == nil {
		return nil
	}
	for _, s := range c.Subcategories {
		if s.Name == sub {
			return append([]string(nil), s.Labels...)
		}
	}
	return nil
}

// Contains reports whether label is offered under category/subcategory.
func (t *Taxonomy) Contains(cat, sub, label string) bool {
	c := t.find(cat)
	if c == nil {
		return false
	}
	for _, s := range c.Subcategories {
		if s.Name != sub {
			continue
		}
		for _, l := range s.Labels {
			if l == label {
				return true
			}
		}
	}
	return false
}

// EmptySelection returns a skills mapping with every subcategory present and
// nothing selected.
func (t *Taxonomy) EmptySelection() Skills {
	out := make(Skills, len(t.categories))
	for _, c := range t.categories {
		m := make(map[string][]string, len(c.Subcategories))
		for _, s := range c.Subcategories {
			m[s.Name] = []string{}
		}
		out[c.Name] = m
	}
	return out
}

func (t *Taxonomy) find(name string) *category {
	for i := range t.categories {
		if t.categories[i].Name == name {
			return &t.categories[i]
		}
	}
	return nil
}
