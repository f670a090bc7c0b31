package catalog

import (
	"slices"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
)

// Catalog is the read-only set of phones and cases. It is built once at
// startup and safe for concurrent use.
type Catalog struct {
	phones     map[string]domain.ItemTemplate
	phoneOrder []string
	starter    domain.ItemTemplate
	cases      []domain.Case
	caseIdx    map[int]int
}

// Cases returns every case in document order. Pools are copied.
func (c *Catalog) Cases() []domain.Case {
	out := make([]domain.Case, len(c.cases))
	for i, cs := range c.cases {
		out[i] = cs
		out[i].Pool = slices.Clone(cs.Pool)
	}
	return out
}

// Case looks up a case by id.
func (c *Catalog) Case(id int) (domain.Case, error) {
	idx, ok := c.caseIdx[id]
	if !ok {
		return domain.Case{}, domain.ErrCaseNotFound
	}
	cs := c.cases[idx]
	cs.Pool = slices.Clone(cs.Pool)
	return cs, nil
}

// Phone looks up a phone template by id
func (c *Catalog) Phone(id string) (domain.ItemTemplate, bool) {
	p, ok := c.phones[id]
	return p, ok
}

// Phones returns every phone template in document order
func (c *Catalog) Phones() []domain.ItemTemplate {
	out := make([]domain.ItemTemplate, 0, len(c.phoneOrder))
	for _, id := range c.phoneOrder {
		out = append(out, c.phones[id])
	}
	return out
}

// Starter is the phone granted to every new account
func (c *Catalog) Starter() domain.ItemTemplate {
	return c.starter
}
