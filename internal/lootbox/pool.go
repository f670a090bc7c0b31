package lootbox

import (
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/utils"
)

// FlatPoolEntry is a pool entry with its running weight total
type FlatPoolEntry struct {
	Item        domain.ItemTemplate
	Weight      float64
	CumulWeight float64
}

// FlatPool is a case pool prepared for repeated draws
type FlatPool struct {
	Entries     []FlatPoolEntry
	TotalWeight float64
}

// Flatten computes cumulative weights for pool in declaration order.
func Flatten(pool []domain.PoolEntry) (*FlatPool, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPool)
	}
	flat := &FlatPool{Entries: make([]FlatPoolEntry, len(pool))}
	for i, e := range pool {
		flat.TotalWeight += e.Weight
		flat.Entries[i] = FlatPoolEntry{
			Item:        e.Item,
			Weight:      e.Weight,
			CumulWeight: flat.TotalWeight,
		}
	}
	return flat, nil
}

// selectEntry returns the first entry whose cumulative weight reaches roll.
// The second result is false when nothing matched and the last entry was used.
func selectEntry(pool *FlatPool, roll float64) (*FlatPoolEntry, bool) {
	lo, hi := 0, len(pool.Entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if pool.Entries[mid].CumulWeight < roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(pool.Entries) {
		return &pool.Entries[len(pool.Entries)-1], false
	}
	return &pool.Entries[lo], true
}

// Selector draws prizes from case pools
type Selector struct {
	rnd func() float64
}

// NewSelector creates a Selector using rnd as its uniform [0,1) source
func NewSelector(rnd func() float64) *Selector {
	return &Selector{rnd: rnd}
}

// Pick draws one entry from a prepared pool. Weights need not be normalized:
// the roll is scaled to the pool's own total.
func (s *Selector) Pick(pool *FlatPool) (domain.ItemTemplate, bool) {
	entry, matched := selectEntry(pool, s.rnd()*pool.TotalWeight)
	return entry.Item, matched
}

// Select draws one template from an unprepared pool.
func (s *Selector) Select(pool []domain.PoolEntry) (domain.ItemTemplate, error) {
	flat, err := Flatten(pool)
	if err != nil {
		return domain.ItemTemplate{}, err
	}
	item, _ := s.Pick(flat)
	return item, nil
}

// Odds returns the normalized chance of every entry, in pool order.
func (p *FlatPool) Odds() []domain.DropChance {
	chances := make([]domain.DropChance, len(p.Entries))
	for i, e := range p.Entries {
		chances[i] = domain.DropChance{
			ItemID:  e.Item.ID,
			Name:    e.Item.Name,
			Rarity:  e.Item.Rarity,
			Percent: percentOf(e.Weight, p.TotalWeight),
		}
	}
	return chances
}

func percentOf(weight, total float64) float64 {
	return utils.RoundTo(utils.Percent(weight, total), OddsPrecision)
}
