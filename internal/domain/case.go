package domain

// PoolEntry is one possible prize in a case with its relative weight.
// Weights are not required to sum to 1.
type PoolEntry struct {
	Item   ItemTemplate `json:"item"`
	Weight float64      `json:"weight"`
}

// Case is a purchasable loot container.
type Case struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Price int64       `json:"price"`
	Image string      `json:"image,omitempty"`
	Pool  []PoolEntry `json:"-"`
}

// Summary strips the prize pool for public listing.
func (c *Case) Summary() CaseSummary {
	return CaseSummary{
		ID:    c.ID,
		Name:  c.Name,
		Price: c.Price,
		Image: c.Image,
	}
}

// CaseSummary is the public view of a case.
type CaseSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image,omitempty"`
}

// DropChance is the disclosed probability of one pool entry.
type DropChance struct {
	ItemID  string  `json:"itemId"`
	Name    string  `json:"name"`
	Rarity  Rarity  `json:"rarity"`
	Percent float64 `json:"percent"`
}

// CaseOdds lists the normalized drop chances of a case, in pool order.
type CaseOdds struct {
	Case    CaseSummary  `json:"case"`
	Chances []DropChance `json:"chances"`
}
