package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the visual tier of a phone
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityMythical:  5,
}

var rarityTitle = cases.Title(language.English)

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Rank orders rarities from common (0) upwards. Unknown rarities rank -1.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return -1
}

// Label returns the display form of the rarity, e.g. "Legendary".
func (r Rarity) Label() string {
	return rarityTitle.String(string(r))
}

// ItemTemplate is a static catalog phone that cases can award.
type ItemTemplate struct {
	ID        string `json:"id" validate:"required,max=64"`
	Name      string `json:"name" validate:"required,max=128"`
	Brand     string `json:"brand,omitempty"`
	ModelCode string `json:"modelCode,omitempty"`
	Rarity    Rarity `json:"rarity" validate:"required"`
	Value     int64  `json:"value" validate:"gte=0"`
	Image     string `json:"image,omitempty"`
}

// InventoryItem is one concrete phone owned by a user or held by a listing.
// ID is unique across the whole process.
type InventoryItem struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"templateId"`
	Name       string    `json:"name"`
	Rarity     Rarity    `json:"rarity"`
	Image      string    `json:"image,omitempty"`
	Value      int64     `json:"value"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// NewInventoryItem stamps a fresh instance of tmpl with the given id.
func NewInventoryItem(id string, tmpl ItemTemplate, acquiredAt time.Time) InventoryItem {
	return InventoryItem{
		ID:         id,
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Rarity:     tmpl.Rarity,
		Image:      tmpl.Image,
		Value:      tmpl.Value,
		AcquiredAt: acquiredAt,
	}
}
