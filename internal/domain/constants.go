package domain

// Limits
const (
	// MaxListingPrice bounds market prices so balance arithmetic never overflows
	MaxListingPrice int64 = 1_000_000_000

	// MaxGrantAmount bounds a single admin signal grant
	MaxGrantAmount int64 = 1_000_000

	// MaxUserIDLength bounds user identifiers accepted from clients
	MaxUserIDLength = 64
)

// Account defaults
const (
	// DefaultStartingBalance is the signal balance of a newly created user
	DefaultStartingBalance int64 = 1000

	// StarterItemID is the catalog template every new user receives
	StarterItemID = "samsung_galaxy_a01"
)
