package bootstrap

import (
	"fmt"

	"github.com/osse101/PhoneTycoon_Go/internal/catalog"
	"github.com/osse101/PhoneTycoon_Go/internal/config"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
	"github.com/osse101/PhoneTycoon_Go/internal/market"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// Services bundles the domain services the HTTP layer depends on.
type Services struct {
	Catalog  *catalog.Catalog
	Users    user.Service
	Lootbox  lootbox.Service
	Market   market.Service
	EventLog eventlog.Service
}

// LoadCatalog reads the case catalog from cfg.CatalogPath, falling back to
// the embedded default when no path is configured.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	cat, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return cat, nil
}

// InitializeServices wires the account, lootbox, market and history services
// over the shared store. Every mutating service publishes through publisher.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher event.Publisher) (*Services, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	userService := user.NewService(repos.Store, publisher, user.Config{
		StartingBalance: cfg.StartingBalance,
		Starter:         cat.Starter(),
	})

	lootboxService, err := lootbox.NewService(repos.Store, cat, userService, publisher)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLootbox, err)
	}

	return &Services{
		Catalog:  cat,
		Users:    userService,
		Lootbox:  lootboxService,
		Market:   market.NewService(repos.Store, userService, publisher),
		EventLog: eventlog.NewService(repos.EventLog),
	}, nil
}
