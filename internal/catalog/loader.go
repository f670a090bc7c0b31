// Package catalog loads the static phone and case definitions that the loot
// engine draws from.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/validation"
)

//go:embed data/catalog.json data/catalog.schema.json
var assets embed.FS

// ErrInvalidCatalog wraps every semantic catalog problem
var ErrInvalidCatalog = errors.New("invalid catalog")

// Config is the on-disk catalog document
type Config struct {
	Version     string                `json:"version"`
	StarterItem string                `json:"starterItem" validate:"required"`
	Phones      []domain.ItemTemplate `json:"phones" validate:"required,min=1,dive"`
	Cases       []CaseDef             `json:"cases" validate:"required,min=1,dive"`
}

// CaseDef is one case in the document; pool entries reference phones by id
type CaseDef struct {
	ID    int       `json:"id" validate:"min=1"`
	Name  string    `json:"name" validate:"required"`
	Price int64     `json:"price" validate:"gt=0"`
	Image string    `json:"image"`
	Pool  []PoolDef `json:"pool" validate:"required,min=1,dive"`
}

// PoolDef is one weighted pool reference
type PoolDef struct {
	Item   string  `json:"item" validate:"required"`
	Weight float64 `json:"weight"`
}

// Loader reads and validates catalog documents
type Loader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a Loader with the catalog schema registered
func NewLoader() (*Loader, error) {
	schema, err := assets.ReadFile("data/catalog.schema.json")
	if err != nil {
		return nil, err
	}
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(SchemaName, schema); err != nil {
		return nil, err
	}
	return &Loader{
		schemaValidator: sv,
		structValidator: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Load reads the catalog at path, or the embedded default when path is empty.
func (l *Loader) Load(path string) (*Catalog, error) {
	var (
		data   []byte
		err    error
		source = path
	)
	if path == "" {
		source = SourceEmbedded
		data, err = assets.ReadFile("data/catalog.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadCatalogFailed, err)
	}

	cat, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logger.Info(LogMsgCatalogLoaded,
		LogFieldSource, source,
		LogFieldPhones, len(cat.phones),
		LogFieldCases, len(cat.cases))
	return cat, nil
}

// Parse validates a catalog document and builds the runtime catalog.
func (l *Loader) Parse(data []byte) (*Catalog, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSchemaFailed, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseCatalogFailed, err)
	}

	if err := l.structValidator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return build(&cfg)
}

func build(cfg *Config) (*Catalog, error) {
	cat := &Catalog{
		phones:  make(map[string]domain.ItemTemplate, len(cfg.Phones)),
		caseIdx: make(map[int]int, len(cfg.Cases)),
	}

	for _, p := range cfg.Phones {
		if _, dup := cat.phones[p.ID]; dup {
			return nil, fmt.Errorf(ErrFmtPhoneDefinition, p.ID, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgDuplicatePhone))
		}
		if !p.Rarity.IsValid() {
			return nil, fmt.Errorf(ErrFmtPhoneDefinition, p.ID, fmt.Errorf("%w: %s %q", ErrInvalidCatalog, ErrMsgInvalidRarity, p.Rarity))
		}
		cat.phones[p.ID] = p
		cat.phoneOrder = append(cat.phoneOrder, p.ID)
	}

	starter, ok := cat.phones[cfg.StarterItem]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q", ErrInvalidCatalog, ErrMsgUnknownStarter, cfg.StarterItem)
	}
	cat.starter = starter

	referenced := make(map[string]bool, len(cfg.Phones))
	for _, def := range cfg.Cases {
		if _, dup := cat.caseIdx[def.ID]; dup {
			return nil, fmt.Errorf(ErrFmtCaseDefinition, def.ID, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgDuplicateCase))
		}

		c := domain.Case{
			ID:    def.ID,
			Name:  def.Name,
			Price: def.Price,
			Image: def.Image,
			Pool:  make([]domain.PoolEntry, 0, len(def.Pool)),
		}
		for _, entry := range def.Pool {
			phone, ok := cat.phones[entry.Item]
			if !ok {
				return nil, fmt.Errorf(ErrFmtCaseDefinition, def.ID, fmt.Errorf("%w: %s %q", ErrInvalidCatalog, ErrMsgUnknownPoolItem, entry.Item))
			}
			if entry.Weight <= 0 || math.IsInf(entry.Weight, 0) || math.IsNaN(entry.Weight) {
				return nil, fmt.Errorf(ErrFmtCaseDefinition, def.ID, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgInvalidWeight))
			}
			referenced[entry.Item] = true
			c.Pool = append(c.Pool, domain.PoolEntry{Item: phone, Weight: entry.Weight})
		}

		cat.caseIdx[def.ID] = len(cat.cases)
		cat.cases = append(cat.cases, c)
	}

	for _, id := range cat.phoneOrder {
		if !referenced[id] && id != cat.starter.ID {
			logger.Warn(LogMsgOrphanedPhone, LogFieldPhone, id)
		}
	}

	return cat, nil
}
