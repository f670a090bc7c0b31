package lootbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
	"github.com/osse101/PhoneTycoon_Go/internal/utils"
)

// OpenCaseResult is the outcome of a successful case opening
type OpenCaseResult struct {
	Prize      domain.InventoryItem `json:"prize"`
	NewBalance int64                `json:"newBalance"`
}

// CaseCatalog is the static case source
type CaseCatalog interface {
	Cases() []domain.Case
	Case(id int) (domain.Case, error)
}

// AccountProvider creates accounts lazily inside a transaction
type AccountProvider interface {
	EnsureUser(ctx context.Context, tx repository.Tx, userID string) (*domain.User, bool, error)
	AnnounceCreated(ctx context.Context, user *domain.User)
}

// Service defines the case opening interface
type Service interface {
	ListCases(ctx context.Context) []domain.CaseSummary
	GetCaseOdds(ctx context.Context, caseID int) (*domain.CaseOdds, error)
	OpenCase(ctx context.Context, userID string, caseID int) (*OpenCaseResult, error)
}

type service struct {
	store     repository.Store
	catalog   CaseCatalog
	accounts  AccountProvider
	publisher event.Publisher
	selector  *Selector
	pools     map[int]*FlatPool
	newID     func() string
	now       func() time.Time
}

// NewService creates a new lootbox service. Every catalog case is flattened
// up front.
func NewService(store repository.Store, catalog CaseCatalog, accounts AccountProvider, publisher event.Publisher) (Service, error) {
	return newService(store, catalog, accounts, publisher, utils.RandomFloat)
}

func newService(store repository.Store, catalog CaseCatalog, accounts AccountProvider, publisher event.Publisher, rnd func() float64) (*service, error) {
	pools := make(map[int]*FlatPool)
	for _, c := range catalog.Cases() {
		flat, err := Flatten(c.Pool)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", c.ID, err)
		}
		pools[c.ID] = flat
	}

	return &service{
		store:     store,
		catalog:   catalog,
		accounts:  accounts,
		publisher: publisher,
		selector:  NewSelector(rnd),
		pools:     pools,
		newID:     uuid.NewString,
		now:       time.Now,
	}, nil
}

func (s *service) ListCases(ctx context.Context) []domain.CaseSummary {
	cases := s.catalog.Cases()
	out := make([]domain.CaseSummary, len(cases))
	for i := range cases {
		out[i] = cases[i].Summary()
	}
	return out
}

func (s *service) GetCaseOdds(ctx context.Context, caseID int) (*domain.CaseOdds, error) {
	c, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}
	return &domain.CaseOdds{
		Case:    c.Summary(),
		Chances: s.pools[caseID].Odds(),
	}, nil
}

// OpenCase charges the case price, draws a prize and adds it to the user's
// inventory as one atomic step.
func (s *service) OpenCase(ctx context.Context, userID string, caseID int) (*OpenCaseResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgOpenCaseCalled, LogFieldUser, userID, LogFieldCase, caseID)

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, created, err := s.accounts.EnsureUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	c, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}

	balance, err := tx.AdjustBalance(ctx, user.ID, -c.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgChargeFailedFmt, caseID, c.Price, err)
	}

	tmpl, matched := s.selector.Pick(s.pools[caseID])
	if !matched {
		log.Warn(LogMsgFallbackPick, LogFieldCase, caseID)
	}
	prize := domain.NewInventoryItem(s.newID(), tmpl, s.now())
	if err := tx.AddItem(ctx, user.ID, prize); err != nil {
		return nil, fmt.Errorf(ErrMsgGrantPrizeFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	if created {
		s.accounts.AnnounceCreated(ctx, user)
	}
	log.Info(LogMsgCaseOpened, LogFieldUser, user.ID, LogFieldCase, caseID, LogFieldItem, prize.TemplateID, LogFieldRarity, prize.Rarity)
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewCaseOpenedEvent(ctx, user.ID, c, prize, balance))
	}

	return &OpenCaseResult{Prize: prize, NewBalance: balance}, nil
}
