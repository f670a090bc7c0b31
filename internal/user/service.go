package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/repository"
)

// Service defines the interface for account and inventory operations
type Service interface {
	// EnsureUser returns the user inside the caller's transaction, creating the
	// account with the starting balance and starter item when it does not exist.
	EnsureUser(ctx context.Context, tx repository.Tx, userID string) (*domain.User, bool, error)
	// AnnounceCreated publishes user.created; call it after the creating
	// transaction committed.
	AnnounceCreated(ctx context.Context, user *domain.User)

	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
	UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error)
	GrantSignals(ctx context.Context, userID string, amount int64) (*domain.User, error)
}

// Config holds account creation settings
type Config struct {
	StartingBalance int64
	Starter         domain.ItemTemplate
}

type service struct {
	store     repository.Store
	publisher event.Publisher
	cfg       Config
	newID     func() string
	now       func() time.Time
}

// NewService creates a new user service
func NewService(store repository.Store, publisher event.Publisher, cfg Config) Service {
	return &service{
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func (s *service) EnsureUser(ctx context.Context, tx repository.Tx, userID string) (*domain.User, bool, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, false, err
	}

	user, err := tx.GetUser(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	now := s.now()
	created := domain.User{
		ID:        userID,
		Signals:   s.cfg.StartingBalance,
		CreatedAt: now,
	}
	if err := tx.CreateUser(ctx, created); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCreateUserFailed, err)
	}
	starter := domain.NewInventoryItem(s.newID(), s.cfg.Starter, now)
	if err := tx.AddItem(ctx, userID, starter); err != nil {
		return nil, false, fmt.Errorf(ErrMsgGrantStarterItemFailed, err)
	}

	return &created, true, nil
}

func (s *service) AnnounceCreated(ctx context.Context, user *domain.User) {
	logger.FromContext(ctx).Info(LogMsgUserCreated, "user_id", user.ID, "signals", user.Signals)
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewUserCreatedEvent(ctx, *user, s.cfg.Starter.ID))
	}
}

// withUser runs fn inside a transaction on an ensured user and commits.
func (s *service) withUser(ctx context.Context, userID string, fn func(tx repository.Tx, user *domain.User) error) (*domain.User, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, created, err := s.EnsureUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if fn != nil {
		if err := fn(tx, user); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	if created {
		s.AnnounceCreated(ctx, user)
	}
	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	logger.FromContext(ctx).Debug(LogMsgGetUserCalled, "user_id", userID)
	return s.withUser(ctx, userID, nil)
}

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	logger.FromContext(ctx).Debug(LogMsgGetInventoryCall, "user_id", userID)

	var items []domain.InventoryItem
	_, err := s.withUser(ctx, userID, func(tx repository.Tx, _ *domain.User) error {
		var err error
		if items, err = tx.GetInventory(ctx, userID); err != nil {
			return fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateProfile replaces the presentation fields sent by the client. Empty
// names keep their current value.
func (s *service) UpdateProfile(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	var updated *domain.User
	_, err := s.withUser(ctx, userID, func(tx repository.Tx, current *domain.User) error {
		if profile.FirstName == "" {
			profile.FirstName = current.FirstName
		}
		if profile.Username == "" {
			profile.Username = current.Username
		}
		if profile.PhotoURL == nil {
			profile.PhotoURL = current.PhotoURL
		}
		var err error
		if updated, err = tx.UpdateProfile(ctx, userID, profile); err != nil {
			return fmt.Errorf(ErrMsgUpdateProfileFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgProfileUpdated, "user_id", userID)
	return updated, nil
}

func (s *service) GrantSignals(ctx context.Context, userID string, amount int64) (*domain.User, error) {
	if err := validateGrantAmount(amount); err != nil {
		return nil, err
	}

	var balance int64
	user, err := s.withUser(ctx, userID, func(tx repository.Tx, u *domain.User) error {
		var err error
		if balance, err = tx.AdjustBalance(ctx, userID, amount); err != nil {
			return fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	granted := *user
	granted.Signals = balance
	logger.FromContext(ctx).Info(LogMsgSignalsGranted, "user_id", userID, "amount", amount, "balance", balance)
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewSignalsGrantedEvent(ctx, userID, amount, balance, s.now()))
	}
	return &granted, nil
}
