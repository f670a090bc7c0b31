package eventlog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/domain"
	"github.com/osse101/PhoneTycoon_Go/internal/event"
)

// Entry is one journal line describing a completed opening or market action
type Entry struct {
	Seq            int64         `json:"seq"`
	Type           event.Type    `json:"type"`
	UserID         string        `json:"userId"`
	CounterpartyID string        `json:"counterpartyId,omitempty"`
	ListingID      int64         `json:"listingId,omitempty"`
	CaseName       string        `json:"caseName,omitempty"`
	ItemName       string        `json:"itemName"`
	Rarity         domain.Rarity `json:"rarity"`
	Price          int64         `json:"price"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// EventFilter filters journal queries. Zero values match everything.
type EventFilter struct {
	UserID string
	Types  []event.Type
	Limit  int
}

func (f EventFilter) matches(e Entry) bool {
	if f.UserID != "" && e.UserID != f.UserID && e.CounterpartyID != f.UserID {
		return false
	}
	return len(f.Types) == 0 || slices.Contains(f.Types, e.Type)
}

// Repository defines the interface for event journal storage
type Repository interface {
	LogEvent(ctx context.Context, entry Entry) error
	// GetEvents returns matching entries newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Entry, error)
	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}

// RingRepository keeps the most recent entries in a fixed-size ring
type RingRepository struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
	seq     int64
}

// NewRingRepository creates a journal holding at most size entries
func NewRingRepository(size int) *RingRepository {
	if size < 1 {
		size = 1
	}
	return &RingRepository{entries: make([]Entry, size)}
}

func (r *RingRepository) LogEvent(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	entry.Seq = r.seq
	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// ordered returns the stored entries oldest first. Caller holds the lock.
func (r *RingRepository) ordered() []Entry {
	if !r.full {
		return slices.Clone(r.entries[:r.next])
	}
	return append(slices.Clone(r.entries[r.next:]), r.entries[:r.next]...)
}

func (r *RingRepository) GetEvents(ctx context.Context, filter EventFilter) ([]Entry, error) {
	r.mu.RLock()
	all := r.ordered()
	r.mu.RUnlock()

	out := make([]Entry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if !filter.matches(all[i]) {
			continue
		}
		out = append(out, all[i])
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *RingRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.ordered()
	total := len(all)
	kept := slices.DeleteFunc(all, func(e Entry) bool { return e.CreatedAt.Before(cutoff) })
	removed := int64(total - len(kept))

	clear(r.entries)
	copy(r.entries, kept)
	r.next = len(kept) % len(r.entries)
	r.full = len(kept) == len(r.entries)
	return removed, nil
}
