package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/nhle/routine-tracker/internal/logfields"
	"github.com/nhle/routine-tracker/internal/store"
)

// Store holds the progress partition of the selected month and mirrors
// it to durable storage. Partitions of previously hydrated months stay
// cached, but only the selected month is readable.
type Store struct {
	kv         store.Store
	logger     *slog.Logger
	month      int
	partitions map[int]Partition
}

// NewStore creates a Store backed by kv. No month is hydrated yet.
func NewStore(kv store.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:         kv,
		logger:     logger,
		partitions: make(map[int]Partition),
	}
}

// Month returns the selected month, or 0 before the first Hydrate.
func (s *Store) Month() int {
	return s.month
}

// StoredMonths lists the months that have an entry in durable storage,
// in calendar order.
func (s *Store) StoredMonths(ctx context.Context) ([]int, error) {
	keys, err := s.kv.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing stored months: %w", err)
	}
	months := make([]int, 0, len(keys))
	for _, key := range keys {
		if month, ok := MonthFromKey(key); ok {
			months = append(months, month)
		}
	}
	sort.Ints(months)
	return months, nil
}

// Hydrate selects month and replaces its in-memory partition with the
// stored one. A missing entry yields an empty partition. A malformed
// entry yields an empty partition and a *ParseError.
func (s *Store) Hydrate(ctx context.Context, month int) error {
	key := StorageKey(month)
	s.month = month

	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.partitions[month] = Partition{}
		return fmt.Errorf("hydrating month %d: %w", month, err)
	}
	if !ok {
		s.partitions[month] = Partition{}
		s.logger.Debug("No stored progress", logfields.Month(month), logfields.Key(key))
		return nil
	}

	p, err := DecodePartition(raw)
	if err != nil {
		s.partitions[month] = Partition{}
		s.logger.Warn("Stored progress is malformed",
			logfields.Month(month), logfields.Key(key), logfields.Error(err))
		return &ParseError{Key: key, Err: err}
	}

	s.partitions[month] = p
	s.logger.Debug("Hydrated progress",
		logfields.Month(month), logfields.Key(key), logfields.Bytes(len(raw)))
	return nil
}

// current returns the selected month's partition, creating it if needed.
func (s *Store) current() Partition {
	p, ok := s.partitions[s.month]
	if !ok {
		p = Partition{}
		s.partitions[s.month] = p
	}
	return p
}

// Value returns the committed value at (day, task) in the selected month.
func (s *Store) Value(day int, task string) string {
	return s.partitions[s.month].Get(day, task)
}

// Partition returns a copy of the selected month's partition.
func (s *Store) Partition() Partition {
	return s.current().Clone()
}

// Commit sets (day, task) to value in the selected month and persists.
// The in-memory update always happens; only persistence can fail.
func (s *Store) Commit(ctx context.Context, day int, task, value string) error {
	s.current().Set(day, task, value)
	s.logger.Debug("Committed cell",
		logfields.Month(s.month), logfields.Day(day), logfields.Task(task))
	return s.Persist(ctx)
}

// Persist writes the selected month's partition to storage. Nothing is
// written while the partition is empty.
func (s *Store) Persist(ctx context.Context) error {
	p := s.current()
	if p.IsEmpty() {
		return nil
	}

	key := StorageKey(s.month)
	raw, err := p.Encode()
	if err != nil {
		return &PersistError{Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.logger.Error("Failed to persist progress",
			logfields.Month(s.month), logfields.Key(key), logfields.Error(err))
		return &PersistError{Key: key, Err: err}
	}
	return nil
}
