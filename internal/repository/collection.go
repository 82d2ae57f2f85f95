// Package repository implements one repository per entity kind on top of db.Storage.
// Each mutation reads the whole collection, changes it in memory and writes it back.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"procurement/db"
	"procurement/internal/logger"
	"procurement/models"
)

// ErrNotFound signals that no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Collection names as they appear after the key prefix.
const (
	ProjectsCollection    = "projects"
	TendersCollection     = "tenders"
	BidsCollection        = "bids"
	EvaluationsCollection = "evaluations"
	ContractsCollection   = "contracts"
)

type record[T any] interface {
	*T
	Base() *models.Meta
}

type settings struct {
	clock func() time.Time
	newID func() models.ID
	log   *zap.Logger
}

type Option func(*settings)

// WithClock overrides time.Now; tests use it to pin "now".
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}

func WithIDGenerator(gen func() models.ID) Option {
	return func(s *settings) { s.newID = gen }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.log = logger.OrNop(l) }
}

func newSettings(opts []Option) settings {
	s := settings{clock: time.Now, newID: NewID, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewID returns a time-ordered id with a random tail.
func NewID() models.ID {
	id, err := uuid.NewV7()
	if err != nil {
		return models.ID(uuid.NewString())
	}
	return models.ID(id.String())
}

type collection[T any, P record[T]] struct {
	store *db.Storage
	name  string
	settings
}

func newCollection[T any, P record[T]](store *db.Storage, name string, s settings) *collection[T, P] {
	return &collection[T, P]{store: store, name: name, settings: s}
}

func (c *collection[T, P]) now() time.Time { return c.clock().UTC() }

func (c *collection[T, P]) List(ctx context.Context) []T {
	return db.Load[T](ctx, c.store, c.name)
}

func (c *collection[T, P]) Count(ctx context.Context) int {
	return len(c.List(ctx))
}

func (c *collection[T, P]) Get(ctx context.Context, id models.ID) (T, error) {
	for _, v := range c.List(ctx) {
		if P(&v).Base().ID == id {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
}

// Add stores v under a fresh id; any id or timestamps on v are replaced.
func (c *collection[T, P]) Add(ctx context.Context, v T) (T, error) {
	op := "repository.Add " + c.name

	err := c.store.Exclusive(func() error {
		all := c.List(ctx)
		ids := lo.SliceToMap(all, func(x T) (models.ID, struct{}) { return P(&x).Base().ID, struct{}{} })

		id := c.newID()
		for lo.HasKey(ids, id) {
			id = c.newID()
		}

		now := c.now()
		meta := P(&v).Base()
		meta.ID, meta.CreatedAt, meta.UpdatedAt = id, now, now

		return db.Save(ctx, c.store, c.name, append(all, v))
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// Update applies fn to the stored record and refreshes updatedAt.
// The record keeps its id and createdAt whatever fn does.
func (c *collection[T, P]) Update(ctx context.Context, id models.ID, fn func(P)) (T, error) {
	op := "repository.Update " + c.name

	var out T
	err := c.store.Exclusive(func() error {
		all := c.List(ctx)
		_, idx, ok := lo.FindIndexOf(all, func(x T) bool { return P(&x).Base().ID == id })
		if !ok {
			return ErrNotFound
		}

		prev := *P(&all[idx]).Base()
		fn(P(&all[idx]))

		meta := P(&all[idx]).Base()
		meta.ID, meta.CreatedAt = prev.ID, prev.CreatedAt
		meta.UpdatedAt = touch(prev.UpdatedAt, c.now())

		out = all[idx]
		return db.Save(ctx, c.store, c.name, all)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.log.Debug("update of missing record",
				logger.String("collection", c.name),
				logger.String("id", string(id)),
			)
		}
		var zero T
		return zero, fmt.Errorf("%s %s: %w", op, id, err)
	}
	return out, nil
}

// Delete reports whether a record was removed. Storage is written only on removal.
func (c *collection[T, P]) Delete(ctx context.Context, id models.ID) (bool, error) {
	op := "repository.Delete " + c.name

	removed := false
	err := c.store.Exclusive(func() error {
		all := c.List(ctx)
		kept := lo.Reject(all, func(x T, _ int) bool { return P(&x).Base().ID == id })
		if len(kept) == len(all) {
			return nil
		}
		removed = true
		return db.Save(ctx, c.store, c.name, kept)
	})
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", op, id, err)
	}
	return removed, nil
}

// Reset empties the collection.
func (c *collection[T, P]) Reset(ctx context.Context) error {
	err := c.store.Exclusive(func() error {
		return db.Save(ctx, c.store, c.name, []T{})
	})
	if err != nil {
		return fmt.Errorf("repository.Reset %s: %w", c.name, err)
	}
	return nil
}

func (c *collection[T, P]) Name() string { return c.name }

func (c *collection[T, P]) filter(ctx context.Context, keep func(T) bool) []T {
	return lo.Filter(c.List(ctx), func(x T, _ int) bool { return keep(x) })
}

// touch keeps updatedAt strictly increasing even when the clock does not move.
func touch(prev, now time.Time) time.Time {
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
