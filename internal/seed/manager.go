// Package seed loads the demo data set and wipes every managed collection.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"procurement/internal/logger"
	"procurement/internal/repository"
	"procurement/models"
)

// Manager fills and clears the repositories through their normal Add and Reset paths.
type Manager struct {
	defs        *repository.Definitions
	projects    *repository.Projects
	tenders     *repository.Tenders
	evaluations *repository.Evaluations
	contracts   *repository.Contracts
	log         *zap.Logger
}

type Repositories struct {
	Definitions *repository.Definitions
	Projects    *repository.Projects
	Tenders     *repository.Tenders
	Evaluations *repository.Evaluations
	Contracts   *repository.Contracts
}

func NewManager(r Repositories, log *zap.Logger) *Manager {
	return &Manager{
		defs:        r.Definitions,
		projects:    r.Projects,
		tenders:     r.Tenders,
		evaluations: r.Evaluations,
		contracts:   r.Contracts,
		log:         logger.OrNop(log),
	}
}

// Keys lists the fifteen managed collections: the definition categories first, then the entities.
// Bids are not managed here; they are created by users only.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(models.Categories)+4)
	for _, c := range models.Categories {
		keys = append(keys, string(c))
	}
	return append(keys,
		repository.ProjectsCollection,
		repository.TendersCollection,
		repository.EvaluationsCollection,
		repository.ContractsCollection,
	)
}

// LoadAll inserts the canned records and reports how many were stored per collection.
// A record that fails is logged and skipped. There is no canned tender data.
func (m *Manager) LoadAll(ctx context.Context) map[string]int {
	res := make(map[string]int, len(models.Categories)+4)

	for _, c := range models.Categories {
		list := m.defs.Category(c)
		res[string(c)] = insert(ctx, m.log, string(c), definitions[c], list.Add)
	}
	res[repository.ProjectsCollection] = insert(ctx, m.log, repository.ProjectsCollection, projects, m.projects.Add)
	res[repository.TendersCollection] = 0
	res[repository.EvaluationsCollection] = insert(ctx, m.log, repository.EvaluationsCollection, evaluations, m.evaluations.Add)
	res[repository.ContractsCollection] = insert(ctx, m.log, repository.ContractsCollection, contracts, m.contracts.Add)

	m.log.Info("seed data loaded", logger.Any("counts", res))
	return res
}

func insert[T any](ctx context.Context, log *zap.Logger, collection string, items []T, add func(context.Context, T) (T, error)) int {
	n := 0
	for i, it := range items {
		if _, err := add(ctx, it); err != nil {
			log.Error("failed to add seed record",
				logger.String("collection", collection),
				logger.Int("index", i),
				logger.ErrorF(err),
			)
			continue
		}
		n++
	}
	return n
}

// ClearAll empties every managed collection. Confirmation is up to the caller.
// Every collection is attempted; the errors are joined.
func (m *Manager) ClearAll(ctx context.Context) error {
	var errs []error
	for _, key := range m.Keys() {
		if err := m.reset(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("seed.ClearAll: %w", err)
	}
	m.log.Info("all collections cleared")
	return nil
}

func (m *Manager) reset(ctx context.Context, key string) error {
	switch key {
	case repository.ProjectsCollection:
		return m.projects.Reset(ctx)
	case repository.TendersCollection:
		return m.tenders.Reset(ctx)
	case repository.EvaluationsCollection:
		return m.evaluations.Reset(ctx)
	case repository.ContractsCollection:
		return m.contracts.Reset(ctx)
	default:
		return m.defs.Category(models.Category(key)).Reset(ctx)
	}
}

// HasData reports whether the collection named by key holds any record.
func (m *Manager) HasData(ctx context.Context, key string) bool {
	return m.count(ctx, key) > 0
}

func (m *Manager) HasAnyData(ctx context.Context) bool {
	for _, key := range m.Keys() {
		if m.HasData(ctx, key) {
			return true
		}
	}
	return false
}

// Counts returns the record count of every managed collection.
func (m *Manager) Counts(ctx context.Context) map[string]int {
	out := make(map[string]int, len(m.Keys()))
	for _, key := range m.Keys() {
		out[key] = m.count(ctx, key)
	}
	return out
}

func (m *Manager) count(ctx context.Context, key string) int {
	switch key {
	case repository.ProjectsCollection:
		return m.projects.Count(ctx)
	case repository.TendersCollection:
		return m.tenders.Count(ctx)
	case repository.EvaluationsCollection:
		return m.evaluations.Count(ctx)
	case repository.ContractsCollection:
		return m.contracts.Count(ctx)
	default:
		return m.defs.Category(models.Category(key)).Count(ctx)
	}
}
