package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"procurement/db"
	"procurement/internal/repository"
	"procurement/internal/views"
	"procurement/models"
)

// brokenBackend refuses writes to keys ending in suffix.
type brokenBackend struct {
	*db.MemoryBackend
	suffix string
}

func (b brokenBackend) Write(ctx context.Context, key string, payload []byte) error {
	if strings.HasSuffix(key, b.suffix) {
		return errors.New("write refused")
	}
	return b.MemoryBackend.Write(ctx, key, payload)
}

func newManager(backend db.Backend, log *zap.Logger) *Manager {
	store := db.NewStorage(backend)
	return NewManager(Repositories{
		Definitions: repository.NewDefinitions(store),
		Projects:    repository.NewProjects(store),
		Tenders:     repository.NewTenders(store),
		Evaluations: repository.NewEvaluations(store),
		Contracts:   repository.NewContracts(store),
	}, log)
}

func TestKeys(t *testing.T) {
	m := newManager(db.NewMemoryBackend(), nil)
	keys := m.Keys()
	require.Len(t, keys, 15)
	require.NotContains(t, keys, repository.BidsCollection)
	require.Equal(t, "project-types", keys[0])
	require.Equal(t, "contracts", keys[len(keys)-1])
}

func TestLoadAllThenClearAll(t *testing.T) {
	ctx := context.Background()
	m := newManager(db.NewMemoryBackend(), nil)

	require.False(t, m.HasAnyData(ctx))

	res := m.LoadAll(ctx)
	require.Len(t, res, 15)
	for _, c := range models.Categories {
		require.Equal(t, len(definitions[c]), res[string(c)], c)
		require.Positive(t, res[string(c)], c)
		require.True(t, m.HasData(ctx, string(c)))
	}
	require.Equal(t, len(projects), res["projects"])
	require.Equal(t, 0, res["tenders"])
	require.Equal(t, len(evaluations), res["evaluations"])
	require.Equal(t, len(contracts), res["contracts"])
	require.False(t, m.HasData(ctx, "tenders"))
	require.True(t, m.HasAnyData(ctx))

	require.NoError(t, m.ClearAll(ctx))
	require.False(t, m.HasAnyData(ctx))
	for key, n := range m.Counts(ctx) {
		require.Zero(t, n, key)
	}
}

func TestBidsAreOutsideManagedSet(t *testing.T) {
	ctx := context.Background()
	store := db.NewStorage(db.NewMemoryBackend())
	bids := repository.NewBids(store)
	m := NewManager(Repositories{
		Definitions: repository.NewDefinitions(store),
		Projects:    repository.NewProjects(store),
		Tenders:     repository.NewTenders(store),
		Evaluations: repository.NewEvaluations(store),
		Contracts:   repository.NewContracts(store),
	}, nil)

	_, err := bids.Add(ctx, models.Bid{TenderID: "t"})
	require.NoError(t, err)
	require.False(t, m.HasAnyData(ctx))
	require.NotContains(t, m.Counts(ctx), repository.BidsCollection)

	require.NoError(t, m.ClearAll(ctx))
	require.Equal(t, 1, bids.Count(ctx))
}

func TestLoadAllSkipsFailedRecords(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.ErrorLevel)
	m := newManager(brokenBackend{MemoryBackend: db.NewMemoryBackend(), suffix: "_contracts"}, zap.New(core))

	res := m.LoadAll(ctx)
	require.Equal(t, 0, res["contracts"])
	require.Equal(t, len(projects), res["projects"])
	require.Equal(t, len(contracts), logs.FilterMessage("failed to add seed record").Len())
}

func TestClearAllReportsFailures(t *testing.T) {
	ctx := context.Background()
	m := newManager(brokenBackend{MemoryBackend: db.NewMemoryBackend(), suffix: "_suppliers"}, nil)

	err := m.ClearAll(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "suppliers")
}

func TestSeedEvaluationsUseWeightedScore(t *testing.T) {
	for _, e := range evaluations {
		require.Equal(t, views.FinalScore(e.TechnicalScore, e.FinancialScore), e.FinalScore)
	}
	for _, c := range contracts {
		require.Equal(t, views.BondValue(c.ContractValue, c.PerformanceBond.BondPercentage), c.PerformanceBond.BondValue)
	}
}

func TestUnavailableStorage(t *testing.T) {
	ctx := context.Background()
	m := newManager(nil, nil)

	m.LoadAll(ctx)
	require.False(t, m.HasAnyData(ctx))
	require.NoError(t, m.ClearAll(ctx))
}
