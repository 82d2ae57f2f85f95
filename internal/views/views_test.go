package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"procurement/db"
	"procurement/internal/repository"
	"procurement/models"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func dateIn(days int) string { return now.AddDate(0, 0, days).Format(time.DateOnly) }

func TestFinalScore(t *testing.T) {
	tests := []struct {
		tech, fin, want float64
	}{
		{100, 0, 60},
		{0, 100, 40},
		{80, 90, 84},
		{77.77, 66.66, 73.33},
		{0, 0, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FinalScore(tt.tech, tt.fin), "%v/%v", tt.tech, tt.fin)
	}
	require.Equal(t, 85.0, WeightedScore(80, 90, 0.5, 0.5))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 2.68, Round2(2.675))
	require.Equal(t, -2.68, Round2(-2.675))
	require.Equal(t, 10.0, Round2(9.999))
}

func TestBondValue(t *testing.T) {
	require.Equal(t, 10000.0, BondValue(100000, 10))
	require.Equal(t, 3703.7, BondValue(123456.78, 3))
	require.Equal(t, 0.0, BondValue(0, 10))
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{95, GradeExcellent},
		{90, GradeExcellent},
		{89.99, GradeVeryGood},
		{70, GradeGood},
		{60, GradeAcceptable},
		{59.99, GradeWeak},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, GradeOf(tt.score))
	}
	require.Equal(t, "Excellent", GradeExcellent.Label(models.LanguageEnglish))
	require.Equal(t, "ممتاز", GradeExcellent.Label(models.LanguageArabic))
}

func TestRank(t *testing.T) {
	evals := []models.BidEvaluation{
		{Meta: models.Meta{ID: "a"}, TenderID: "t2", FinalScore: 70},
		{Meta: models.Meta{ID: "b"}, TenderID: "t2", FinalScore: 95},
		{Meta: models.Meta{ID: "c"}, TenderID: "t2", FinalScore: 82},
		{Meta: models.Meta{ID: "d"}, TenderID: "t1", FinalScore: 50},
		{Meta: models.Meta{ID: "e"}, TenderID: "t1", FinalScore: 50},
	}

	got := Rank(evals)
	require.Len(t, got, 5)

	type row struct {
		id   models.ID
		rank int
	}
	var rows []row
	for _, r := range got {
		rows = append(rows, row{r.ID, r.Rank})
	}
	require.Equal(t, []row{{"d", 1}, {"e", 2}, {"b", 1}, {"c", 2}, {"a", 3}}, rows)

	// input untouched
	require.Equal(t, models.ID("a"), evals[0].ID)
	require.Empty(t, Rank(nil))
}

func TestRankIgnoresInsertionOrder(t *testing.T) {
	orders := [][]float64{{70, 95, 82}, {95, 82, 70}, {82, 70, 95}}
	for _, scores := range orders {
		var evals []models.BidEvaluation
		for _, s := range scores {
			evals = append(evals, models.BidEvaluation{TenderID: "t", FinalScore: s})
		}
		got := Rank(evals)
		require.Equal(t, []float64{95, 82, 70}, []float64{got[0].FinalScore, got[1].FinalScore, got[2].FinalScore})
		require.Equal(t, []int{1, 2, 3}, []int{got[0].Rank, got[1].Rank, got[2].Rank})
	}
}

func TestSummaries(t *testing.T) {
	tenders := []models.Tender{
		{Meta: models.Meta{ID: "t1"}, TenderTitle: "Roads"},
		{Meta: models.Meta{ID: "t2"}, TenderTitle: "Servers"},
	}
	bids := []models.Bid{{TenderID: "t1"}, {TenderID: "t1"}, {TenderID: "t1"}, {TenderID: "t3"}}
	evals := []models.BidEvaluation{
		{Meta: models.Meta{ID: "e1"}, TenderID: "t1", FinalScore: 80},
		{Meta: models.Meta{ID: "e2"}, TenderID: "t1", FinalScore: 90},
		{Meta: models.Meta{ID: "e3"}, TenderID: "t1", FinalScore: 90},
		{Meta: models.Meta{ID: "e4"}, TenderID: "t1", FinalScore: 71},
	}

	got := Summaries(tenders, bids, evals)
	require.Len(t, got, 2)

	require.Equal(t, "Roads", got[0].TenderTitle)
	require.Equal(t, 3, got[0].TotalBids)
	require.Equal(t, 4, got[0].EvaluatedBids)
	require.NotNil(t, got[0].TopBid)
	require.Equal(t, models.ID("e2"), got[0].TopBid.ID)
	require.Equal(t, 82.75, got[0].AverageScore)

	require.Equal(t, 0, got[1].TotalBids)
	require.Equal(t, 0, got[1].EvaluatedBids)
	require.Nil(t, got[1].TopBid)
	require.Equal(t, 0.0, got[1].AverageScore)
}

func TestAvailableBids(t *testing.T) {
	bids := []models.Bid{
		{Meta: models.Meta{ID: "b1"}, TenderID: "t1"},
		{Meta: models.Meta{ID: "b2"}, TenderID: "t1"},
		{Meta: models.Meta{ID: "b3"}, TenderID: "t2"},
	}
	evals := []models.BidEvaluation{
		{Meta: models.Meta{ID: "e1"}, TenderID: "t1", BidID: "b1"},
	}

	ids := func(bs []models.Bid) []models.ID {
		var out []models.ID
		for _, b := range bs {
			out = append(out, b.ID)
		}
		return out
	}

	require.Equal(t, []models.ID{"b2"}, ids(AvailableBids(bids, evals, "t1", "")))
	require.Equal(t, []models.ID{"b1", "b2"}, ids(AvailableBids(bids, evals, "t1", "e1")))
	require.Equal(t, []models.ID{"b3"}, ids(AvailableBids(bids, evals, "t2", "")))
}

func TestContractWindows(t *testing.T) {
	tests := []struct {
		name     string
		end      string
		expired  bool
		expiring bool
	}{
		{name: "ten days ahead", end: dateIn(10), expiring: true},
		{name: "ten days ago", end: dateIn(-10), expired: true},
		{name: "beyond window", end: dateIn(45)},
		{name: "exactly at window edge", end: now.AddDate(0, 0, 30).Format(time.RFC3339), expiring: true},
		{name: "no date", end: ""},
		{name: "garbage", end: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expired, IsExpired(tt.end, now))
			require.Equal(t, tt.expiring, IsExpiringSoon(tt.end, now, 30))
		})
	}
}

func TestIsActiveKeepsStoredStatus(t *testing.T) {
	past := models.Contract{ContractStatus: models.ContractStatusActive, EndDate: dateIn(-1)}
	require.False(t, IsActive(past, now))
	require.True(t, IsExpired(past.EndDate, now))
	require.Equal(t, models.ContractStatusActive, past.ContractStatus)

	require.True(t, IsActive(models.Contract{ContractStatus: models.ContractStatusActive, EndDate: dateIn(1)}, now))
	require.False(t, IsActive(models.Contract{ContractStatus: "SIGNED", EndDate: dateIn(1)}, now))
}

func TestViewContractDaysRemaining(t *testing.T) {
	v := ViewContract(models.Contract{EndDate: "2026-06-20"}, now, 30)
	require.NotNil(t, v.DaysRemaining)
	require.Equal(t, 5, *v.DaysRemaining)
	require.True(t, v.ExpiringSoon)

	require.Nil(t, ViewContract(models.Contract{}, now, 30).DaysRemaining)
}

func TestTenderPhase(t *testing.T) {
	require.Equal(t, PhaseClosed, TenderPhase(dateIn(-30), dateIn(-1), now))
	require.Equal(t, PhaseNotStarted, TenderPhase(dateIn(3), dateIn(30), now))
	require.Equal(t, PhaseActive, TenderPhase(dateIn(-3), dateIn(30), now))
	require.Equal(t, PhaseActive, TenderPhase("", "", now))
}

func TestStats(t *testing.T) {
	contracts := []models.Contract{
		{ContractStatus: models.ContractStatusActive, EndDate: dateIn(10), ContractValue: 1000.10},
		{ContractStatus: models.ContractStatusActive, EndDate: dateIn(-10), ContractValue: 2000.20},
		{ContractStatus: "DRAFT", EndDate: dateIn(100), ContractValue: 0.01},
	}
	require.Equal(t, ContractStats{Total: 3, Active: 1, Expiring: 1, Expired: 1, TotalValue: 3000.31}, Stats(contracts, now, 30))
}

func TestSearch(t *testing.T) {
	suppliers := []models.DefinitionItem{{Code: "SUP001", NameAr: "شركة البناء", NameEn: "Builders Co"}}
	tenders := []models.Tender{{Meta: models.Meta{ID: "t1"}, TenderID: "TND-7", TenderTitle: "Bridge"}}

	require.Equal(t, "Builders Co", DisplayName(suppliers, "SUP001", models.LanguageEnglish))
	require.Equal(t, "شركة البناء", DisplayName(suppliers, "SUP001", models.LanguageArabic))
	require.Equal(t, "SUP999", DisplayName(suppliers, "SUP999", models.LanguageEnglish))
	require.Equal(t, "TND-7 - Bridge", TenderLabel(tenders, "t1"))
	require.Equal(t, "t9", TenderLabel(tenders, "t9"))

	bids := []models.Bid{{TenderID: "t1", SupplierName: "SUP002"}, {TenderID: "t9", SupplierName: "SUP001"}}
	require.Len(t, SearchBids(bids, tenders, suppliers, models.LanguageEnglish, "bridge"), 1)
	require.Len(t, SearchBids(bids, tenders, suppliers, models.LanguageEnglish, "builders"), 1)
	require.Len(t, SearchBids(bids, tenders, suppliers, models.LanguageEnglish, " "), 2)

	contracts := []models.Contract{
		{ContractNumber: "C-1", ContractStatus: "ACTIVE", SupplierName: "SUP001"},
		{ContractNumber: "C-2", ContractStatus: "DRAFT"},
	}
	require.Len(t, SearchContracts(contracts, suppliers, models.LanguageArabic, "", "ACTIVE"), 1)
	require.Len(t, SearchContracts(contracts, suppliers, models.LanguageArabic, "البناء", ""), 1)
	require.Len(t, SearchContracts(contracts, suppliers, models.LanguageArabic, "c-", ""), 2)

	defs := []models.DefinitionItem{{Code: "IT", NameEn: "Information Technology"}, {Code: "FIN", NameEn: "Finance"}}
	require.Len(t, SearchDefinitions(defs, "tech"), 1)
	require.Len(t, SearchProjects([]models.Project{{Location: "Riyadh"}}, "riyadh"), 1)
	require.Len(t, SearchTenders(tenders, "tnd"), 1)
	require.Len(t, SearchEvaluations([]models.BidEvaluation{{TenderID: "t1"}}, tenders, "bridge"), 1)
}

func newService(t *testing.T) (*Service, Repositories) {
	t.Helper()
	store := db.NewStorage(db.NewMemoryBackend())
	repos := Repositories{
		Definitions: repository.NewDefinitions(store),
		Projects:    repository.NewProjects(store),
		Tenders:     repository.NewTenders(store),
		Bids:        repository.NewBids(store),
		Evaluations: repository.NewEvaluations(store),
		Contracts:   repository.NewContracts(store),
	}
	return NewService(repos, WithClock(func() time.Time { return now })), repos
}

func TestServiceRecomputesEveryCall(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	tender, err := repos.Tenders.Add(ctx, models.Tender{TenderTitle: "Bridge"})
	require.NoError(t, err)
	bid, err := repos.Bids.Add(ctx, models.Bid{TenderID: tender.ID})
	require.NoError(t, err)

	require.Len(t, svc.AvailableBids(ctx, tender.ID, ""), 1)
	require.Equal(t, 0, svc.Summaries(ctx)[0].EvaluatedBids)

	ev, err := repos.Evaluations.Add(ctx, models.BidEvaluation{TenderID: tender.ID, BidID: bid.ID, FinalScore: FinalScore(80, 90)})
	require.NoError(t, err)

	require.Empty(t, svc.AvailableBids(ctx, tender.ID, ""))
	require.Len(t, svc.AvailableBids(ctx, tender.ID, ev.ID), 1)
	summary := svc.Summaries(ctx)[0]
	require.Equal(t, 1, summary.EvaluatedBids)
	require.Equal(t, 84.0, summary.AverageScore)
	require.Len(t, svc.RankedForTender(ctx, tender.ID), 1)
}

func TestServiceContracts(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	_, _ = repos.Contracts.Add(ctx, models.Contract{ContractStatus: models.ContractStatusActive, EndDate: dateIn(10)})
	_, _ = repos.Contracts.Add(ctx, models.Contract{ContractStatus: models.ContractStatusActive, EndDate: dateIn(50)})

	require.Len(t, svc.ActiveContracts(ctx), 2)
	require.Len(t, svc.ExpiringContracts(ctx, 0), 1)
	require.Len(t, svc.ExpiringContracts(ctx, 60), 2)
	require.Equal(t, 2, svc.ContractStats(ctx).Active)
	require.Len(t, svc.ContractViews(repos.Contracts.List(ctx)), 2)
}

func TestDashboardSteps(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	d := svc.Dashboard(ctx)
	require.Equal(t, StepPending, d.Steps[0].Status)
	require.Equal(t, StepLocked, d.Steps[1].Status)
	require.Zero(t, d.Total)

	_, _ = repos.Definitions.Add(ctx, models.CategorySuppliers, models.DefinitionItem{Code: "SUP001"})
	_, _ = repos.Projects.Add(ctx, models.Project{ProjectTitle: "p"})

	d = svc.Dashboard(ctx)
	require.Equal(t, 1, d.Definitions[models.CategorySuppliers])
	require.Equal(t, []StepStatus{StepCompleted, StepCompleted, StepAvailable, StepLocked, StepLocked, StepLocked},
		[]StepStatus{d.Steps[0].Status, d.Steps[1].Status, d.Steps[2].Status, d.Steps[3].Status, d.Steps[4].Status, d.Steps[5].Status})
	require.Equal(t, 2, d.Total)
}
