package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"procurement/db"
	"procurement/internal/handlers"
	"procurement/internal/handlers/testutils"
	"procurement/internal/repository"
	"procurement/internal/seed"
	"procurement/internal/views"
	"procurement/models"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	h     *handlers.Handler
	api   http.Handler
	store *db.Storage
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	backend := db.NewMemoryBackend()
	store := db.NewStorage(backend)
	clock := func() time.Time { return fixedNow }

	defs := repository.NewDefinitions(store, repository.WithClock(clock))
	projects := repository.NewProjects(store, repository.WithClock(clock))
	tenders := repository.NewTenders(store, repository.WithClock(clock))
	bids := repository.NewBids(store, repository.WithClock(clock))
	evals := repository.NewEvaluations(store, repository.WithClock(clock))
	contracts := repository.NewContracts(store, repository.WithClock(clock))

	svc := views.NewService(views.Repositories{
		Definitions: defs, Projects: projects, Tenders: tenders,
		Bids: bids, Evaluations: evals, Contracts: contracts,
	}, views.WithClock(clock))
	mgr := seed.NewManager(seed.Repositories{
		Definitions: defs, Projects: projects, Tenders: tenders,
		Evaluations: evals, Contracts: contracts,
	}, nil)

	h := handlers.NewHandler(handlers.Deps{
		Definitions: defs,
		Projects:    projects,
		Tenders:     tenders,
		Bids:        bids,
		Evaluations: evals,
		Contracts:   contracts,
		Preferences: store,
		Seed:        mgr,
		Views:       svc,
	})
	return fixture{h: h, api: h.Routes(), store: store}
}

func (f fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.api.ServeHTTP(rr, req)
	return rr
}

func TestPingHandler(t *testing.T) {
	f := newFixture(t)
	rr := httptest.NewRecorder()
	f.h.PingHandler(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}

func TestProjectLifecycle(t *testing.T) {
	f := newFixture(t)

	rr := httptest.NewRecorder()
	f.h.CreateProjectHandler(rr, testutils.JSONRequest(t, http.MethodPost, "/projects", map[string]any{
		"projectTitle":    "Ring road",
		"projectNumber":   "PRJ-1",
		"estimatedBudget": 1500000,
		"startDate":       "2025-01-01",
		"endDate":         "2025-12-31",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := testutils.DecodeJSON[models.Project](t, rr)
	require.NotEmpty(t, created.ID)
	require.Equal(t, fixedNow, created.CreatedAt)

	rr = httptest.NewRecorder()
	req := testutils.WithChiURLParams(httptest.NewRequest(http.MethodGet, "/projects/"+string(created.ID), nil),
		map[string]string{"id": string(created.ID)})
	f.h.GetProjectHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Ring road", testutils.DecodeJSON[models.Project](t, rr).ProjectTitle)

	rr = httptest.NewRecorder()
	req = testutils.WithChiURLParams(testutils.JSONRequest(t, http.MethodPatch, "/projects/"+string(created.ID),
		map[string]any{"location": "North"}), map[string]string{"id": string(created.ID)})
	f.h.EditProjectHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	edited := testutils.DecodeJSON[models.Project](t, rr)
	require.Equal(t, "North", edited.Location)
	require.Equal(t, "Ring road", edited.ProjectTitle)
	require.Equal(t, created.ID, edited.ID)

	rr = httptest.NewRecorder()
	req = testutils.WithChiURLParams(httptest.NewRequest(http.MethodDelete, "/projects/"+string(created.ID), nil),
		map[string]string{"id": string(created.ID)})
	f.h.DeleteProjectHandler(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	f.h.DeleteProjectHandler(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"projectNumber": "P-1"}},
		{"missing number", map[string]any{"projectTitle": "X"}},
		{"negative budget", map[string]any{"projectTitle": "X", "projectNumber": "P-1", "estimatedBudget": -1}},
		{"bad date", map[string]any{"projectTitle": "X", "projectNumber": "P-1", "startDate": "01/02/2025"}},
		{"end before start", map[string]any{"projectTitle": "X", "projectNumber": "P-1", "startDate": "2025-05-01", "endDate": "2025-04-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			f.h.CreateProjectHandler(rr, testutils.JSONRequest(t, http.MethodPost, "/projects", tt.body))
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	rr := httptest.NewRecorder()
	f.h.CreateProjectHandler(rr, httptest.NewRequest(http.MethodPost, "/projects", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetMissingRecord(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/projects/nope", "/tenders/nope", "/bids/nope", "/evaluations/nope", "/contracts/nope"} {
		rr := f.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestTenderFlowThroughRouter(t *testing.T) {
	f := newFixture(t)

	rr := f.do(testutils.JSONRequest(t, http.MethodPost, "/projects", map[string]any{
		"projectTitle": "Water plant", "projectNumber": "PRJ-7",
	}))
	require.Equal(t, http.StatusCreated, rr.Code)
	project := testutils.DecodeJSON[models.Project](t, rr)

	rr = f.do(testutils.JSONRequest(t, http.MethodPost, "/tenders", map[string]any{
		"tenderId":          "T-2025-01",
		"tenderTitle":       "Pumps",
		"projectReference":  project.ID,
		"tenderIssueDate":   "2025-05-01",
		"tenderClosingDate": "2025-07-01",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	tender := testutils.DecodeJSON[models.Tender](t, rr)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/tenders/"+string(tender.ID), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	view := testutils.DecodeJSON[handlers.TenderView](t, rr)
	require.Equal(t, views.PhaseActive, view.Phase)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/projects/"+string(project.ID)+"/tenders", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, testutils.DecodeJSON[[]models.Tender](t, rr), 1)

	// закрытие раньше выпуска недопустимо
	rr = f.do(testutils.JSONRequest(t, http.MethodPatch, "/tenders/"+string(tender.ID), map[string]any{
		"tenderClosingDate": "2025-04-01",
	}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(testutils.JSONRequest(t, http.MethodPost, "/tenders", map[string]any{"tenderTitle": "No id"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEvaluationFinalScoreIsComputed(t *testing.T) {
	f := newFixture(t)

	rr := f.do(testutils.JSONRequest(t, http.MethodPost, "/bids", map[string]any{
		"tenderId": "t1", "supplierName": "SUP-ACME", "bidAmount": 1000,
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	bid := testutils.DecodeJSON[models.Bid](t, rr)

	rr = f.do(testutils.JSONRequest(t, http.MethodPost, "/evaluations", map[string]any{
		"tenderId": "t1", "bidId": bid.ID, "technicalScore": 80, "financialScore": 90,
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	eval := testutils.DecodeJSON[models.BidEvaluation](t, rr)
	require.InDelta(t, 84.0, eval.FinalScore, 1e-9)
	require.Equal(t, "SUP-ACME", eval.SupplierName)

	rr = f.do(testutils.JSONRequest(t, http.MethodPatch, "/evaluations/"+string(eval.ID), map[string]any{
		"technicalScore": 100,
	}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.InDelta(t, 96.0, testutils.DecodeJSON[models.BidEvaluation](t, rr).FinalScore, 1e-9)

	rr = f.do(testutils.JSONRequest(t, http.MethodPost, "/evaluations", map[string]any{
		"tenderId": "t1", "bidId": bid.ID, "technicalScore": 120,
	}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/tenders/t1/evaluations", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	ranked := testutils.DecodeJSON[[]views.RankedEvaluation](t, rr)
	require.Len(t, ranked, 1)
	require.Equal(t, 1, ranked[0].Rank)
	require.Equal(t, views.GradeExcellent, ranked[0].Grade)

	// оцененное предложение больше не доступно для новой оценки
	rr = f.do(httptest.NewRequest(http.MethodGet, "/tenders/t1/available-bids", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, testutils.DecodeJSON[[]models.Bid](t, rr))

	rr = f.do(httptest.NewRequest(http.MethodGet, "/tenders/t1/available-bids?editing="+string(eval.ID), nil))
	require.Len(t, testutils.DecodeJSON[[]models.Bid](t, rr), 1)
}

func TestContractBondValue(t *testing.T) {
	f := newFixture(t)

	rr := f.do(testutils.JSONRequest(t, http.MethodPost, "/contracts", map[string]any{
		"contractNumber": "C-1",
		"contractTitle":  "Maintenance",
		"supplierName":   "SUP-ACME",
		"contractValue":  100000,
		"contractStatus": models.ContractStatusActive,
		"startDate":      "2025-01-01",
		"endDate":        "2025-06-11",
		"performanceBond": map[string]any{
			"bondPercentage": 5,
		},
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	c := testutils.DecodeJSON[models.Contract](t, rr)
	require.InDelta(t, 5000.0, c.PerformanceBond.BondValue, 1e-9)

	rr = f.do(testutils.JSONRequest(t, http.MethodPatch, "/contracts/"+string(c.ID), map[string]any{
		"contractValue": 200000,
	}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.InDelta(t, 10000.0, testutils.DecodeJSON[models.Contract](t, rr).PerformanceBond.BondValue, 1e-9)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/contracts/"+string(c.ID), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	view := testutils.DecodeJSON[views.ContractView](t, rr)
	require.True(t, view.Active)
	require.True(t, view.ExpiringSoon)
	require.NotNil(t, view.DaysRemaining)
	require.Equal(t, 10, *view.DaysRemaining)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/contracts/expiring?days=5", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, testutils.DecodeJSON[[]models.Contract](t, rr))

	rr = f.do(httptest.NewRequest(http.MethodGet, "/contracts/expiring", nil))
	require.Len(t, testutils.DecodeJSON[[]models.Contract](t, rr), 1)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/contracts/expiring?days=abc", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDefinitionsByCategory(t *testing.T) {
	f := newFixture(t)

	rr := f.do(testutils.JSONRequest(t, http.MethodPost, "/definitions/unknown", map[string]any{"code": "X"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	path := "/definitions/" + string(models.CategorySuppliers)
	rr = f.do(testutils.JSONRequest(t, http.MethodPost, path, map[string]any{
		"code": "SUP-1", "nameEn": "Acme", "nameAr": "أكمي",
	}))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	item := testutils.DecodeJSON[models.DefinitionItem](t, rr)

	rr = f.do(testutils.JSONRequest(t, http.MethodPost, path, map[string]any{"code": "SUP-2"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, path+"?q=acme", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, testutils.DecodeJSON[[]models.DefinitionItem](t, rr), 1)

	rr = f.do(testutils.JSONRequest(t, http.MethodPatch, path+"/"+string(item.ID), map[string]any{"code": ""}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodDelete, path+"/"+string(item.ID), nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/definitions", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, testutils.DecodeJSON[[]models.Category](t, rr), len(models.Categories))
}

func TestPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		rr := f.do(testutils.JSONRequest(t, http.MethodPost, "/bids", map[string]any{
			"tenderId": "t1", "supplierName": "SUP-1",
		}))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 5},
		{"?limit=2", 2},
		{"?limit=2&offset=4", 1},
		{"?offset=10", 0},
		{"?limit=0", 5},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rr := f.do(httptest.NewRequest(http.MethodGet, "/bids"+tt.query, nil))
			require.Equal(t, http.StatusOK, rr.Code)
			require.Len(t, testutils.DecodeJSON[[]models.Bid](t, rr), tt.want)
		})
	}
}

func TestSetupSeedAndClear(t *testing.T) {
	f := newFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/setup/status", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	status := testutils.DecodeJSON[struct {
		HasAnyData bool `json:"hasAnyData"`
	}](t, rr)
	require.False(t, status.HasAnyData)

	rr = f.do(httptest.NewRequest(http.MethodPost, "/setup/seed", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	loaded := testutils.DecodeJSON[map[string]int](t, rr)
	require.Positive(t, loaded[repository.ProjectsCollection])

	rr = f.do(httptest.NewRequest(http.MethodDelete, "/setup", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodDelete, "/setup?confirm=true", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Empty(t, testutils.DecodeJSON[[]models.Project](t, rr))
}

func TestLanguagePreference(t *testing.T) {
	f := newFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/preferences/language", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"language":"ar"}`, rr.Body.String())

	rr = f.do(testutils.JSONRequest(t, http.MethodPut, "/preferences/language", map[string]any{"language": "fr"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(testutils.JSONRequest(t, http.MethodPut, "/preferences/language", map[string]any{"language": "en"}))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, models.LanguageEnglish, f.store.Language(context.Background()))
}

func TestCalcHandlers(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"final score", "/calc/final-score?technical=80&financial=90", http.StatusOK, `{"finalScore":84,"grade":"very-good"}`},
		{"final score out of range", "/calc/final-score?technical=101&financial=90", http.StatusBadRequest, ""},
		{"final score missing", "/calc/final-score?technical=80", http.StatusBadRequest, ""},
		{"bond value", "/calc/bond-value?contractValue=100000&percentage=5", http.StatusOK, `{"bondValue":5000}`},
		{"bond value bad percentage", "/calc/bond-value?contractValue=100000&percentage=-1", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := f.do(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rr.Code)
			if tt.body != "" {
				require.JSONEq(t, tt.body, rr.Body.String())
			}
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	f := newFixture(t)
	rr := f.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	d := testutils.DecodeJSON[views.Dashboard](t, rr)
	require.NotEmpty(t, d.Steps)
}

// failingProjects отдает ошибку хранилища на любую запись
type failingProjects struct {
	handlers.ProjectStore
}

func (failingProjects) Add(context.Context, models.Project) (models.Project, error) {
	return models.Project{}, errors.New("disk full")
}

func TestStorageFailureIsInternalError(t *testing.T) {
	h := handlers.NewHandler(handlers.Deps{Projects: failingProjects{}})

	rr := httptest.NewRecorder()
	h.CreateProjectHandler(rr, testutils.JSONRequest(t, http.MethodPost, "/projects", map[string]any{
		"projectTitle": "X", "projectNumber": "P-1",
	}))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"reason":"storage failure"}`, rr.Body.String())
}
