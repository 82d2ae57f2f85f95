package views

import (
	"context"
	"time"

	"procurement/internal/repository"
	"procurement/models"
)

// Repositories the views read from.
type Repositories struct {
	Definitions *repository.Definitions
	Projects    *repository.Projects
	Tenders     *repository.Tenders
	Bids        *repository.Bids
	Evaluations *repository.Evaluations
	Contracts   *repository.Contracts
}

// Service recomputes every view from the repositories on each call.
type Service struct {
	repos        Repositories
	clock        func() time.Time
	expiringDays int
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

func WithExpiringDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.expiringDays = days
		}
	}
}

func NewService(repos Repositories, opts ...Option) *Service {
	s := &Service{repos: repos, clock: time.Now, expiringDays: models.DefaultExpiringDays}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Now() time.Time { return s.clock().UTC() }

func (s *Service) ExpiringDays() int { return s.expiringDays }

func (s *Service) RankedEvaluations(ctx context.Context) []RankedEvaluation {
	return Rank(s.repos.Evaluations.List(ctx))
}

func (s *Service) RankedForTender(ctx context.Context, tenderID models.ID) []RankedEvaluation {
	return Rank(s.repos.Evaluations.ByTender(ctx, tenderID))
}

func (s *Service) Summaries(ctx context.Context) []models.EvaluationSummary {
	return Summaries(s.repos.Tenders.List(ctx), s.repos.Bids.List(ctx), s.repos.Evaluations.List(ctx))
}

func (s *Service) AvailableBids(ctx context.Context, tenderID, editingID models.ID) []models.Bid {
	return AvailableBids(s.repos.Bids.ByTender(ctx, tenderID), s.repos.Evaluations.List(ctx), tenderID, editingID)
}

func (s *Service) ContractViews(contracts []models.Contract) []ContractView {
	now := s.Now()
	out := make([]ContractView, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, ViewContract(c, now, s.expiringDays))
	}
	return out
}

func (s *Service) ActiveContracts(ctx context.Context) []models.Contract {
	return s.repos.Contracts.Active(ctx, s.Now())
}

// ExpiringContracts uses the default look-ahead when days <= 0.
func (s *Service) ExpiringContracts(ctx context.Context, days int) []models.Contract {
	if days <= 0 {
		days = s.expiringDays
	}
	return s.repos.Contracts.Expiring(ctx, s.Now(), days)
}

func (s *Service) ContractStats(ctx context.Context) ContractStats {
	return Stats(s.repos.Contracts.List(ctx), s.Now(), s.expiringDays)
}

func (s *Service) TenderPhase(t models.Tender) Phase {
	return TenderPhase(t.TenderIssueDate, t.TenderClosingDate, s.Now())
}

// StepStatus of one workflow stage on the dashboard.
type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepAvailable StepStatus = "available"
	StepPending   StepStatus = "pending"
	StepLocked    StepStatus = "locked"
)

type Step struct {
	Name   string     `json:"name"`
	Count  int        `json:"count"`
	Status StepStatus `json:"status"`
}

// Dashboard counts records per collection and walks the workflow
// definitions → projects → tenders → bids → evaluations → contracts.
type Dashboard struct {
	Definitions map[models.Category]int `json:"definitions"`
	Steps       []Step                  `json:"steps"`
	Total       int                     `json:"total"`
}

func (s *Service) Dashboard(ctx context.Context) Dashboard {
	d := Dashboard{Definitions: make(map[models.Category]int, len(models.Categories))}
	defs := 0
	for _, c := range s.repos.Definitions.Categories() {
		n := len(s.repos.Definitions.List(ctx, c))
		d.Definitions[c] = n
		defs += n
	}
	d.Total = defs

	counts := []Step{
		{Name: "definitions", Count: defs},
		{Name: repository.ProjectsCollection, Count: s.repos.Projects.Count(ctx)},
		{Name: repository.TendersCollection, Count: s.repos.Tenders.Count(ctx)},
		{Name: repository.BidsCollection, Count: s.repos.Bids.Count(ctx)},
		{Name: repository.EvaluationsCollection, Count: s.repos.Evaluations.Count(ctx)},
		{Name: repository.ContractsCollection, Count: s.repos.Contracts.Count(ctx)},
	}
	for i := range counts {
		counts[i].Status = stepStatus(counts, i)
		if i > 0 {
			d.Total += counts[i].Count
		}
	}
	d.Steps = counts
	return d
}

// A step is open once the previous one has records.
func stepStatus(steps []Step, i int) StepStatus {
	switch {
	case steps[i].Count > 0:
		return StepCompleted
	case i == 0:
		return StepPending
	case steps[i-1].Count > 0:
		return StepAvailable
	default:
		return StepLocked
	}
}
