package repository

import (
	"context"
	"time"

	"procurement/db"
	"procurement/models"
)

type Projects struct {
	*collection[models.Project, *models.Project]
}

func NewProjects(store *db.Storage, opts ...Option) *Projects {
	return &Projects{newCollection[models.Project](store, ProjectsCollection, newSettings(opts))}
}

func (r *Projects) Update(ctx context.Context, id models.ID, patch models.ProjectPatch) (models.Project, error) {
	return r.collection.Update(ctx, id, patch.Apply)
}

type Tenders struct {
	*collection[models.Tender, *models.Tender]
}

func NewTenders(store *db.Storage, opts ...Option) *Tenders {
	return &Tenders{newCollection[models.Tender](store, TendersCollection, newSettings(opts))}
}

func (r *Tenders) Update(ctx context.Context, id models.ID, patch models.TenderPatch) (models.Tender, error) {
	return r.collection.Update(ctx, id, patch.Apply)
}

func (r *Tenders) ByProject(ctx context.Context, projectID models.ID) []models.Tender {
	return r.filter(ctx, func(t models.Tender) bool { return t.ProjectReference == projectID })
}

type Bids struct {
	*collection[models.Bid, *models.Bid]
}

func NewBids(store *db.Storage, opts ...Option) *Bids {
	return &Bids{newCollection[models.Bid](store, BidsCollection, newSettings(opts))}
}

func (r *Bids) Update(ctx context.Context, id models.ID, patch models.BidPatch) (models.Bid, error) {
	return r.collection.Update(ctx, id, patch.Apply)
}

func (r *Bids) ByTender(ctx context.Context, tenderID models.ID) []models.Bid {
	return r.filter(ctx, func(b models.Bid) bool { return b.TenderID == tenderID })
}

func (r *Bids) BySupplier(ctx context.Context, supplier models.Code) []models.Bid {
	return r.filter(ctx, func(b models.Bid) bool { return b.SupplierName == supplier })
}

type Evaluations struct {
	*collection[models.BidEvaluation, *models.BidEvaluation]
}

func NewEvaluations(store *db.Storage, opts ...Option) *Evaluations {
	return &Evaluations{newCollection[models.BidEvaluation](store, EvaluationsCollection, newSettings(opts))}
}

func (r *Evaluations) Update(ctx context.Context, id models.ID, patch models.EvaluationPatch) (models.BidEvaluation, error) {
	return r.collection.Update(ctx, id, patch.Apply)
}

func (r *Evaluations) ByTender(ctx context.Context, tenderID models.ID) []models.BidEvaluation {
	return r.filter(ctx, func(e models.BidEvaluation) bool { return e.TenderID == tenderID })
}

// ByBid returns the first evaluation of the bid.
func (r *Evaluations) ByBid(ctx context.Context, bidID models.ID) (models.BidEvaluation, bool) {
	for _, e := range r.List(ctx) {
		if e.BidID == bidID {
			return e, true
		}
	}
	return models.BidEvaluation{}, false
}

type Contracts struct {
	*collection[models.Contract, *models.Contract]
}

func NewContracts(store *db.Storage, opts ...Option) *Contracts {
	return &Contracts{newCollection[models.Contract](store, ContractsCollection, newSettings(opts))}
}

func (r *Contracts) Update(ctx context.Context, id models.ID, patch models.ContractPatch) (models.Contract, error) {
	return r.collection.Update(ctx, id, patch.Apply)
}

func (r *Contracts) BySupplier(ctx context.Context, supplier models.Code) []models.Contract {
	return r.filter(ctx, func(c models.Contract) bool { return c.SupplierName == supplier })
}

// Active: ACTIVE status and an end date after now.
func (r *Contracts) Active(ctx context.Context, now time.Time) []models.Contract {
	return r.filter(ctx, func(c models.Contract) bool { return c.ActiveAt(now) })
}

// Expiring: ACTIVE contracts ending within days of now.
func (r *Contracts) Expiring(ctx context.Context, now time.Time, days int) []models.Contract {
	return r.filter(ctx, func(c models.Contract) bool {
		return c.ContractStatus == models.ContractStatusActive && c.ExpiringWithin(now, days)
	})
}
