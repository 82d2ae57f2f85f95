package handlers

import (
	"context"

	"procurement/models"
)

// EntityStore is what the handlers need from one repository.
// P is the partial-update type of the entity.
type EntityStore[T any, P any] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id models.ID) (T, error)
	Add(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id models.ID, patch P) (T, error)
	Delete(ctx context.Context, id models.ID) (bool, error)
}

type ProjectStore = EntityStore[models.Project, models.ProjectPatch]

type TenderStore interface {
	EntityStore[models.Tender, models.TenderPatch]
	ByProject(ctx context.Context, projectID models.ID) []models.Tender
}

type BidStore interface {
	EntityStore[models.Bid, models.BidPatch]
	ByTender(ctx context.Context, tenderID models.ID) []models.Bid
}

type EvaluationStore = EntityStore[models.BidEvaluation, models.EvaluationPatch]

type ContractStore = EntityStore[models.Contract, models.ContractPatch]

type DefinitionStore interface {
	List(ctx context.Context, c models.Category) []models.DefinitionItem
	Add(ctx context.Context, c models.Category, item models.DefinitionItem) (models.DefinitionItem, error)
	Update(ctx context.Context, c models.Category, id models.ID, patch models.DefinitionPatch) (models.DefinitionItem, error)
	Delete(ctx context.Context, c models.Category, id models.ID) (bool, error)
}

type PreferenceStore interface {
	Language(ctx context.Context) models.Language
	SetLanguage(ctx context.Context, lang models.Language) error
}

// SeedManager loads and wipes the demo data.
type SeedManager interface {
	LoadAll(ctx context.Context) map[string]int
	ClearAll(ctx context.Context) error
	HasAnyData(ctx context.Context) bool
	Counts(ctx context.Context) map[string]int
}
