package repository

import (
	"context"
	"fmt"

	"procurement/db"
	"procurement/models"
)

// DefinitionList is one reference list, stored as its own collection.
type DefinitionList struct {
	*collection[models.DefinitionItem, *models.DefinitionItem]
	category models.Category
}

func (l *DefinitionList) Category() models.Category { return l.category }

func (l *DefinitionList) Update(ctx context.Context, id models.ID, patch models.DefinitionPatch) (models.DefinitionItem, error) {
	return l.collection.Update(ctx, id, patch.Apply)
}

// FindByCode returns the first item with the code.
func (l *DefinitionList) FindByCode(ctx context.Context, code models.Code) (models.DefinitionItem, bool) {
	for _, it := range l.List(ctx) {
		if it.Code == code {
			return it, true
		}
	}
	return models.DefinitionItem{}, false
}

// Definitions holds the eleven reference lists. It does not check that a category is
// known; callers at the HTTP boundary do.
type Definitions struct {
	lists map[models.Category]*DefinitionList
	store *db.Storage
	s     settings
}

func NewDefinitions(store *db.Storage, opts ...Option) *Definitions {
	d := &Definitions{
		lists: make(map[models.Category]*DefinitionList, len(models.Categories)),
		store: store,
		s:     newSettings(opts),
	}
	for _, c := range models.Categories {
		d.lists[c] = d.newList(c)
	}
	return d
}

func (d *Definitions) newList(c models.Category) *DefinitionList {
	return &DefinitionList{
		collection: newCollection[models.DefinitionItem](d.store, string(c), d.s),
		category:   c,
	}
}

// Category returns the list for c, creating one for an unlisted category.
func (d *Definitions) Category(c models.Category) *DefinitionList {
	if l, ok := d.lists[c]; ok {
		return l
	}
	return d.newList(c)
}

func (d *Definitions) Categories() []models.Category {
	return append([]models.Category(nil), models.Categories...)
}

func (d *Definitions) List(ctx context.Context, c models.Category) []models.DefinitionItem {
	return d.Category(c).List(ctx)
}

func (d *Definitions) Add(ctx context.Context, c models.Category, item models.DefinitionItem) (models.DefinitionItem, error) {
	return d.Category(c).Add(ctx, item)
}

func (d *Definitions) Update(ctx context.Context, c models.Category, id models.ID, patch models.DefinitionPatch) (models.DefinitionItem, error) {
	return d.Category(c).Update(ctx, id, patch)
}

func (d *Definitions) Delete(ctx context.Context, c models.Category, id models.ID) (bool, error) {
	return d.Category(c).Delete(ctx, id)
}

func (d *Definitions) FindByCode(ctx context.Context, c models.Category, code models.Code) (models.DefinitionItem, bool) {
	return d.Category(c).FindByCode(ctx, code)
}

// ResetAll empties every category, stopping at the first write error.
func (d *Definitions) ResetAll(ctx context.Context) error {
	for _, c := range models.Categories {
		if err := d.lists[c].Reset(ctx); err != nil {
			return fmt.Errorf("repository.Definitions.ResetAll: %w", err)
		}
	}
	return nil
}
