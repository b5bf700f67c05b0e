package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// SchoolRepository provides access to campuses.
type SchoolRepository struct {
	c collection[models.School]
}

// NewSchoolRepository constructs the repository over store.
func NewSchoolRepository(store *DocumentStore) *SchoolRepository {
	return &SchoolRepository{c: collection[models.School]{
		store: store,
		slice: func(doc *models.Document) *[]models.School { return &doc.Schools },
		idOf:  func(v models.School) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *SchoolRepository) List(ctx context.Context) []models.School {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *SchoolRepository) FindByID(ctx context.Context, id string) (models.School, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *SchoolRepository) Save(ctx context.Context, v models.School) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *SchoolRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
