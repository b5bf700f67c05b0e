package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// MaterialRepository provides access to the materials collection.
type MaterialRepository struct {
	c collection[models.Material]
}

// NewMaterialRepository constructs the repository over store.
func NewMaterialRepository(store *DocumentStore) *MaterialRepository {
	return &MaterialRepository{c: collection[models.Material]{
		store: store,
		slice: func(doc *models.Document) *[]models.Material { return &doc.Materials },
		idOf:  func(v models.Material) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *MaterialRepository) List(ctx context.Context) []models.Material {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *MaterialRepository) FindByID(ctx context.Context, id string) (models.Material, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *MaterialRepository) Save(ctx context.Context, v models.Material) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// ListByCourse matches materials by course title.
func (r *MaterialRepository) ListByCourse(ctx context.Context, courseTitle string) []models.Material {
	return filterItems(r.List(ctx), func(m models.Material) bool { return m.CourseTitle == courseTitle })
}
