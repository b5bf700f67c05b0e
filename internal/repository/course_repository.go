package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// CourseRepository provides access to the courses collection.
type CourseRepository struct {
	c collection[models.Course]
}

// NewCourseRepository constructs the repository over store.
func NewCourseRepository(store *DocumentStore) *CourseRepository {
	return &CourseRepository{c: collection[models.Course]{
		store: store,
		slice: func(doc *models.Document) *[]models.Course { return &doc.Courses },
		idOf:  func(v models.Course) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *CourseRepository) List(ctx context.Context) []models.Course {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (models.Course, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *CourseRepository) Save(ctx context.Context, v models.Course) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// ListByCampus returns courses offered at campusID.
func (r *CourseRepository) ListByCampus(ctx context.Context, campusID string) []models.Course {
	return filterItems(r.List(ctx), func(c models.Course) bool { return c.CampusID == campusID })
}
