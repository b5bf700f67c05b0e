package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// ExamRepository provides access to the exams collection.
type ExamRepository struct {
	c collection[models.Exam]
}

// NewExamRepository constructs the repository over store.
func NewExamRepository(store *DocumentStore) *ExamRepository {
	return &ExamRepository{c: collection[models.Exam]{
		store: store,
		slice: func(doc *models.Document) *[]models.Exam { return &doc.Exams },
		idOf:  func(v models.Exam) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *ExamRepository) List(ctx context.Context) []models.Exam {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *ExamRepository) FindByID(ctx context.Context, id string) (models.Exam, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *ExamRepository) Save(ctx context.Context, v models.Exam) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *ExamRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *ExamRepository) ListByTeacher(ctx context.Context, teacherID string) []models.Exam {
	return filterItems(r.List(ctx), func(e models.Exam) bool { return e.TeacherID == teacherID })
}
