package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// AcademicRecordRepository stores per-student academic histories keyed by
// student id.
type AcademicRecordRepository struct {
	c collection[models.StudentAcademicRecord]
}

// NewAcademicRecordRepository constructs the repository over store.
func NewAcademicRecordRepository(store *DocumentStore) *AcademicRecordRepository {
	return &AcademicRecordRepository{c: collection[models.StudentAcademicRecord]{
		store: store,
		slice: func(doc *models.Document) *[]models.StudentAcademicRecord { return &doc.AcademicRecords },
		idOf:  func(v models.StudentAcademicRecord) string { return v.StudentID },
	}}
}

func (r *AcademicRecordRepository) List(ctx context.Context) []models.StudentAcademicRecord {
	return r.c.list(ctx)
}

// FindByStudent returns the record of studentID.
func (r *AcademicRecordRepository) FindByStudent(ctx context.Context, studentID string) (models.StudentAcademicRecord, bool) {
	return r.c.find(ctx, studentID)
}

// Save upserts by student id.
func (r *AcademicRecordRepository) Save(ctx context.Context, rec models.StudentAcademicRecord) error {
	return r.c.save(ctx, rec)
}

func (r *AcademicRecordRepository) Delete(ctx context.Context, studentID string) error {
	return r.c.remove(ctx, studentID)
}

// Ensure returns the record of studentID, creating and persisting an empty one
// on first access. Repeated calls return the same record.
func (r *AcademicRecordRepository) Ensure(ctx context.Context, studentID, displayName string) (models.StudentAcademicRecord, error) {
	var rec models.StudentAcademicRecord
	err := r.c.store.Update(ctx, func(doc *models.Document) error {
		var created bool
		rec, created = ensureRecord(doc, studentID, displayName)
		if !created {
			return ErrNoChange
		}
		return nil
	})
	return rec, err
}

// SaveSubjectScore records one semester score in the current-grade subjects,
// clamped to 0..100. The record is ensured first.
func (r *AcademicRecordRepository) SaveSubjectScore(ctx context.Context, studentID, displayName, subject string, sem models.Semester, score int) (models.StudentAcademicRecord, error) {
	subject = strings.ToUpper(strings.TrimSpace(subject))
	score = ClampScore(score)

	var rec models.StudentAcademicRecord
	err := r.c.store.Update(ctx, func(doc *models.Document) error {
		ensureRecord(doc, studentID, displayName)
		for i := range doc.AcademicRecords {
			if doc.AcademicRecords[i].StudentID != studentID {
				continue
			}
			current := &doc.AcademicRecords[i]
			if current.Subjects == nil {
				current.Subjects = models.SubjectScores{}
			}
			scores := current.Subjects[subject]
			scores.Set(sem, score)
			current.Subjects[subject] = scores
			rec = *current
			break
		}
		return nil
	})
	return rec, err
}

// ClampScore bounds a score to 0..100.
func ClampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

func ensureRecord(doc *models.Document, studentID, displayName string) (models.StudentAcademicRecord, bool) {
	for _, rec := range doc.AcademicRecords {
		if rec.StudentID == studentID {
			return rec, false
		}
	}
	rec := models.NewAcademicRecord(studentID, displayName)
	doc.AcademicRecords = append(doc.AcademicRecords, rec)
	return rec, true
}
