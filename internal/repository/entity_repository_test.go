package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

func TestCourseUpsertKeepsOrder(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewCourseRepository(store)

	course, ok := repo.FindByID(ctx, "C001")
	require.True(t, ok)
	course.Progress = 64
	require.NoError(t, repo.Save(ctx, course))

	courses := repo.List(ctx)
	require.Len(t, courses, 2)
	assert.Equal(t, "C001", courses[0].ID)
	assert.Equal(t, 64, courses[0].Progress)
	assert.Len(t, repo.ListByCampus(ctx, "S001"), 2)
}

func TestDeleteSchoolDoesNotCascade(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	schools := NewSchoolRepository(store)
	courses := NewCourseRepository(store)

	require.NoError(t, schools.Delete(ctx, "S001"))

	_, ok := schools.FindByID(ctx, "S001")
	assert.False(t, ok)
	assert.Len(t, courses.ListByCampus(ctx, "S001"), 2)
}

func TestNewsRegister(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewNewsRepository(store)

	post, ok, err := repo.Register(ctx, "np001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, *post.RegistrationCount)

	post, _, err = repo.Register(ctx, "np001")
	require.NoError(t, err)
	assert.Equal(t, 2, *post.RegistrationCount)

	closed := models.NewsPost{ID: "np002", Title: "Closed", Content: "x"}
	require.NoError(t, repo.Save(ctx, closed))
	_, ok, err = repo.Register(ctx, "np002")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Register(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaymentListByStudent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewPaymentRepository(store)

	require.NoError(t, repo.Save(ctx, models.PaymentTransaction{
		ID: "tx1", Amount: 5000, Method: models.MethodTelebirr, Type: models.TransactionCredit,
		Status: models.PaymentCompleted, StudentID: "U101",
	}))
	require.NoError(t, repo.Save(ctx, models.PaymentTransaction{
		ID: "tx2", Amount: 100, Method: models.MethodCBE, Type: models.TransactionCredit,
		Status: models.PaymentCompleted, StudentID: "U102",
	}))

	assert.Len(t, repo.ListByStudent(ctx, "U101"), 2)
	assert.Len(t, repo.ListByStudent(ctx, "U102"), 1)
}

func TestBrandingDefaultsWhenAbsent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewBrandingRepository(store)

	require.NoError(t, store.Update(ctx, func(doc *models.Document) error {
		doc.Branding = nil
		return nil
	}))
	assert.Equal(t, models.DefaultBranding(), repo.Get(ctx))

	custom := models.DefaultBranding()
	custom.AcademicYear = "2025/26"
	require.NoError(t, repo.Save(ctx, custom))
	assert.Equal(t, "2025/26", repo.Get(ctx).AcademicYear)
}

func TestExamAndMaterialFilters(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	assert.Len(t, NewExamRepository(store).ListByTeacher(ctx, "U002"), 1)
	assert.Len(t, NewMaterialRepository(store).ListByCourse(ctx, "Mathematics Grade 12"), 1)
}
