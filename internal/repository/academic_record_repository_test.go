package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

func TestEnsureIsIdempotent(t *testing.T) {
	store, backend, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewAcademicRecordRepository(store)

	first, err := repo.Ensure(ctx, "U102", "Hawi Gemechu")
	require.NoError(t, err)
	assert.Equal(t, models.NewAcademicRecord("U102", "Hawi Gemechu"), first)
	writes := backend.writes

	second, err := repo.Ensure(ctx, "U102", "Another Name")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, writes, backend.writes)

	count := 0
	for _, rec := range repo.List(ctx) {
		if rec.StudentID == "U102" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEnsureReturnsExistingRecord(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewAcademicRecordRepository(store)

	rec, err := repo.Ensure(ctx, "U101", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "Abdi Tolesa", rec.StudentName)
	assert.Equal(t, 88, *rec.Subjects["MATHEMATICS"].Sem1)
}

func TestSaveSubjectScoreClampsAndEnsures(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewAcademicRecordRepository(store)

	_, err := repo.SaveSubjectScore(ctx, "U102", "Hawi Gemechu", " history ", models.Sem1, 130)
	require.NoError(t, err)
	rec, err := repo.SaveSubjectScore(ctx, "U102", "Hawi Gemechu", "HISTORY", models.Sem2, -4)
	require.NoError(t, err)

	stored, ok := repo.FindByStudent(ctx, "U102")
	require.True(t, ok)
	assert.Equal(t, rec, stored)
	require.NotNil(t, stored.Subjects["HISTORY"].Sem1)
	assert.Equal(t, 100, *stored.Subjects["HISTORY"].Sem1)
	assert.Equal(t, 0, *stored.Subjects["HISTORY"].Sem2)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-1))
	assert.Equal(t, 55, ClampScore(55))
	assert.Equal(t, 100, ClampScore(101))
}
