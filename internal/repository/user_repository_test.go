package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	"github.com/noah-isme/iftu-lms-api/internal/seed"
)

func TestUserSaveReplacesInPlace(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	before := repo.List(ctx)
	user, ok := repo.FindByID(ctx, "U102")
	require.True(t, ok)

	student := user.(models.Student)
	student.CurrentGrade = models.Grade12
	require.NoError(t, repo.Save(ctx, student))

	after := repo.List(ctx)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Base().ID, after[i].Base().ID)
	}
	updated, _ := repo.FindByID(ctx, "U102")
	assert.Equal(t, models.Grade12, updated.(models.Student).CurrentGrade)
}

func TestUserSaveAppendsNewID(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	newcomer := models.Teacher{Profile: models.Profile{ID: "U900", Name: "New Teacher", Status: models.StatusActive}}
	require.NoError(t, repo.Save(ctx, newcomer))

	users := repo.List(ctx)
	assert.Equal(t, "U900", users[len(users)-1].Base().ID)
	assert.Len(t, users, len(seed.Document().Users)+1)
}

func TestUserDeleteIsIdempotent(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	require.NoError(t, repo.Delete(ctx, "U003"))
	once := repo.List(ctx)
	require.NoError(t, repo.Delete(ctx, "U003"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	assert.Equal(t, once, repo.List(ctx))
	_, ok := repo.FindByID(ctx, "U003")
	assert.False(t, ok)
}

func TestUserFilters(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	assert.Len(t, repo.ListByRole(ctx, models.RoleStudent), 3)
	assert.Len(t, repo.ListByRole(ctx, models.RoleTeacher), 2)
	assert.Len(t, repo.ListByStatus(ctx, models.StatusInactive), 0)

	grade12 := repo.ListByGrade(ctx, models.Grade12)
	require.Len(t, grade12, 1)
	assert.Equal(t, seed.DemoStudentID, grade12[0].ID)
}

func TestFindStudentByIdentifier(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	byID, ok := repo.FindStudentByIdentifier(ctx, "u101")
	require.True(t, ok)
	assert.Equal(t, "Abdi Tolesa", byID.Name)

	byNational, ok := repo.FindStudentByIdentifier(ctx, " eth-0012-7731 ")
	require.True(t, ok)
	assert.Equal(t, "U102", byNational.ID)

	_, ok = repo.FindStudentByIdentifier(ctx, "U001")
	assert.False(t, ok, "admins are not students")
	_, ok = repo.FindStudentByIdentifier(ctx, "")
	assert.False(t, ok)
}
