package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// UserRepository provides access to the users collection.
type UserRepository struct {
	c collection[models.User]
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(store *DocumentStore) *UserRepository {
	return &UserRepository{c: collection[models.User]{
		store: store,
		slice: func(doc *models.Document) *[]models.User { return (*[]models.User)(&doc.Users) },
		idOf:  func(u models.User) string { return u.Base().ID },
	}}
}

// List returns every user in stored order.
func (r *UserRepository) List(ctx context.Context) []models.User {
	return r.c.list(ctx)
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, bool) {
	return r.c.find(ctx, id)
}

// Save upserts a user by id.
func (r *UserRepository) Save(ctx context.Context, user models.User) error {
	return r.c.save(ctx, user)
}

// Delete removes a user; unknown ids are ignored.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// ListByRole filters users by role.
func (r *UserRepository) ListByRole(ctx context.Context, role models.UserRole) []models.User {
	return filterItems(r.List(ctx), func(u models.User) bool { return u.Role() == role })
}

// ListByStatus filters users by status.
func (r *UserRepository) ListByStatus(ctx context.Context, status models.UserStatus) []models.User {
	return filterItems(r.List(ctx), func(u models.User) bool { return u.Base().Status == status })
}

// ListByGrade returns the students currently in grade.
func (r *UserRepository) ListByGrade(ctx context.Context, grade models.GradeLevel) []models.Student {
	var out []models.Student
	for _, u := range r.List(ctx) {
		if s, ok := u.(models.Student); ok && s.CurrentGrade == grade {
			out = append(out, s)
		}
	}
	return out
}

// FindStudentByIdentifier matches a student by id or national id, ignoring case.
func (r *UserRepository) FindStudentByIdentifier(ctx context.Context, identifier string) (models.Student, bool) {
	needle := strings.TrimSpace(identifier)
	if needle == "" {
		return models.Student{}, false
	}
	for _, u := range r.List(ctx) {
		s, ok := u.(models.Student)
		if !ok {
			continue
		}
		if strings.EqualFold(s.ID, needle) || (s.NationalID != "" && strings.EqualFold(s.NationalID, needle)) {
			return s, true
		}
	}
	return models.Student{}, false
}
