package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) []models.User
	FindByID(ctx context.Context, id string) (models.User, bool)
	Save(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id string) error
	FindStudentByIdentifier(ctx context.Context, identifier string) (models.Student, bool)
}

type tuitionLedger interface {
	FindByID(ctx context.Context, id string) (models.PaymentTransaction, bool)
	Save(ctx context.Context, tx models.PaymentTransaction) error
}

// TuitionConfig sets the debit raised when a student registers.
type TuitionConfig struct {
	Amount      float64
	Description string
}

// UserFilter narrows user listings. Empty fields match everything.
type UserFilter struct {
	Role   models.UserRole
	Status models.UserStatus
	Grade  models.GradeLevel
}

func (f UserFilter) matches(u models.User) bool {
	if f.Role != "" && u.Role() != f.Role {
		return false
	}
	if f.Status != "" && u.Base().Status != f.Status {
		return false
	}
	if f.Grade != "" {
		s, ok := u.(models.Student)
		if !ok || s.CurrentGrade != f.Grade {
			return false
		}
	}
	return true
}

// UserService handles user management workflows.
type UserService struct {
	repo      userRepository
	ledger    tuitionLedger
	validator *validator.Validate
	logger    *zap.Logger
	tuition   TuitionConfig
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, ledger tuitionLedger, validate *validator.Validate, logger *zap.Logger, tuition TuitionConfig) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if tuition.Amount <= 0 {
		tuition.Amount = 12000
	}
	if tuition.Description == "" {
		tuition.Description = "Annual Tuition Fee"
	}
	return &UserService{repo: repo, ledger: ledger, validator: validate, logger: logger, tuition: tuition}
}

// List returns users matching filter in stored order.
func (s *UserService) List(ctx context.Context, filter UserFilter) []models.User {
	users := s.repo.List(ctx)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if filter.matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	user, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return user, nil
}

// FindStudent resolves a student by id or national id.
func (s *UserService) FindStudent(ctx context.Context, identifier string) (models.Student, error) {
	student, ok := s.repo.FindStudentByIdentifier(ctx, identifier)
	if !ok {
		return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student record not found")
	}
	return student, nil
}

// Create registers a new user under a generated id.
func (s *UserService) Create(ctx context.Context, rec models.UserRecord) (models.User, error) {
	rec.ID = newID("U")
	return s.save(ctx, rec, nil)
}

// Save upserts the user with id. A user's role is fixed once stored.
func (s *UserService) Save(ctx context.Context, id string, rec models.UserRecord) (models.User, error) {
	rec.ID = id
	var existing models.User
	if current, ok := s.repo.FindByID(ctx, id); ok {
		existing = current
	}
	return s.save(ctx, rec, existing)
}

// Delete removes a user. Records that reference the user are left in place.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	return nil
}

func (s *UserService) save(ctx context.Context, rec models.UserRecord, existing models.User) (models.User, error) {
	rec.Name = strings.TrimSpace(rec.Name)
	rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
	if rec.Status == "" {
		rec.Status = models.StatusActive
	}
	if err := s.validator.Struct(rec); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if err := validateGrades(rec); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if existing != nil && existing.Role() != rec.Role {
		return nil, appErrors.ErrRoleImmutable
	}

	user, err := rec.ToUser()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save user")
	}

	if existing == nil && user.Role() == models.RoleStudent {
		s.raiseTuition(ctx, user.Base())
	}
	return user, nil
}

func (s *UserService) raiseTuition(ctx context.Context, student models.Profile) {
	if s.ledger == nil {
		return
	}
	id := models.TuitionTransactionPrefix + student.ID
	if _, ok := s.ledger.FindByID(ctx, id); ok {
		return
	}
	tx := models.PaymentTransaction{
		ID:          id,
		Date:        today(),
		Description: s.tuition.Description,
		Amount:      s.tuition.Amount,
		Method:      models.MethodSystem,
		Type:        models.TransactionDebit,
		Status:      models.PaymentPending,
		StudentID:   student.ID,
	}
	if err := s.ledger.Save(ctx, tx); err != nil {
		s.logger.Warn("failed to raise tuition debit", zap.String("student_id", student.ID), zap.Error(err))
	}
}

func validateGrades(rec models.UserRecord) error {
	if rec.Role == models.RoleStudent && !rec.CurrentGrade.Valid() {
		return fmt.Errorf("currentGrade %q is not a known grade or level", rec.CurrentGrade)
	}
	if rec.PromotedGrade != "" && !rec.PromotedGrade.Valid() {
		return fmt.Errorf("promotedGrade %q is not a known grade or level", rec.PromotedGrade)
	}
	for _, g := range rec.AssignedGrades {
		if !g.Valid() {
			return fmt.Errorf("assigned grade %q is not a known grade or level", g)
		}
	}
	return nil
}
