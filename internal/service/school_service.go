package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type schoolRepository interface {
	List(ctx context.Context) []models.School
	FindByID(ctx context.Context, id string) (models.School, bool)
	Save(ctx context.Context, school models.School) error
	Delete(ctx context.Context, id string) error
}

// SchoolService manages campuses.
type SchoolService struct {
	repo      schoolRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewSchoolService(repo schoolRepository, validate *validator.Validate, logger *zap.Logger) *SchoolService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SchoolService{repo: repo, validator: validate, logger: logger}
}

func (s *SchoolService) List(ctx context.Context) []models.School {
	return s.repo.List(ctx)
}

func (s *SchoolService) Get(ctx context.Context, id string) (models.School, error) {
	school, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.School{}, appErrors.Clone(appErrors.ErrNotFound, "campus not found")
	}
	return school, nil
}

// Create registers a campus under a generated id.
func (s *SchoolService) Create(ctx context.Context, school models.School) (models.School, error) {
	school.ID = newID("S")
	return s.Save(ctx, school.ID, school)
}

// Save upserts the campus with id.
func (s *SchoolService) Save(ctx context.Context, id string, school models.School) (models.School, error) {
	school.ID = id
	if school.Programs == nil {
		school.Programs = []string{}
	}
	if err := s.validator.Struct(school); err != nil {
		return models.School{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid campus payload")
	}
	if err := s.repo.Save(ctx, school); err != nil {
		return models.School{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save campus")
	}
	return school, nil
}

// Delete removes a campus. Users and courses pointing at it keep their campusId.
func (s *SchoolService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete campus")
	}
	s.logger.Info("campus deleted", zap.String("campus_id", id))
	return nil
}
