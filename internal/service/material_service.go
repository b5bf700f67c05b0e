package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type materialRepository interface {
	List(ctx context.Context) []models.Material
	FindByID(ctx context.Context, id string) (models.Material, bool)
	Save(ctx context.Context, material models.Material) error
	Delete(ctx context.Context, id string) error
	ListByCourse(ctx context.Context, courseTitle string) []models.Material
}

// MaterialService manages uploaded learning resources.
type MaterialService struct {
	repo      materialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewMaterialService(repo materialRepository, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MaterialService{repo: repo, validator: validate, logger: logger}
}

// List returns all materials, or those of one course when courseTitle is set.
func (s *MaterialService) List(ctx context.Context, courseTitle string) []models.Material {
	if courseTitle != "" {
		return s.repo.ListByCourse(ctx, courseTitle)
	}
	return s.repo.List(ctx)
}

func (s *MaterialService) Get(ctx context.Context, id string) (models.Material, error) {
	material, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.Material{}, appErrors.Clone(appErrors.ErrNotFound, "material not found")
	}
	return material, nil
}

// Create records an upload by author dated today. Notes carry no size.
func (s *MaterialService) Create(ctx context.Context, material models.Material, author string) (models.Material, error) {
	material.ID = newID("m")
	material.UploadDate = today()
	if author != "" {
		material.Author = author
	}
	if material.Type == models.MaterialNote {
		material.Size = ""
	}
	return s.Save(ctx, material.ID, material)
}

func (s *MaterialService) Save(ctx context.Context, id string, material models.Material) (models.Material, error) {
	material.ID = id
	if err := s.validator.Struct(material); err != nil {
		return models.Material{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}
	if err := s.repo.Save(ctx, material); err != nil {
		return models.Material{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save material")
	}
	return material, nil
}

func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete material")
	}
	return nil
}
