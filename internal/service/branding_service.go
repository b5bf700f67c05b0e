package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type brandingRepository interface {
	Get(ctx context.Context) models.InstitutionalBranding
	Save(ctx context.Context, branding models.InstitutionalBranding) error
}

// BrandingService exposes the institution-wide branding singleton.
type BrandingService struct {
	repo      brandingRepository
	validator *validator.Validate
}

func NewBrandingService(repo brandingRepository, validate *validator.Validate) *BrandingService {
	if validate == nil {
		validate = validator.New()
	}
	return &BrandingService{repo: repo, validator: validate}
}

func (s *BrandingService) Get(ctx context.Context) models.InstitutionalBranding {
	return s.repo.Get(ctx)
}

// Save replaces the branding.
func (s *BrandingService) Save(ctx context.Context, branding models.InstitutionalBranding) (models.InstitutionalBranding, error) {
	if err := s.validator.Struct(branding); err != nil {
		return models.InstitutionalBranding{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid branding payload")
	}
	if err := s.repo.Save(ctx, branding); err != nil {
		return models.InstitutionalBranding{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save branding")
	}
	return branding, nil
}
