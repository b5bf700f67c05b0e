package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type announcementRepository interface {
	List(ctx context.Context) []models.Announcement
	FindByID(ctx context.Context, id string) (models.Announcement, bool)
	Save(ctx context.Context, announcement models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementService manages dashboard notices.
type AnnouncementService struct {
	repo      announcementRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(repo announcementRepository, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AnnouncementService{repo: repo, validator: validate, logger: logger}
}

// List returns announcements in stored order.
func (s *AnnouncementService) List(ctx context.Context) []models.Announcement {
	return s.repo.List(ctx)
}

// Get fetches an announcement by ID.
func (s *AnnouncementService) Get(ctx context.Context, id string) (models.Announcement, error) {
	a, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.Announcement{}, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return a, nil
}

// Create posts a new announcement dated today.
func (s *AnnouncementService) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	a.ID = newID("a")
	if a.Date == "" {
		a.Date = today()
	}
	return s.Save(ctx, a.ID, a)
}

// Save upserts the announcement with id.
func (s *AnnouncementService) Save(ctx context.Context, id string, a models.Announcement) (models.Announcement, error) {
	a.ID = id
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	if err := s.validator.Struct(a); err != nil {
		return models.Announcement{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return models.Announcement{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save announcement")
	}
	return a, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	return nil
}
