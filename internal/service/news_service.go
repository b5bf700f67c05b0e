package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type newsRepository interface {
	List(ctx context.Context) []models.NewsPost
	FindByID(ctx context.Context, id string) (models.NewsPost, bool)
	Save(ctx context.Context, post models.NewsPost) error
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, id string) (models.NewsPost, bool, error)
}

// NewsService publishes news posts and tracks event registrations.
type NewsService struct {
	repo      newsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewNewsService(repo newsRepository, validate *validator.Validate, logger *zap.Logger) *NewsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NewsService{repo: repo, validator: validate, logger: logger}
}

func (s *NewsService) List(ctx context.Context) []models.NewsPost {
	return s.repo.List(ctx)
}

func (s *NewsService) Get(ctx context.Context, id string) (models.NewsPost, error) {
	post, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.NewsPost{}, appErrors.Clone(appErrors.ErrNotFound, "news post not found")
	}
	return post, nil
}

// Create publishes a post by author dated today. Unknown categories fall back
// to Update and posts with registration start counting at zero.
func (s *NewsService) Create(ctx context.Context, post models.NewsPost, author string) (models.NewsPost, error) {
	post.ID = newID("np")
	post.Date = today()
	if author != "" {
		post.Author = author
	}
	switch post.Category {
	case models.NewsUpdate, models.NewsEvent, models.NewsInstitutional, models.NewsRecruitment, models.NewsHR:
	default:
		post.Category = models.NewsUpdate
	}
	post.RegistrationCount = nil
	return s.Save(ctx, post.ID, post)
}

// Save upserts the post with id. A stored registration count never goes down.
func (s *NewsService) Save(ctx context.Context, id string, post models.NewsPost) (models.NewsPost, error) {
	post.ID = id
	if err := s.validator.Struct(post); err != nil {
		return models.NewsPost{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid news payload")
	}
	if existing, ok := s.repo.FindByID(ctx, id); ok && existing.RegistrationCount != nil {
		if post.RegistrationCount == nil || *post.RegistrationCount < *existing.RegistrationCount {
			count := *existing.RegistrationCount
			post.RegistrationCount = &count
		}
	}
	if post.HasRegistration && post.RegistrationCount == nil {
		zero := 0
		post.RegistrationCount = &zero
	}
	if err := s.repo.Save(ctx, post); err != nil {
		return models.NewsPost{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save news post")
	}
	return post, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete news post")
	}
	return nil
}

// Register adds one registration to a post that accepts them.
func (s *NewsService) Register(ctx context.Context, id string) (models.NewsPost, error) {
	post, ok, err := s.repo.Register(ctx, id)
	if err != nil {
		return models.NewsPost{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register")
	}
	if !ok {
		if _, exists := s.repo.FindByID(ctx, id); !exists {
			return models.NewsPost{}, appErrors.Clone(appErrors.ErrNotFound, "news post not found")
		}
		return models.NewsPost{}, appErrors.Clone(appErrors.ErrConflict, "registration is not open for this post")
	}
	return post, nil
}
