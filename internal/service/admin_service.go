package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type documentResetter interface {
	Reset(ctx context.Context) error
	Load(ctx context.Context) *models.Document
}

// AdminService performs whole-store maintenance.
type AdminService struct {
	store  documentResetter
	logger *zap.Logger
}

func NewAdminService(store documentResetter, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{store: store, logger: logger}
}

// Reset discards every stored record and restores the seed dataset.
func (s *AdminService) Reset(ctx context.Context, actorID string) error {
	if err := s.store.Reset(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset data")
	}
	s.logger.Warn("institutional data reset", zap.String("actor_id", actorID))
	return nil
}

// Snapshot returns the full document, used for backups.
func (s *AdminService) Snapshot(ctx context.Context) *models.Document {
	return s.store.Load(ctx)
}
