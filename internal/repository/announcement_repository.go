package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// AnnouncementRepository provides access to the announcements collection.
type AnnouncementRepository struct {
	c collection[models.Announcement]
}

// NewAnnouncementRepository constructs the repository over store.
func NewAnnouncementRepository(store *DocumentStore) *AnnouncementRepository {
	return &AnnouncementRepository{c: collection[models.Announcement]{
		store: store,
		slice: func(doc *models.Document) *[]models.Announcement { return &doc.Announcements },
		idOf:  func(v models.Announcement) string { return v.ID },
	}}
}

func (r *AnnouncementRepository) List(ctx context.Context) []models.Announcement {
	return r.c.list(ctx)
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (models.Announcement, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *AnnouncementRepository) Save(ctx context.Context, v models.Announcement) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
