package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// NewsRepository provides access to news posts.
type NewsRepository struct {
	c collection[models.NewsPost]
}

// NewNewsRepository constructs the repository over store.
func NewNewsRepository(store *DocumentStore) *NewsRepository {
	return &NewsRepository{c: collection[models.NewsPost]{
		store: store,
		slice: func(doc *models.Document) *[]models.NewsPost { return &doc.News },
		idOf:  func(v models.NewsPost) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *NewsRepository) List(ctx context.Context) []models.NewsPost {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *NewsRepository) FindByID(ctx context.Context, id string) (models.NewsPost, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *NewsRepository) Save(ctx context.Context, v models.NewsPost) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// Register increments the registration counter of a post that accepts
// registrations. It reports false when the post is missing or closed.
func (r *NewsRepository) Register(ctx context.Context, id string) (models.NewsPost, bool, error) {
	var (
		post models.NewsPost
		ok   bool
	)
	err := r.c.store.Update(ctx, func(doc *models.Document) error {
		for i := range doc.News {
			if doc.News[i].ID != id {
				continue
			}
			if !doc.News[i].HasRegistration {
				return ErrNoChange
			}
			count := 1
			if doc.News[i].RegistrationCount != nil {
				count = *doc.News[i].RegistrationCount + 1
			}
			doc.News[i].RegistrationCount = &count
			post, ok = doc.News[i], true
			return nil
		}
		return ErrNoChange
	})
	if err != nil {
		return models.NewsPost{}, false, err
	}
	return post, ok, nil
}
