package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// BrandingRepository reads and writes the institution-wide branding singleton.
type BrandingRepository struct {
	store *DocumentStore
}

func NewBrandingRepository(store *DocumentStore) *BrandingRepository {
	return &BrandingRepository{store: store}
}

// Get returns the stored branding or the defaults when none is stored.
func (r *BrandingRepository) Get(ctx context.Context) models.InstitutionalBranding {
	branding := models.DefaultBranding()
	r.store.View(ctx, func(doc *models.Document) {
		if doc.Branding != nil {
			branding = *doc.Branding
		}
	})
	return branding
}

// Save replaces the singleton.
func (r *BrandingRepository) Save(ctx context.Context, branding models.InstitutionalBranding) error {
	return r.store.Update(ctx, func(doc *models.Document) error {
		doc.Branding = &branding
		return nil
	})
}
