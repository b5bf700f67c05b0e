package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// PaymentRepository provides access to the payments collection.
type PaymentRepository struct {
	c collection[models.PaymentTransaction]
}

// NewPaymentRepository constructs the repository over store.
func NewPaymentRepository(store *DocumentStore) *PaymentRepository {
	return &PaymentRepository{c: collection[models.PaymentTransaction]{
		store: store,
		slice: func(doc *models.Document) *[]models.PaymentTransaction { return &doc.Payments },
		idOf:  func(v models.PaymentTransaction) string { return v.ID },
	}}
}

// List returns every record in stored order.
func (r *PaymentRepository) List(ctx context.Context) []models.PaymentTransaction {
	return r.c.list(ctx)
}

// FindByID returns the record with id.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (models.PaymentTransaction, bool) {
	return r.c.find(ctx, id)
}

// Save upserts by id.
func (r *PaymentRepository) Save(ctx context.Context, v models.PaymentTransaction) error {
	return r.c.save(ctx, v)
}

// Delete removes the record; unknown ids are ignored.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

// ListByStudent returns the transactions attributed to studentID.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID string) []models.PaymentTransaction {
	return filterItems(r.List(ctx), func(t models.PaymentTransaction) bool { return t.BelongsTo(studentID) })
}
