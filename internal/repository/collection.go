package repository

import (
	"context"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// collection is a CRUD view over one ordered slice of the document.
type collection[T any] struct {
	store *DocumentStore
	slice func(doc *models.Document) *[]T
	idOf  func(item T) string
}

func (c collection[T]) list(ctx context.Context) []T {
	var out []T
	c.store.View(ctx, func(doc *models.Document) {
		items := *c.slice(doc)
		out = make([]T, 0, len(items))
		out = append(out, items...)
	})
	return out
}

func (c collection[T]) find(ctx context.Context, id string) (T, bool) {
	var (
		found T
		ok    bool
	)
	c.store.View(ctx, func(doc *models.Document) {
		for _, item := range *c.slice(doc) {
			if c.idOf(item) == id {
				found, ok = item, true
				return
			}
		}
	})
	return found, ok
}

// save replaces the item with the same id in place, or appends it.
func (c collection[T]) save(ctx context.Context, item T) error {
	return c.store.Update(ctx, func(doc *models.Document) error {
		upsert(c.slice(doc), item, c.idOf)
		return nil
	})
}

// remove drops the item with id; absent ids are a no-op.
func (c collection[T]) remove(ctx context.Context, id string) error {
	return c.store.Update(ctx, func(doc *models.Document) error {
		items := c.slice(doc)
		kept := (*items)[:0]
		for _, item := range *items {
			if c.idOf(item) != id {
				kept = append(kept, item)
			}
		}
		*items = kept
		return nil
	})
}

func upsert[T any](items *[]T, item T, idOf func(T) string) {
	id := idOf(item)
	for i := range *items {
		if idOf((*items)[i]) == id {
			(*items)[i] = item
			return
		}
	}
	*items = append(*items, item)
}

func filterItems[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
