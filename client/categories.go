package client

import (
	"context"

	"github.com/hyw-webpics/webpics/client/internal/api"
)

// CategoryService groups category endpoints. Mutations are admin-scoped.
type CategoryService struct{ s api.Sender }

// List returns all categories.
func (cs *CategoryService) List(ctx context.Context) ([]Category, error) {
	return api.ListCategories(ctx, cs.s)
}

// Create adds a category.
func (cs *CategoryService) Create(ctx context.Context, in CategoryInput) (*Category, error) {
	return api.CreateCategory(ctx, cs.s, in)
}

// Update renames a category. id is placed in the path as-is; escape it
// first if it may contain reserved characters.
func (cs *CategoryService) Update(ctx context.Context, id ID, in CategoryInput) (*Message, error) {
	return api.UpdateCategory(ctx, cs.s, id, in)
}

// Delete removes a category.
func (cs *CategoryService) Delete(ctx context.Context, id ID) (*Message, error) {
	return api.DeleteCategory(ctx, cs.s, id)
}
