package api

import (
	"context"
	"net/http"

	"github.com/hyw-webpics/webpics/client/internal/types"
)

// ListCategories returns all categories. No credentials needed.
func ListCategories(ctx context.Context, s Sender) ([]types.Category, error) {
	if err := checkContext(ctx, http.MethodGet, "/categories"); err != nil {
		return nil, err
	}
	var out []types.Category
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/categories",
		Scope:  ScopePublic,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory adds a category.
func CreateCategory(ctx context.Context, s Sender, in types.CategoryInput) (*types.Category, error) {
	if err := checkContext(ctx, http.MethodPost, "/admin/categories"); err != nil {
		return nil, err
	}
	var out types.Category
	err := s.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/categories",
		Body:   in,
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory replaces a category's name and slug. The id is not escaped.
func UpdateCategory(ctx context.Context, s Sender, id types.ID, in types.CategoryInput) (*types.Message, error) {
	if err := checkContext(ctx, http.MethodPut, "/admin/categories/" + id.String()); err != nil {
		return nil, err
	}
	var out types.Message
	err := s.Send(ctx, Request{
		Method: http.MethodPut,
		Path:   "/admin/categories/" + id.String(),
		Body:   in,
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category. The backend refuses categories still in use.
func DeleteCategory(ctx context.Context, s Sender, id types.ID) (*types.Message, error) {
	if err := checkContext(ctx, http.MethodDelete, "/admin/categories/" + id.String()); err != nil {
		return nil, err
	}
	var out types.Message
	err := s.Send(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/admin/categories/" + id.String(),
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
