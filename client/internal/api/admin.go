package api

import (
	"context"
	"net/http"

	"github.com/hyw-webpics/webpics/client/internal/types"
)

// AdminLogin opens an admin session. The backend answers with a session
// cookie, which the gateway's cookie jar keeps for later admin calls.
func AdminLogin(ctx context.Context, s Sender, password string) (*types.Message, error) {
	if err := checkContext(ctx, http.MethodPost, "/admin/login"); err != nil {
		return nil, err
	}
	var out types.Message
	err := s.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/login",
		Body:   types.AdminLoginRequest{Password: password},
		Scope:  ScopeAdminSession,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogout closes the admin session.
func AdminLogout(ctx context.Context, s Sender) (*types.Message, error) {
	if err := checkContext(ctx, http.MethodPost, "/admin/logout"); err != nil {
		return nil, err
	}
	var out types.Message
	err := s.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/logout",
		Scope:  ScopeAdminSession,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingImages returns images awaiting review, oldest first.
func PendingImages(ctx context.Context, s Sender) (*types.PendingImages, error) {
	if err := checkContext(ctx, http.MethodGet, "/admin/pending"); err != nil {
		return nil, err
	}
	var out types.PendingImages
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/admin/pending",
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminImages lists images of any status; filter fields pass through as query parameters.
func AdminImages(ctx context.Context, s Sender, filter types.ImageFilter) (*types.ImagePage, error) {
	if err := checkContext(ctx, http.MethodGet, "/admin/images"); err != nil {
		return nil, err
	}
	var out types.ImagePage
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/admin/images",
		Query:  filter.Values(),
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveImage publishes a pending image into a category.
func ApproveImage(ctx context.Context, s Sender, id, categoryID types.ID) (*types.Message, error) {
	return adminMessage(ctx, s, Request{
		Method: http.MethodPost,
		Path:   "/admin/approve/" + id.String(),
		Body:   types.ApproveRequest{CategoryID: categoryID},
		Scope:  ScopeAdmin,
	})
}

// RejectImage rejects a pending image. The backend deletes it.
func RejectImage(ctx context.Context, s Sender, id types.ID) (*types.Message, error) {
	return adminMessage(ctx, s, Request{
		Method: http.MethodPost,
		Path:   "/admin/reject/" + id.String(),
		Body:   struct{}{},
		Scope:  ScopeAdmin,
	})
}

// DeleteImage removes an image of any status.
func DeleteImage(ctx context.Context, s Sender, id types.ID) (*types.Message, error) {
	return adminMessage(ctx, s, Request{
		Method: http.MethodDelete,
		Path:   "/admin/images/" + id.String(),
		Scope:  ScopeAdmin,
	})
}

// BulkApproveImages approves ids into one category. Partial-failure
// semantics belong to the backend; ids are sent as given.
func BulkApproveImages(ctx context.Context, s Sender, ids []types.ID, categoryID types.ID) (*types.Message, error) {
	return adminMessage(ctx, s, Request{
		Method: http.MethodPost,
		Path:   "/admin/bulk-approve",
		Body:   types.BulkApproveRequest{IDs: nonNilIDs(ids), CategoryID: categoryID},
		Scope:  ScopeAdmin,
	})
}

// BulkDeleteImages deletes ids. Partial-failure semantics belong to the backend.
func BulkDeleteImages(ctx context.Context, s Sender, ids []types.ID) (*types.Message, error) {
	return adminMessage(ctx, s, Request{
		Method: http.MethodPost,
		Path:   "/admin/bulk-delete",
		Body:   types.BulkDeleteRequest{IDs: nonNilIDs(ids)},
		Scope:  ScopeAdmin,
	})
}

// AdminStats returns moderation counters.
func AdminStats(ctx context.Context, s Sender) (*types.Stats, error) {
	if err := checkContext(ctx, http.MethodGet, "/admin/stats"); err != nil {
		return nil, err
	}
	var out types.Stats
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/admin/stats",
		Scope:  ScopeAdmin,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func adminMessage(ctx context.Context, s Sender, req Request) (*types.Message, error) {
	if err := checkContext(ctx, req.Method, req.Path); err != nil {
		return nil, err
	}
	var out types.Message
	if err := s.Send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// nonNilIDs keeps an empty list encoding as [] rather than null.
func nonNilIDs(ids []types.ID) []types.ID {
	if ids == nil {
		return []types.ID{}
	}
	return ids
}
