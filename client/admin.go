package client

import (
	"context"

	"github.com/hyw-webpics/webpics/client/internal/api"
)

// AdminService groups moderation endpoints under /admin. Everything except
// Login and Logout carries the admin capability header.
type AdminService struct{ s api.Sender }

// Login opens an admin session; the session cookie is kept by the client.
func (as *AdminService) Login(ctx context.Context, password string) (*Message, error) {
	return api.AdminLogin(ctx, as.s, password)
}

// Logout closes the admin session.
func (as *AdminService) Logout(ctx context.Context) (*Message, error) {
	return api.AdminLogout(ctx, as.s)
}

// Pending returns images awaiting review.
func (as *AdminService) Pending(ctx context.Context) (*PendingImages, error) {
	return api.PendingImages(ctx, as.s)
}

// Images lists images of any status.
func (as *AdminService) Images(ctx context.Context, filter ImageFilter) (*ImagePage, error) {
	return api.AdminImages(ctx, as.s, filter)
}

// Approve publishes image id into categoryID.
func (as *AdminService) Approve(ctx context.Context, id, categoryID ID) (*Message, error) {
	return api.ApproveImage(ctx, as.s, id, categoryID)
}

// Reject rejects a pending image.
func (as *AdminService) Reject(ctx context.Context, id ID) (*Message, error) {
	return api.RejectImage(ctx, as.s, id)
}

// DeleteImage removes an image of any status.
func (as *AdminService) DeleteImage(ctx context.Context, id ID) (*Message, error) {
	return api.DeleteImage(ctx, as.s, id)
}

// BulkApprove approves ids into categoryID in one request.
func (as *AdminService) BulkApprove(ctx context.Context, ids []ID, categoryID ID) (*Message, error) {
	return api.BulkApproveImages(ctx, as.s, ids, categoryID)
}

// BulkDelete deletes ids in one request.
func (as *AdminService) BulkDelete(ctx context.Context, ids []ID) (*Message, error) {
	return api.BulkDeleteImages(ctx, as.s, ids)
}

// Stats returns moderation counters.
func (as *AdminService) Stats(ctx context.Context) (*Stats, error) {
	return api.AdminStats(ctx, as.s)
}
