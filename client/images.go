package client

import (
	"context"

	"github.com/hyw-webpics/webpics/client/internal/api"
)

// ImageService groups public image endpoints.
type ImageService struct{ s api.Sender }

// ListApproved returns a page of approved images. page and limit default to
// 1 and 20 when zero; an empty categoryID lists every category.
func (is *ImageService) ListApproved(ctx context.Context, page, limit int, categoryID ID) (*ImagePage, error) {
	return api.ListApprovedImages(ctx, is.s, page, limit, categoryID)
}

// Random returns one random approved image; an empty categoryID means any category.
func (is *ImageService) Random(ctx context.Context, categoryID ID) (*Image, error) {
	return api.RandomImage(ctx, is.s, categoryID)
}

// Upload sends files in order as "images" parts of one multipart request,
// plus category_id when categoryID is non-empty. Pass a one-element slice
// for a single file.
func (is *ImageService) Upload(ctx context.Context, files []File, categoryID ID) (*UploadResponse, error) {
	return api.UploadImages(ctx, is.s, files, categoryID)
}
