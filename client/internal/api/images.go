package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hyw-webpics/webpics/client/internal/errors"
	"github.com/hyw-webpics/webpics/client/internal/types"
)

// Pagination defaults applied when the caller passes zero or less.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// UploadField is the multipart field every uploaded file is sent under.
const UploadField = "images"

// ListApprovedImages returns one page of approved images. category_id is
// omitted from the query entirely when categoryID is empty.
func ListApprovedImages(ctx context.Context, s Sender, page, limit int, categoryID types.ID) (*types.ImagePage, error) {
	if err := checkContext(ctx, http.MethodGet, "/images"); err != nil {
		return nil, err
	}
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if categoryID != "" {
		q.Set("category_id", categoryID.String())
	}
	var out types.ImagePage
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/images",
		Query:  q,
		Scope:  ScopePublic,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RandomImage returns one random approved image, optionally within a category.
func RandomImage(ctx context.Context, s Sender, categoryID types.ID) (*types.Image, error) {
	if err := checkContext(ctx, http.MethodGet, "/images/random"); err != nil {
		return nil, err
	}
	var q url.Values
	if categoryID != "" {
		q = url.Values{"category_id": {categoryID.String()}}
	}
	var out types.Image
	err := s.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   "/images/random",
		Query:  q,
		Scope:  ScopePublic,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImages sends files as one multipart request. Each file becomes an
// "images" part in the given order; category_id follows only when set.
// Invalid input fails before any network I/O.
func UploadImages(ctx context.Context, s Sender, files []types.File, categoryID types.ID) (*types.UploadResponse, error) {
	const path = "/images/upload"
	if err := checkContext(ctx, http.MethodPost, path); err != nil {
		return nil, err
	}
	if err := types.ValidateFiles(files); err != nil {
		return nil, errors.NewEncodingError(http.MethodPost, path, err)
	}
	var fields []Field
	if categoryID != "" {
		fields = append(fields, Field{Name: "category_id", Value: categoryID.String()})
	}
	var out types.UploadResponse
	err := s.Send(ctx, Request{
		Method:    http.MethodPost,
		Path:      path,
		Files:     files,
		FileField: UploadField,
		Fields:    fields,
		Scope:     ScopeUser,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
