package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/hyw-webpics/webpics/client/internal/errors"
	"github.com/hyw-webpics/webpics/client/internal/types"
)

func TestListApprovedImages_QueryWithoutCategory(t *testing.T) {
	t.Parallel()
	s := &recordingSender{response: types.ImagePage{Total: 0, Page: 1, Limit: 20}}
	if _, err := ListApprovedImages(context.Background(), s, 0, 0, ""); err != nil {
		t.Fatalf("ListApprovedImages error: %v", err)
	}
	req := s.last()
	if req.Method != http.MethodGet || req.Path != "/images" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.Query) != 2 || req.Query.Get("page") != "1" || req.Query.Get("limit") != "20" {
		t.Fatalf("expected exactly page=1&limit=20, got %v", req.Query)
	}
	if _, ok := req.Query["category_id"]; ok {
		t.Fatalf("category_id must be omitted, got %v", req.Query)
	}
}

func TestListApprovedImages_QueryWithCategory(t *testing.T) {
	t.Parallel()
	s := &recordingSender{}
	if _, err := ListApprovedImages(context.Background(), s, 3, 10, "cat1"); err != nil {
		t.Fatalf("ListApprovedImages error: %v", err)
	}
	q := s.last().Query
	if len(q) != 3 || q.Get("page") != "3" || q.Get("limit") != "10" {
		t.Fatalf("unexpected query %v", q)
	}
	if vals := q["category_id"]; len(vals) != 1 || vals[0] != "cat1" {
		t.Fatalf("expected one category_id=cat1, got %v", vals)
	}
}

func TestRandomImage_CategoryOmission(t *testing.T) {
	t.Parallel()
	s := &recordingSender{response: map[string]any{"id": 9, "filename": "x.webp", "status": "approved"}}
	got, err := RandomImage(context.Background(), s, "")
	if err != nil || got.ID != "9" {
		t.Fatalf("RandomImage unexpected: got=%+v err=%v", got, err)
	}
	if req := s.last(); req.Path != "/images/random" || len(req.Query) != 0 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if _, err := RandomImage(context.Background(), s, "5"); err != nil {
		t.Fatalf("RandomImage error: %v", err)
	}
	if q := s.last().Query; len(q) != 1 || q.Get("category_id") != "5" {
		t.Fatalf("unexpected query %v", q)
	}
}

func TestUploadImages_PartsInOrder(t *testing.T) {
	t.Parallel()
	s := &recordingSender{response: types.UploadResponse{Message: "ok", Image: types.UploadedImage{ID: "1"}}}
	files := []types.File{
		{Name: "a.png", Reader: strings.NewReader("A")},
		{Name: "b.jpg", Reader: strings.NewReader("B")},
	}
	if _, err := UploadImages(context.Background(), s, files, "cat1"); err != nil {
		t.Fatalf("UploadImages error: %v", err)
	}
	req := s.last()
	if req.Method != http.MethodPost || req.Path != "/images/upload" || !req.Multipart() {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.FileField != UploadField || len(req.Files) != 2 || req.Files[0].Name != "a.png" || req.Files[1].Name != "b.jpg" {
		t.Fatalf("unexpected files: %+v", req.Files)
	}
	if len(req.Fields) != 1 || req.Fields[0] != (Field{Name: "category_id", Value: "cat1"}) {
		t.Fatalf("unexpected fields: %+v", req.Fields)
	}

	if _, err := UploadImages(context.Background(), s, files[:1], ""); err != nil {
		t.Fatalf("UploadImages error: %v", err)
	}
	if req := s.last(); len(req.Files) != 1 || len(req.Fields) != 0 {
		t.Fatalf("expected a single part without category, got %+v", req)
	}
}

func TestUploadImages_EncodingFailure(t *testing.T) {
	t.Parallel()
	s := &recordingSender{}
	_, err := UploadImages(context.Background(), s, []types.File{{Name: "a.png"}}, "")
	if !errors.IsKind(err, errors.KindEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
	if _, err := UploadImages(context.Background(), s, nil, ""); !errors.IsKind(err, errors.KindEncoding) {
		t.Fatalf("expected encoding error for empty upload, got %v", err)
	}
	if len(s.calls) != 0 {
		t.Fatalf("invalid uploads must not be sent, got %d calls", len(s.calls))
	}
}
