package client

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	Field       string
	FileName    string
	ContentType string
	Content     string
}

// multipartRecorder reads the upload body part by part so order is preserved.
type multipartRecorder struct {
	mu          sync.Mutex
	contentType string
	parts       []part
	err         error
}

func (m *multipartRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contentType = r.Header.Get("Content-Type")
	m.parts = nil
	mr, err := r.MultipartReader()
	if err != nil {
		m.err = err
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			m.err = err
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b, _ := io.ReadAll(p)
		m.parts = append(m.parts, part{Field: p.FormName(), FileName: p.FileName(), ContentType: p.Header.Get("Content-Type"), Content: string(b)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, `{"message":"Image uploaded successfully, pending review","image":{"id":11,"filename":"x.webp"}}`)
}

func (m *multipartRecorder) snapshot() (string, []part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contentType, append([]part(nil), m.parts...), m.err
}

func filesOfType(parts []part, field string) []part {
	var out []part
	for _, p := range parts {
		if p.Field == field {
			out = append(out, p)
		}
	}
	return out
}

func TestUpload_TwoFilesWithCategory(t *testing.T) {
	t.Parallel()
	rec := &multipartRecorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()
	c, err := New(srv.URL+"/api", WithTokenProvider(StaticToken("tok")))
	require.NoError(t, err)

	resp, err := c.Images.Upload(context.Background(), []File{
		{Name: "fileA.png", Reader: strings.NewReader("AAAA")},
		{Name: "fileB.gif", Reader: strings.NewReader("BBBB")},
	}, "cat1")
	require.NoError(t, err)
	assert.Equal(t, ID("11"), resp.Image.ID)

	ct, parts, rerr := rec.snapshot()
	require.NoError(t, rerr)
	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.NotEmpty(t, params["boundary"])

	images := filesOfType(parts, "images")
	require.Len(t, images, 2)
	assert.Equal(t, part{Field: "images", FileName: "fileA.png", ContentType: "image/png", Content: "AAAA"}, images[0])
	assert.Equal(t, part{Field: "images", FileName: "fileB.gif", ContentType: "image/gif", Content: "BBBB"}, images[1])

	cats := filesOfType(parts, "category_id")
	require.Len(t, cats, 1)
	assert.Equal(t, "cat1", cats[0].Content)
	assert.Len(t, parts, 3)
}

func TestUpload_SingleFileNoCategory(t *testing.T) {
	t.Parallel()
	rec := &multipartRecorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()
	c, err := New(srv.URL + "/api")
	require.NoError(t, err)

	_, err = c.Images.Upload(context.Background(), []File{{Name: "only.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("J")}}, "")
	require.NoError(t, err)

	_, parts, rerr := rec.snapshot()
	require.NoError(t, rerr)
	require.Len(t, parts, 1)
	assert.Equal(t, "images", parts[0].Field)
	assert.Equal(t, "image/jpeg", parts[0].ContentType)
	assert.Empty(t, filesOfType(parts, "category_id"))
}

func TestUpload_EncodingFailureNeverSent(t *testing.T) {
	t.Parallel()
	c, stub := newStub(t)
	_, err := c.Images.Upload(context.Background(), []File{{Name: "a.png"}}, "cat1")
	require.Error(t, err)
	assert.True(t, IsEncoding(err))
	assert.Contains(t, err.Error(), "POST /images/upload")

	_, err = c.Images.Upload(context.Background(), nil, "")
	assert.True(t, IsEncoding(err))
	assert.Zero(t, stub.count())
}
