package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trips/internal/handler"
	"github.com/pkordes/family-trips/internal/service"
	"github.com/pkordes/family-trips/internal/storage/receipts"
)

// newUploadStack wires the real receipt service and file store under dir,
// serving stored files the way main.go does.
func newUploadStack(dir string) http.Handler {
	return handler.NewServer(handler.Services{
		Receipts: service.NewReceiptService(receipts.NewStore(dir)),
	}, handler.Options{
		Logger:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
		MaxJSONBytes:   1 << 20,
		MaxUploadBytes: 25 << 20,
		UploadDir:      dir,
	}).Routes()
}

// multipartRequest builds a POST /uploads/receipt with one file part.
// An empty field name produces a form with no file.
func multipartRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="receipt"`, field))
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/receipt", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadReceipt_201_StoresAndServes(t *testing.T) {
	dir := t.TempDir()
	h := newUploadStack(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, multipartRequest(t, "file", "image/jpeg", []byte("fake jpeg")))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got struct {
		Path string `json:"path"`
	}
	dataInto(t, rec, &got)
	assert.Regexp(t, `^/uploads/receipts/\d+-[0-9a-f]{12}\.jpg$`, got.Path)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, got.Path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fake jpeg", rec.Body.String())
}

func TestUploadReceipt_400_TooLarge(t *testing.T) {
	h := newUploadStack(t.TempDir())
	content := bytes.Repeat([]byte{0xff}, 15*1024*1024)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, multipartRequest(t, "file", "image/png", content))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File too large. Maximum size is 10 MB", errorMessage(t, rec))
}

func TestUploadReceipt_400_WrongType(t *testing.T) {
	h := newUploadStack(t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, multipartRequest(t, "file", "application/pdf", []byte("%PDF")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid file type. Allowed types: jpeg, png, webp, heic", errorMessage(t, rec))
}

func TestUploadReceipt_400_NoFile(t *testing.T) {
	h := newUploadStack(t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, multipartRequest(t, "", "", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided", errorMessage(t, rec))
}

func TestUploadReceipt_500_NotMultipart(t *testing.T) {
	h := newUploadStack(t.TempDir())

	rec := do(t, h, http.MethodPost, "/uploads/receipt", `{"file":"x"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to upload receipt", errorMessage(t, rec))
}

func TestUploadReceipt_500_StoreFailure(t *testing.T) {
	h := newHTTPHandler(handler.Services{Receipts: &mockReceiptServicer{
		upload: func(_ context.Context, up *service.ReceiptUpload) (string, error) {
			require.NotNil(t, up)
			assert.Equal(t, "image/webp", up.ContentType)
			return "", errors.New("disk full")
		},
	}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, multipartRequest(t, "file", "image/webp", []byte("RIFF")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to upload receipt", errorMessage(t, rec))
}

func TestUploadReceipt_400_DeclaredLengthOverTransportCap(t *testing.T) {
	h := newUploadStack(t.TempDir())
	content := bytes.Repeat([]byte{0xff}, 30*1024*1024)

	for _, chunked := range []bool{false, true} {
		req := multipartRequest(t, "file", "image/png", content)
		if chunked {
			req.ContentLength = -1
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "chunked=%v", chunked)
		assert.Equal(t, "File too large. Maximum size is 10 MB", errorMessage(t, rec), "chunked=%v", chunked)
	}
}

func TestReceiptFiles_DirectoriesAreNotListed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1700000000000-abcdef012345.jpg"), []byte("jpeg"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	h := newUploadStack(dir)

	for _, target := range []string{"/uploads/receipts/", "/uploads/receipts/nested/"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.NotContains(t, rec.Body.String(), "1700000000000-abcdef012345.jpg", target)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/receipts/1700000000000-abcdef012345.jpg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())
}
