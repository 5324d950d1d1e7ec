package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
)

// MaxReceiptBytes is the largest receipt image accepted.
const MaxReceiptBytes = 10 << 20

// ReceiptPathPrefix is the URL prefix under which stored receipts are served.
const ReceiptPathPrefix = "/uploads/receipts/"

// receiptExtensions maps each accepted media type to the stored file extension.
var receiptExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// ReceiptStore persists receipt bytes under a generated name.
type ReceiptStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
}

// ReceiptUpload is one file taken from a multipart request.
// ContentType is the media type declared by the client.
type ReceiptUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// ReceiptService validates receipt uploads and hands them to a ReceiptStore.
type ReceiptService struct {
	store ReceiptStore
	now   func() time.Time
}

// NewReceiptService constructs a ReceiptService writing to store.
func NewReceiptService(store ReceiptStore) *ReceiptService {
	return &ReceiptService{store: store, now: time.Now}
}

// Upload validates up and stores it, returning the public path of the file.
// A nil upload means the request carried no file.
func (s *ReceiptService) Upload(ctx context.Context, up *ReceiptUpload) (string, error) {
	if up == nil || up.Body == nil {
		return "", domain.Invalid("No file provided")
	}
	ext, ok := receiptExtension(up.ContentType)
	if !ok {
		return "", domain.Invalid("Invalid file type. Allowed types: jpeg, png, webp, heic")
	}
	if up.Size > MaxReceiptBytes {
		return "", domain.Invalid("File too large. Maximum size is 10 MB")
	}

	name := receiptName(s.now(), ext)
	if err := s.store.Save(ctx, name, io.LimitReader(up.Body, MaxReceiptBytes)); err != nil {
		return "", fmt.Errorf("service.ReceiptService.Upload: %w", err)
	}
	return ReceiptPathPrefix + name, nil
}

func receiptExtension(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	ext, ok := receiptExtensions[strings.ToLower(mediaType)]
	return ext, ok
}

// receiptName builds "<unix-millis>-<12 hex chars><ext>".
func receiptName(now time.Time, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext)
}
