package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/family-trips/internal/service"
)

const msgFileTooLarge = "File too large. Maximum size is 10 MB"

// multipartMemory is how much of a multipart body is buffered in memory;
// the remainder spills to temporary files.
const multipartMemory = 1 << 20

type uploadBody struct {
	Path string `json:"path"`
}

// UploadReceipt handles POST /uploads/receipt with a multipart "file" field.
func (s *Server) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to upload receipt"

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, msgFileTooLarge)
			return
		}
		s.fail(w, r, err, failed)
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var up *service.ReceiptUpload
	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// up stays nil; the service reports the missing file.
	case err != nil:
		s.fail(w, r, err, failed)
		return
	default:
		defer file.Close()
		up = &service.ReceiptUpload{
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	}

	path, err := s.svc.Receipts.Upload(r.Context(), up)
	if err != nil {
		s.fail(w, r, err, failed)
		return
	}
	writeData(w, http.StatusCreated, uploadBody{Path: path})
}
