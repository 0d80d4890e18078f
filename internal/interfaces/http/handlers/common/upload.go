package common

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const (
	FileField  = "file"
	FilesField = "files"
)

// ReadUpload buffers the single file sent under field. Files larger than
// maxBytes are rejected without reading them whole.
func ReadUpload(c *gin.Context, field string, maxBytes int64) (intake.UploadedFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return intake.UploadedFile{}, formError(err, field)
	}
	return readFileHeader(fh, maxBytes)
}

// ReadUploads buffers every file sent under field, in form order.
func ReadUploads(c *gin.Context, field string, maxBytes int64) ([]intake.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, formError(err, field)
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("at least one file is required in field %q", field))
	}

	files := make([]intake.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readFileHeader(fh, maxBytes)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readFileHeader(fh *multipart.FileHeader, maxBytes int64) (intake.UploadedFile, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return intake.UploadedFile{}, errors.NewPayloadTooLargeError(
			fmt.Sprintf("file %s exceeds the %d MB limit", fh.Filename, maxBytes>>20),
		)
	}

	src, err := fh.Open()
	if err != nil {
		return intake.UploadedFile{}, errors.NewBadRequestError("failed to read uploaded file", err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return intake.UploadedFile{}, errors.NewBadRequestError("failed to read uploaded file", err.Error())
	}

	return intake.UploadedFile{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func formError(err error, field string) error {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return errors.NewPayloadTooLargeError("request body is too large")
	}
	if stderrors.Is(err, http.ErrMissingFile) {
		return errors.NewValidationError(fmt.Sprintf("file is required in field %q", field))
	}
	return errors.NewBadRequestError("invalid multipart form", err.Error())
}
