package intake

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

const (
	defaultMaxUploadMB = 10
	bytesPerMB         = 1 << 20
)

var defaultExtensions = []string{"pdf", "doc", "docx", "jpg", "jpeg", "png"}

// UploadedFile is a buffered multipart file.
type UploadedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// UploadPolicy enforces the extension and size limits on the server.
type UploadPolicy struct {
	maxBytes   int64
	extensions map[string]bool
}

func NewUploadPolicy(cfg config.WorkflowConfig) *UploadPolicy {
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		maxMB = defaultMaxUploadMB
	}
	exts := cfg.AllowedExtensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")] = true
	}
	return &UploadPolicy{maxBytes: int64(maxMB) * bytesPerMB, extensions: allowed}
}

func (p *UploadPolicy) MaxBytes() int64 {
	return p.maxBytes
}

// Validate checks f and returns the content type to store, sniffed from the
// first bytes when the client sent none or a generic one.
func (p *UploadPolicy) Validate(f UploadedFile) (string, error) {
	if strings.TrimSpace(f.FileName) == "" {
		return "", errors.NewValidationError("file name is required")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(f.FileName)), ".")
	if !p.extensions[ext] {
		return "", errors.NewValidationError(
			fmt.Sprintf("file type .%s is not allowed", ext),
			"allowed: "+strings.Join(p.allowedList(), ", "),
		)
	}
	size := f.Size
	if size == 0 {
		size = int64(len(f.Data))
	}
	if size == 0 {
		return "", errors.NewValidationError("file is empty")
	}
	if size > p.maxBytes {
		return "", errors.NewPayloadTooLargeError(
			fmt.Sprintf("file exceeds the %d MB limit", p.maxBytes/bytesPerMB),
		)
	}

	contentType := f.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(f.Data)
	}
	return contentType, nil
}

func (p *UploadPolicy) allowedList() []string {
	out := make([]string, 0, len(p.extensions))
	for _, e := range defaultExtensions {
		if p.extensions[e] {
			out = append(out, e)
		}
	}
	for e := range p.extensions {
		if !contains(defaultExtensions, e) {
			out = append(out, e)
		}
	}
	return out
}

// StorageKey places an upload under the tenant prefix with a random
// component so equal file names never collide.
func StorageKey(area, tenantCNPJ, fileName string) string {
	return fmt.Sprintf("%s/%s/%s-%s", area, tenantCNPJ, uuid.NewString(), textutil.SafeFileName(fileName))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
