package intake

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	apperrors "github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

func TestUploadPolicy_Validate(t *testing.T) {
	policy := NewUploadPolicy(config.WorkflowConfig{MaxUploadMB: 1})
	pdf := []byte("%PDF-1.7\n")

	tests := []struct {
		name     string
		file     UploadedFile
		wantType string
		wantErr  func(error) bool
	}{
		{
			name:     "pdf with declared type",
			file:     UploadedFile{FileName: "citacao.pdf", ContentType: "application/pdf", Data: pdf},
			wantType: "application/pdf",
		},
		{
			name:     "upper case extension sniffed",
			file:     UploadedFile{FileName: "CITACAO.PDF", ContentType: "application/octet-stream", Data: pdf},
			wantType: "application/pdf",
		},
		{
			name:    "missing name",
			file:    UploadedFile{Data: pdf},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "extension not allowed",
			file:    UploadedFile{FileName: "script.exe", Data: pdf},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "empty file",
			file:    UploadedFile{FileName: "vazio.pdf"},
			wantErr: apperrors.IsValidationError,
		},
		{
			name: "over the limit",
			file: UploadedFile{FileName: "grande.pdf", Data: bytes.Repeat([]byte("a"), 1<<20+1)},
			wantErr: func(err error) bool {
				appErr := apperrors.GetAppError(err)
				return appErr != nil && appErr.Code == 413
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := policy.Validate(tt.file)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, ct)
		})
	}
}

func TestUploadPolicy_Defaults(t *testing.T) {
	policy := NewUploadPolicy(config.WorkflowConfig{})
	assert.Equal(t, int64(10<<20), policy.MaxBytes())

	for _, name := range []string{"a.pdf", "a.doc", "a.docx", "a.jpg", "a.jpeg", "a.png"} {
		_, err := policy.Validate(UploadedFile{FileName: name, Data: []byte("x")})
		assert.NoError(t, err, name)
	}
}

func TestUploadPolicy_CustomExtensions(t *testing.T) {
	policy := NewUploadPolicy(config.WorkflowConfig{AllowedExtensions: []string{".TIFF", "pdf"}})

	_, err := policy.Validate(UploadedFile{FileName: "scan.tiff", Data: []byte("x")})
	assert.NoError(t, err)

	_, err = policy.Validate(UploadedFile{FileName: "foto.png", Data: []byte("x")})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "pdf")
}

func TestStorageKey(t *testing.T) {
	a := StorageKey("documentos", testTenant, "Petição Inicial.pdf")
	b := StorageKey("documentos", testTenant, "Petição Inicial.pdf")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "documentos/"+testTenant+"/"))
	assert.True(t, strings.HasSuffix(a, ".pdf"))
	assert.NotContains(t, a, " ")
}
