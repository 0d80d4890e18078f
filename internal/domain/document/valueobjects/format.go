package valueobjects

import (
	"path/filepath"
	"strings"
)

// Format is the normalized file format of an uploaded document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOC  Format = "doc"
	FormatDOCX Format = "docx"
	FormatJPG  Format = "jpg"
	FormatPNG  Format = "png"
)

var formats = []Format{FormatPDF, FormatDOC, FormatDOCX, FormatJPG, FormatPNG}

func Formats() []Format {
	return append([]Format(nil), formats...)
}

func (f Format) String() string {
	return string(f)
}

func (f Format) IsValid() bool {
	switch f {
	case FormatPDF, FormatDOC, FormatDOCX, FormatJPG, FormatPNG:
		return true
	}
	return false
}

func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatDOC:
		return "DOC"
	case FormatDOCX:
		return "DOCX"
	case FormatJPG:
		return "JPG"
	case FormatPNG:
		return "PNG"
	default:
		return "Arquivo"
	}
}

// IsImage reports whether the extractor receives a picture rather than a document.
func (f Format) IsImage() bool {
	return f == FormatJPG || f == FormatPNG
}

// FormatFromFileName derives the format from the extension; jpeg folds into
// jpg and unknown extensions fall back to pdf.
func FormatFromFileName(name string) Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "docx":
		return FormatDOCX
	case "doc":
		return FormatDOC
	case "jpg", "jpeg":
		return FormatJPG
	case "png":
		return FormatPNG
	default:
		return FormatPDF
	}
}

// MIMEType returns the content type the extractor expects for the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatDOC:
		return "application/msword"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatJPG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return "application/pdf"
	}
}
