// Package pdf lays out filings as A4 documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
)

const (
	fontFamily   = "Times"
	bodySize     = 12.0
	headingSize  = 14.0
	lineHeight   = 6.5
	marginMM     = 25.0
	footerSizeMM = 15.0
)

type FilingExporter struct{}

var _ services.FilingExporter = (*FilingExporter)(nil)

func NewFilingExporter() *FilingExporter {
	return &FilingExporter{}
}

// ExportPDF renders the filing body. Markdown headings become bold lines and
// emphasis markers are dropped.
func (e *FilingExporter) ExportPDF(ctx context.Context, f services.PrintableFiling) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(f.Body) == "" {
		return nil, fmt.Errorf("filing has no content")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.SetTitle(f.Title, true)
	pdf.SetCreator("LexDoc AI", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerSizeMM)
		pdf.SetFont(fontFamily, "I", 8)
		footer := fmt.Sprintf("%s  |  página %d", f.OfficeName, pdf.PageNo())
		pdf.CellFormat(0, 10, tr(strings.TrimLeft(footer, " |")), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", headingSize)
	pdf.MultiCell(0, lineHeight+1, tr(strings.ToUpper(f.Heading)), "", "C", false)
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 10)
	if f.ProcessNumber != "" {
		pdf.CellFormat(0, 5, tr("Processo: "+f.ProcessNumber), "", 1, "L", false, 0, "")
	}
	if f.LegalDeadline != nil {
		pdf.CellFormat(0, 5, tr("Prazo legal: "+biztime.FormatDate(*f.LegalDeadline)), "", 1, "L", false, 0, "")
	}
	generated := f.GeneratedAt
	if generated.IsZero() {
		generated = biztime.NowUTC()
	}
	pdf.CellFormat(0, 5, tr("Emitido em "+biztime.FormatLongDate(generated)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, line := range strings.Split(f.Body, "\n") {
		text, bold := markdownLine(line)
		if text == "" {
			pdf.Ln(lineHeight / 2)
			continue
		}
		if bold {
			pdf.SetFont(fontFamily, "B", bodySize)
			pdf.Ln(1)
		} else {
			pdf.SetFont(fontFamily, "", bodySize)
		}
		pdf.MultiCell(0, lineHeight, tr(text), "", "J", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func markdownLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	bold := false
	if strings.HasPrefix(line, "#") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		bold = true
	}
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
		bold = true
	}
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		line = "• " + line[2:]
	}
	return line, bold
}
