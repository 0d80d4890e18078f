package document

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// Document is an uploaded file and the result of its strategic analysis.
type Document struct {
	id              uint
	sid             string
	tenantCNPJ      string
	caseSID         *string
	fileName        string
	fileURL         string
	storageKey      string
	format          vo.Format
	sizeBytes       int64
	pageCount       int
	documentType    vo.DocumentType
	extractedText   string
	context         *ExtractedContext
	analysisRaw     string
	suggestedFiling string
	status          vo.ProcessingStatus
	filingSID       *string
	uploadedBy      string
	createdAt       time.Time
	updatedAt       time.Time
}

type DocumentState struct {
	ID              uint
	SID             string
	TenantCNPJ      string
	CaseSID         *string
	FileName        string
	FileURL         string
	StorageKey      string
	Format          vo.Format
	SizeBytes       int64
	PageCount       int
	DocumentType    vo.DocumentType
	ExtractedText   string
	Context         *ExtractedContext
	AnalysisRaw     string
	SuggestedFiling string
	Status          vo.ProcessingStatus
	FilingSID       *string
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UploadParams struct {
	TenantCNPJ string
	CaseSID    *string
	FileName   string
	FileURL    string
	StorageKey string
	SizeBytes  int64
	UploadedBy string
}

// NewDocument creates the row written right after a successful upload, in
// processing state and typed "outros" until analysed.
func NewDocument(p UploadParams) (*Document, error) {
	if p.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	if strings.TrimSpace(p.FileName) == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if p.FileURL == "" {
		return nil, fmt.Errorf("file URL is required")
	}
	if p.SizeBytes < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}

	sid, err := id.NewDocumentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document ID: %w", err)
	}

	now := time.Now().UTC()
	return &Document{
		sid:          sid,
		tenantCNPJ:   p.TenantCNPJ,
		caseSID:      p.CaseSID,
		fileName:     p.FileName,
		fileURL:      p.FileURL,
		storageKey:   p.StorageKey,
		format:       vo.FormatFromFileName(p.FileName),
		sizeBytes:    p.SizeBytes,
		pageCount:    1,
		documentType: vo.DocumentTypeOther,
		status:       vo.ProcessingStatusProcessing,
		uploadedBy:   p.UploadedBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructDocument(s DocumentState) (*Document, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if s.SID == "" {
		return nil, fmt.Errorf("document SID is required")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid processing status: %s", s.Status)
	}
	return &Document{
		id:              s.ID,
		sid:             s.SID,
		tenantCNPJ:      s.TenantCNPJ,
		caseSID:         s.CaseSID,
		fileName:        s.FileName,
		fileURL:         s.FileURL,
		storageKey:      s.StorageKey,
		format:          s.Format,
		sizeBytes:       s.SizeBytes,
		pageCount:       s.PageCount,
		documentType:    s.DocumentType,
		extractedText:   s.ExtractedText,
		context:         s.Context,
		analysisRaw:     s.AnalysisRaw,
		suggestedFiling: s.SuggestedFiling,
		status:          s.Status,
		filingSID:       s.FilingSID,
		uploadedBy:      s.UploadedBy,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}, nil
}

func (d *Document) ID() uint { return d.id }
func (d *Document) SID() string { return d.sid }
func (d *Document) TenantCNPJ() string { return d.tenantCNPJ }
func (d *Document) CaseSID() *string { return d.caseSID }
func (d *Document) FileName() string { return d.fileName }
func (d *Document) FileURL() string { return d.fileURL }
func (d *Document) StorageKey() string { return d.storageKey }
func (d *Document) Format() vo.Format { return d.format }
func (d *Document) SizeBytes() int64 { return d.sizeBytes }
func (d *Document) PageCount() int { return d.pageCount }
func (d *Document) DocumentType() vo.DocumentType { return d.documentType }
func (d *Document) ExtractedText() string { return d.extractedText }
func (d *Document) Context() *ExtractedContext { return d.context }
func (d *Document) AnalysisRaw() string { return d.analysisRaw }
func (d *Document) SuggestedFiling() string { return d.suggestedFiling }
func (d *Document) Status() vo.ProcessingStatus { return d.status }
func (d *Document) FilingSID() *string { return d.filingSID }
func (d *Document) UploadedBy() string { return d.uploadedBy }
func (d *Document) CreatedAt() time.Time { return d.createdAt }
func (d *Document) UpdatedAt() time.Time { return d.updatedAt }

func (d *Document) SetID(id uint) {
	d.id = id
}

// Analysis returns the stored analysis, if the document was analysed.
func (d *Document) Analysis() (Analysis, bool) {
	if d.context == nil {
		return Analysis{}, false
	}
	return d.context.Analysis, true
}

func (d *Document) HasFiling() bool {
	return d.filingSID != nil && *d.filingSID != ""
}

// RecordAnalysis stores the analysis outcome and completes processing. When
// degraded is true the observations are prefixed with DegradedExtractionNote.
func (d *Document) RecordAnalysis(text string, analysis Analysis, analyzedBy, modelUsed string, degraded bool) error {
	if degraded && !strings.HasPrefix(analysis.Observations, DegradedExtractionNote) {
		analysis.Observations = strings.TrimSpace(DegradedExtractionNote + " " + analysis.Observations)
	}
	if analysis.MissingDocuments == nil {
		analysis.MissingDocuments = []string{}
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to serialize analysis: %w", err)
	}

	d.extractedText = text
	d.context = &ExtractedContext{
		Analysis:   analysis,
		AnalyzedBy: analyzedBy,
		ModelUsed:  modelUsed,
	}
	d.analysisRaw = string(raw)
	d.documentType = vo.ParseDocumentType(analysis.DocumentType)
	d.suggestedFiling = analysis.SuggestedFiling
	d.status = vo.ProcessingStatusCompleted
	d.touch()
	return nil
}

func (d *Document) MarkFailed() {
	d.status = vo.ProcessingStatusError
	d.touch()
}

// AttachFiling records the generated filing and the computed response
// deadline. A document references at most one filing.
func (d *Document) AttachFiling(filingSID string, deadline time.Time) error {
	if filingSID == "" {
		return fmt.Errorf("filing SID is required")
	}
	if d.HasFiling() {
		return fmt.Errorf("document already references filing %s", *d.filingSID)
	}
	if d.context == nil {
		return fmt.Errorf("document has not been analysed")
	}
	d.filingSID = &filingSID
	d.context.ResponseDeadline = biztime.ToBizTimezone(deadline).Format("2006-01-02")
	d.touch()
	return nil
}

func (d *Document) DetachFiling() {
	d.filingSID = nil
	d.touch()
}

func (d *Document) LinkCase(caseSID string) {
	d.caseSID = &caseSID
	d.touch()
}

func (d *Document) DetachCase() {
	d.caseSID = nil
	d.touch()
}

func (d *Document) touch() {
	d.updatedAt = time.Now().UTC()
}
