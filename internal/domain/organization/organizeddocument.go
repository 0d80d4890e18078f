package organization

import (
	"fmt"
	"strings"
	"time"

	docvo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

const (
	DefaultFolder    = "Documentos/Gerais"
	DefaultAgentName = "IA Documentista"
)

type Parties struct {
	Plaintiff     string `json:"autor"`
	Defendant     string `json:"reu"`
	ProcessNumber string `json:"numero_processo"`
}

// Classification is the structured answer of the organizing model.
type Classification struct {
	DocumentType       string   `json:"tipo_documento"`
	Sector             string   `json:"setor_destino"`
	PagesReordered     bool     `json:"paginas_reordenadas"`
	SeparatedDocuments []string `json:"documentos_separados"`
	Observations       string   `json:"observacoes"`
	Parties            Parties  `json:"partes_identificadas"`
	Keywords           []string `json:"palavras_chave"`
	SuggestedName      string   `json:"nome_sugerido"`
	SuggestedFolder    string   `json:"caminho_pasta_sugerido"`
}

// AIMetadata is kept verbatim for later model training.
type AIMetadata struct {
	PagesReordered     bool     `json:"paginas_reordenadas"`
	SeparatedDocuments []string `json:"documentos_separados"`
	Keywords           []string `json:"palavras_chave"`
	Parties            Parties  `json:"partes_identificadas"`
}

// OrganizedDocument is one file sorted into the department taxonomy.
type OrganizedDocument struct {
	id                 uint
	sid                string
	tenantCNPJ         string
	batchID            string
	originalName       string
	originalURL        string
	organizedURL       string
	storageKey         string
	documentType       docvo.DocumentType
	sector             vo.Sector
	status             vo.OrganizationStatus
	pageCount          int
	pagesReordered     bool
	separatedDocuments []string
	parties            Parties
	keywords           []string
	suggestedName      string
	suggestedFolder    string
	observations       string
	responsibleAgent   string
	processingSeconds  float64
	aiMetadata         AIMetadata
	createdAt          time.Time
	updatedAt          time.Time
}

type OrganizedDocumentState struct {
	ID                 uint
	SID                string
	TenantCNPJ         string
	BatchID            string
	OriginalName       string
	OriginalURL        string
	OrganizedURL       string
	StorageKey         string
	DocumentType       docvo.DocumentType
	Sector             vo.Sector
	Status             vo.OrganizationStatus
	PageCount          int
	PagesReordered     bool
	SeparatedDocuments []string
	Parties            Parties
	Keywords           []string
	SuggestedName      string
	SuggestedFolder    string
	Observations       string
	ResponsibleAgent   string
	ProcessingSeconds  float64
	AIMetadata         AIMetadata
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type IntakeParams struct {
	TenantCNPJ       string
	BatchID          string
	FileName         string
	FileURL          string
	StorageKey       string
	ResponsibleAgent string
}

func NewOrganizedDocument(p IntakeParams) (*OrganizedDocument, error) {
	if p.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	if strings.TrimSpace(p.FileName) == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if p.FileURL == "" {
		return nil, fmt.Errorf("file URL is required")
	}
	if p.ResponsibleAgent == "" {
		p.ResponsibleAgent = DefaultAgentName
	}

	sid, err := id.NewOrganizedDocumentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organized document ID: %w", err)
	}

	now := time.Now().UTC()
	return &OrganizedDocument{
		sid:                sid,
		tenantCNPJ:         p.TenantCNPJ,
		batchID:            p.BatchID,
		originalName:       p.FileName,
		originalURL:        p.FileURL,
		organizedURL:       p.FileURL,
		storageKey:         p.StorageKey,
		documentType:       docvo.DocumentTypeOther,
		sector:             vo.SectorLegal,
		status:             vo.OrganizationStatusProcessing,
		pageCount:          1,
		separatedDocuments: []string{},
		keywords:           []string{},
		suggestedName:      p.FileName,
		suggestedFolder:    DefaultFolder,
		responsibleAgent:   p.ResponsibleAgent,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructOrganizedDocument(s OrganizedDocumentState) (*OrganizedDocument, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("organized document ID cannot be zero")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid organization status: %s", s.Status)
	}
	if s.SeparatedDocuments == nil {
		s.SeparatedDocuments = []string{}
	}
	if s.Keywords == nil {
		s.Keywords = []string{}
	}
	return &OrganizedDocument{
		id:                 s.ID,
		sid:                s.SID,
		tenantCNPJ:         s.TenantCNPJ,
		batchID:            s.BatchID,
		originalName:       s.OriginalName,
		originalURL:        s.OriginalURL,
		organizedURL:       s.OrganizedURL,
		storageKey:         s.StorageKey,
		documentType:       s.DocumentType,
		sector:             s.Sector,
		status:             s.Status,
		pageCount:          s.PageCount,
		pagesReordered:     s.PagesReordered,
		separatedDocuments: s.SeparatedDocuments,
		parties:            s.Parties,
		keywords:           s.Keywords,
		suggestedName:      s.SuggestedName,
		suggestedFolder:    s.SuggestedFolder,
		observations:       s.Observations,
		responsibleAgent:   s.ResponsibleAgent,
		processingSeconds:  s.ProcessingSeconds,
		aiMetadata:         s.AIMetadata,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}, nil
}

func (d *OrganizedDocument) ID() uint { return d.id }
func (d *OrganizedDocument) SID() string { return d.sid }
func (d *OrganizedDocument) TenantCNPJ() string { return d.tenantCNPJ }
func (d *OrganizedDocument) BatchID() string { return d.batchID }
func (d *OrganizedDocument) OriginalName() string { return d.originalName }
func (d *OrganizedDocument) OriginalURL() string { return d.originalURL }
func (d *OrganizedDocument) OrganizedURL() string { return d.organizedURL }
func (d *OrganizedDocument) StorageKey() string { return d.storageKey }
func (d *OrganizedDocument) DocumentType() docvo.DocumentType { return d.documentType }
func (d *OrganizedDocument) Sector() vo.Sector { return d.sector }
func (d *OrganizedDocument) Status() vo.OrganizationStatus { return d.status }
func (d *OrganizedDocument) PageCount() int { return d.pageCount }
func (d *OrganizedDocument) PagesReordered() bool { return d.pagesReordered }
func (d *OrganizedDocument) SeparatedDocuments() []string { return d.separatedDocuments }
func (d *OrganizedDocument) Parties() Parties { return d.parties }
func (d *OrganizedDocument) Keywords() []string { return d.keywords }
func (d *OrganizedDocument) SuggestedName() string { return d.suggestedName }
func (d *OrganizedDocument) SuggestedFolder() string { return d.suggestedFolder }
func (d *OrganizedDocument) Observations() string { return d.observations }
func (d *OrganizedDocument) ResponsibleAgent() string { return d.responsibleAgent }
func (d *OrganizedDocument) ProcessingSeconds() float64 { return d.processingSeconds }
func (d *OrganizedDocument) AIMetadata() AIMetadata { return d.aiMetadata }
func (d *OrganizedDocument) CreatedAt() time.Time { return d.createdAt }
func (d *OrganizedDocument) UpdatedAt() time.Time { return d.updatedAt }

func (d *OrganizedDocument) SetID(id uint) {
	d.id = id
}

// Organize applies the classification. Unknown types and sectors fall back
// to "outros" and "juridico"; missing names and folders keep their defaults.
func (d *OrganizedDocument) Organize(c Classification, pageCount int, elapsed time.Duration) {
	if pageCount <= 0 {
		pageCount = 1
	}
	if c.SeparatedDocuments == nil {
		c.SeparatedDocuments = []string{}
	}
	if c.Keywords == nil {
		c.Keywords = []string{}
	}

	d.documentType = docvo.ParseDocumentType(c.DocumentType)
	d.sector = vo.ParseSector(c.Sector)
	d.pageCount = pageCount
	d.pagesReordered = c.PagesReordered
	d.separatedDocuments = c.SeparatedDocuments
	d.parties = c.Parties
	d.keywords = c.Keywords
	d.observations = c.Observations
	if name := strings.TrimSpace(c.SuggestedName); name != "" {
		d.suggestedName = textutil.SafeFileName(name)
	}
	if folder := textutil.SafeFolderPath(c.SuggestedFolder); folder != "" {
		d.suggestedFolder = folder
	}
	d.aiMetadata = AIMetadata{
		PagesReordered:     c.PagesReordered,
		SeparatedDocuments: c.SeparatedDocuments,
		Keywords:           c.Keywords,
		Parties:            c.Parties,
	}
	d.processingSeconds = elapsed.Seconds()
	d.status = vo.OrganizationStatusOrganized
	d.touch()
}

// ExtractedDocumentCount is how many documents the file was split into.
func (d *OrganizedDocument) ExtractedDocumentCount() int {
	if n := len(d.separatedDocuments); n > 0 {
		return n
	}
	return 1
}

func (d *OrganizedDocument) MarkFailed(reason string) {
	d.status = vo.OrganizationStatusError
	d.observations = reason
	d.touch()
}

func (d *OrganizedDocument) touch() {
	d.updatedAt = time.Now().UTC()
}
