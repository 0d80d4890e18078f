package tenant

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPrimaryColor   = "#1e3a8a"
	DefaultSecondaryColor = "#d4af37"
	DefaultAIModel        = "padrao"
	DefaultMLAccuracy     = 0.85
)

// Settings are the AI switches of an office.
type Settings struct {
	PreferredAIModel   string   `json:"modelo_ia_preferido"`
	PracticeAreas      []string `json:"areas_atuacao"`
	MLEnabled          bool     `json:"ml_habilitado"`
	AutoClassification bool     `json:"auto_classificacao"`
	AutoOrganization   bool     `json:"auto_organizacao"`
}

// SettingsUpdate carries a partial settings change; nil fields are kept.
type SettingsUpdate struct {
	PreferredAIModel   *string
	PracticeAreas      []string
	MLEnabled          *bool
	AutoClassification *bool
	AutoOrganization   *bool
}

type MLMetrics struct {
	DocumentsProcessed int        `json:"documentos_processados"`
	OverallAccuracy    float64    `json:"acuracia_geral"`
	LastModelUpdate    *time.Time `json:"ultima_atualizacao_modelo,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		PreferredAIModel:   DefaultAIModel,
		PracticeAreas:      []string{},
		MLEnabled:          true,
		AutoClassification: true,
		AutoOrganization:   true,
	}
}

// Tenant is a law office. Every other aggregate is partitioned by its CNPJ.
type Tenant struct {
	id             uint
	cnpj           string
	tradeName      string
	legalName      string
	sigla          string
	customDomain   string
	address        string
	phone          string
	contactEmail   string
	logoURL        string
	primaryColor   string
	secondaryColor string
	settings       Settings
	mlMetrics      MLMetrics
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// TenantState is the persisted form used by ReconstructTenant.
type TenantState struct {
	ID             uint
	CNPJ           string
	TradeName      string
	LegalName      string
	Sigla          string
	CustomDomain   string
	Address        string
	Phone          string
	ContactEmail   string
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
	Settings       Settings
	MLMetrics      MLMetrics
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTenant registers an office with the default branding and AI settings.
func NewTenant(cnpj, companyName, address, phone, contactEmail string) (*Tenant, error) {
	normalized, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, fmt.Errorf("company name is required")
	}

	sigla := DeriveSigla(companyName)
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &Tenant{
		cnpj:           normalized,
		tradeName:      companyName,
		legalName:      companyName,
		sigla:          sigla,
		customDomain:   CustomDomain(sigla),
		address:        address,
		phone:          phone,
		contactEmail:   contactEmail,
		primaryColor:   DefaultPrimaryColor,
		secondaryColor: DefaultSecondaryColor,
		settings:       DefaultSettings(),
		mlMetrics:      MLMetrics{OverallAccuracy: DefaultMLAccuracy, LastModelUpdate: &now},
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTenant(s TenantState) (*Tenant, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if len(s.CNPJ) != 14 {
		return nil, fmt.Errorf("invalid tenant CNPJ: %q", s.CNPJ)
	}
	if s.Settings.PracticeAreas == nil {
		s.Settings.PracticeAreas = []string{}
	}

	return &Tenant{
		id:             s.ID,
		cnpj:           s.CNPJ,
		tradeName:      s.TradeName,
		legalName:      s.LegalName,
		sigla:          s.Sigla,
		customDomain:   s.CustomDomain,
		address:        s.Address,
		phone:          s.Phone,
		contactEmail:   s.ContactEmail,
		logoURL:        s.LogoURL,
		primaryColor:   s.PrimaryColor,
		secondaryColor: s.SecondaryColor,
		settings:       s.Settings,
		mlMetrics:      s.MLMetrics,
		active:         s.Active,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}, nil
}

func (t *Tenant) ID() uint { return t.id }
func (t *Tenant) CNPJ() string { return t.cnpj }
func (t *Tenant) TradeName() string { return t.tradeName }
func (t *Tenant) LegalName() string { return t.legalName }
func (t *Tenant) Sigla() string { return t.sigla }
func (t *Tenant) CustomDomain() string { return t.customDomain }
func (t *Tenant) Address() string { return t.address }
func (t *Tenant) Phone() string { return t.phone }
func (t *Tenant) ContactEmail() string { return t.contactEmail }
func (t *Tenant) LogoURL() string { return t.logoURL }
func (t *Tenant) PrimaryColor() string { return t.primaryColor }
func (t *Tenant) SecondaryColor() string { return t.secondaryColor }
func (t *Tenant) Settings() Settings { return t.settings }
func (t *Tenant) MLMetrics() MLMetrics { return t.mlMetrics }
func (t *Tenant) IsActive() bool { return t.active }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

func (t *Tenant) SetID(id uint) {
	t.id = id
}

// UpdateCompanyData changes registration data. Empty names are rejected.
func (t *Tenant) UpdateCompanyData(tradeName, legalName, address, phone, contactEmail string) error {
	tradeName = strings.TrimSpace(tradeName)
	if tradeName == "" {
		return fmt.Errorf("trade name is required")
	}
	if strings.TrimSpace(legalName) == "" {
		legalName = tradeName
	}
	t.tradeName = tradeName
	t.legalName = legalName
	t.address = address
	t.phone = phone
	t.contactEmail = contactEmail
	t.touch()
	return nil
}

// ApplySettings merges u into the current settings.
func (t *Tenant) ApplySettings(u SettingsUpdate) {
	if u.PreferredAIModel != nil {
		t.settings.PreferredAIModel = *u.PreferredAIModel
	}
	if u.PracticeAreas != nil {
		t.settings.PracticeAreas = append([]string(nil), u.PracticeAreas...)
	}
	if u.MLEnabled != nil {
		t.settings.MLEnabled = *u.MLEnabled
	}
	if u.AutoClassification != nil {
		t.settings.AutoClassification = *u.AutoClassification
	}
	if u.AutoOrganization != nil {
		t.settings.AutoOrganization = *u.AutoOrganization
	}
	t.touch()
}

func (t *Tenant) UpdateBranding(primary, secondary string) error {
	if !isHexColor(primary) {
		return fmt.Errorf("invalid primary color: %s", primary)
	}
	if !isHexColor(secondary) {
		return fmt.Errorf("invalid secondary color: %s", secondary)
	}
	t.primaryColor = strings.ToLower(primary)
	t.secondaryColor = strings.ToLower(secondary)
	t.touch()
	return nil
}

func (t *Tenant) SetLogoURL(url string) {
	t.logoURL = url
	t.touch()
}

func (t *Tenant) touch() {
	t.updatedAt = time.Now().UTC()
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
