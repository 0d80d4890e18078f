package tenant

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

type DepartmentMetrics struct {
	Accuracy          float64 `json:"acuracia"`
	TrainingDocuments int     `json:"documentos_treinamento"`
	Feedbacks         int     `json:"feedbacks"`
}

// DepartmentTemplate is one of the departments seeded at onboarding.
type DepartmentTemplate struct {
	Name  string
	Color string
	Icon  string
}

// DefaultDepartments returns the departments every new office starts with.
func DefaultDepartments() []DepartmentTemplate {
	return []DepartmentTemplate{
		{Name: "Cível", Color: "#3b82f6", Icon: "Scale"},
		{Name: "Trabalhista", Color: "#f59e0b", Icon: "Briefcase"},
		{Name: "Tributário", Color: "#10b981", Icon: "DollarSign"},
		{Name: "Empresarial", Color: "#8b5cf6", Icon: "Building2"},
		{Name: "Contratos", Color: "#ec4899", Icon: "FileText"},
	}
}

type Department struct {
	id                  uint
	sid                 string
	tenantCNPJ          string
	name                string
	description         string
	color               string
	icon                string
	aiModelID           string
	metrics             DepartmentMetrics
	classificationRules []string
	active              bool
	createdAt           time.Time
	updatedAt           time.Time
}

type DepartmentState struct {
	ID                  uint
	SID                 string
	TenantCNPJ          string
	Name                string
	Description         string
	Color               string
	Icon                string
	AIModelID           string
	Metrics             DepartmentMetrics
	ClassificationRules []string
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewDepartment(tenantCNPJ, sigla string, tpl DepartmentTemplate) (*Department, error) {
	if tenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	if strings.TrimSpace(tpl.Name) == "" {
		return nil, fmt.Errorf("department name is required")
	}

	sid, err := id.NewDepartmentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate department ID: %w", err)
	}

	now := time.Now().UTC()
	return &Department{
		sid:                 sid,
		tenantCNPJ:          tenantCNPJ,
		name:                tpl.Name,
		description:         fmt.Sprintf("Departamento de %s com inteligência artificial para otimização de documentos.", tpl.Name),
		color:               tpl.Color,
		icon:                tpl.Icon,
		aiModelID:           DepartmentModelID(sigla, tpl.Name),
		metrics:             DepartmentMetrics{Accuracy: DefaultMLAccuracy},
		classificationRules: []string{},
		active:              true,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// DepartmentModelID builds "{SIGLA}_{name}_v1" with the name lowercased,
// accent folded and stripped of whitespace.
func DepartmentModelID(sigla, name string) string {
	folded := strings.ToLower(textutil.FoldAccents(name))
	folded = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
	return fmt.Sprintf("%s_%s_v1", sigla, folded)
}

func ReconstructDepartment(s DepartmentState) (*Department, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	if s.ClassificationRules == nil {
		s.ClassificationRules = []string{}
	}
	return &Department{
		id:                  s.ID,
		sid:                 s.SID,
		tenantCNPJ:          s.TenantCNPJ,
		name:                s.Name,
		description:         s.Description,
		color:               s.Color,
		icon:                s.Icon,
		aiModelID:           s.AIModelID,
		metrics:             s.Metrics,
		classificationRules: s.ClassificationRules,
		active:              s.Active,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}, nil
}

func (d *Department) ID() uint { return d.id }
func (d *Department) SID() string { return d.sid }
func (d *Department) TenantCNPJ() string { return d.tenantCNPJ }
func (d *Department) Name() string { return d.name }
func (d *Department) Description() string { return d.description }
func (d *Department) Color() string { return d.color }
func (d *Department) Icon() string { return d.icon }
func (d *Department) AIModelID() string { return d.aiModelID }
func (d *Department) Metrics() DepartmentMetrics { return d.metrics }
func (d *Department) ClassificationRules() []string { return d.classificationRules }
func (d *Department) IsActive() bool { return d.active }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) {
	d.id = id
}
