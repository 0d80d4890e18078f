package http

import (
	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/repository"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo          user.Repository
	tenantRepo        tenant.Repository
	deptRepo          tenant.DepartmentRepository
	accessRequestRepo accessrequest.Repository
	caseRepo          legalcase.Repository
	docRepo           document.Repository
	filingRepo        filing.Repository
	agentRepo         agent.Repository
	organizedDocRepo  organization.Repository
	auditRepo         audit.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db, log),
		tenantRepo:        repository.NewTenantRepository(db, log),
		deptRepo:          repository.NewDepartmentRepository(db, log),
		accessRequestRepo: repository.NewAccessRequestRepository(db, log),
		caseRepo:          repository.NewCaseRepository(db, log),
		docRepo:           repository.NewDocumentRepository(db, log),
		filingRepo:        repository.NewFilingRepository(db, log),
		agentRepo:         repository.NewAgentRepository(db, log),
		organizedDocRepo:  repository.NewOrganizedDocumentRepository(db, log),
		auditRepo:         repository.NewAuditLogRepository(db, log),
	}
}
