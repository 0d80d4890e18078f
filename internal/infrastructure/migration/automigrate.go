package migration

import (
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.DepartmentModel{},
		&models.UserModel{},
		&models.AccessRequestModel{},
		&models.CaseModel{},
		&models.DocumentModel{},
		&models.FilingModel{},
		&models.AgentModel{},
		&models.OrganizedDocumentModel{},
		&models.AuditLogModel{},
	}
}
