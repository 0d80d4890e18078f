package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

type statusCount struct {
	Status string
	Total  int64
}

// countByStatus groups the tenant's rows of model by their status column.
func countByStatus(tx *gorm.DB, model any, tenantCNPJ string) (map[string]int64, error) {
	var rows []statusCount
	if err := tx.Model(model).
		Scopes(db.ForTenant(tenantCNPJ)).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func likePattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}

func conflictOr(err error, message string) error {
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError(message)
	}
	return nil
}

// deleteBySID hard deletes the tenant's row identified by sid.
func deleteBySID(tx *gorm.DB, model any, tenantCNPJ, sid, entity string) error {
	result := tx.Scopes(db.ForTenant(tenantCNPJ)).Where("sid = ?", sid).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(entity + " not found")
	}
	return nil
}
