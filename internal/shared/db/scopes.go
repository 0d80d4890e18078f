// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"strings"

	"gorm.io/gorm"
)

// TenantColumn is the partition key carried by every tenant-owned table.
const TenantColumn = "cnpj_escritorio"

// ForTenant restricts a query to rows owned by the given tenant.
//
//	db.Model(&models.CaseModel{}).Scopes(db.ForTenant(cnpj)).Count(&n)
func ForTenant(cnpj string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(TenantColumn+" = ?", cnpj)
	}
}

// Paginate applies LIMIT/OFFSET when pageSize is positive.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

// OrderBy sorts by a whitelisted column, falling back to created_at DESC.
func OrderBy(sortBy, sortOrder string, allowed map[string]bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column := strings.ToLower(sortBy)
		if column == "" || !allowed[column] {
			return db.Order("created_at DESC")
		}
		order := strings.ToUpper(sortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		return db.Order(column + " " + order)
	}
}
