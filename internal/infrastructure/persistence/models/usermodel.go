package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// TenantCNPJ is empty until the user registers or joins an office.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_user_sid"`
	Email        string `gorm:"not null;size:255;uniqueIndex:idx_user_email"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"size:255"`
	TenantCNPJ   string `gorm:"column:cnpj_escritorio;size:14;index:idx_user_tenant"`
	Cargo        string `gorm:"not null;size:30;default:advogado_junior"`
	Phone        string `gorm:"size:30"`
	OABNumber    string `gorm:"column:oab_number;size:20"`
	OABUF        string `gorm:"column:oab_uf;size:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Cargo == "" {
		u.Cargo = "advogado_junior"
	}
	return nil
}
