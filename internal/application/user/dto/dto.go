package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type UserDTO struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Cargo      string    `json:"cargo,omitempty"`
	CargoLabel string    `json:"cargo_label,omitempty"`
	TenantCNPJ string    `json:"cnpj_escritorio,omitempty"`
	Phone      string    `json:"telefone,omitempty"`
	OABNumber  string    `json:"numero_oab,omitempty"`
	OABUF      string    `json:"uf_oab,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_date"`
}

type AuthDTO struct {
	User         *UserDTO `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	d := &UserDTO{
		ID:         u.SID(),
		Email:      u.Email(),
		FullName:   u.Name(),
		TenantCNPJ: u.TenantCNPJ(),
		Phone:      u.Phone(),
		OABNumber:  u.OABNumber(),
		OABUF:      u.OABUF(),
		IsAdmin:    u.IsAdmin(),
		CreatedAt:  u.CreatedAt(),
	}
	if u.HasTenant() {
		d.Cargo = u.Cargo().String()
		d.CargoLabel = u.Cargo().Label()
	}
	return d
}

func ToUserDTOs(us []*user.User) []*UserDTO {
	return mapper.MapSlice(us, ToUserDTO)
}
