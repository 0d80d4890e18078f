package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptPasswordHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"configured", bcrypt.MinCost, bcrypt.MinCost},
		{"zero", 0, bcrypt.DefaultCost},
		{"above max", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcryptPasswordHasher(tt.cost).Cost())
		})
	}
}

func TestBcryptPasswordHasher_Verify(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("senha-do-escritorio")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{"matching password", "senha-do-escritorio", hash, nil},
		{"wrong password", "outra-senha", hash, ErrPasswordMismatch},
		{"malformed hash", "senha-do-escritorio", "not-a-bcrypt-hash", ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
