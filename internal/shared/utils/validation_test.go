package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

type onboardingInput struct {
	CNPJ  string `json:"cnpj" validate:"required,cnpj"`
	CPF   string `json:"cpf" validate:"cpf"`
	UF    string `json:"oab_uf" validate:"uf"`
	Color string `json:"cor_primaria" validate:"omitempty,hexcolor6"`
}

func TestValidateStruct_CustomTags(t *testing.T) {
	tests := []struct {
		name      string
		input     onboardingInput
		wantErr   bool
		wantField string
	}{
		{"formatted cnpj is accepted", onboardingInput{CNPJ: "12.345.678/0001-90"}, false, ""},
		{"short cnpj is rejected", onboardingInput{CNPJ: "1234"}, true, "cnpj"},
		{"cpf with punctuation", onboardingInput{CNPJ: "12345678000190", CPF: "123.456.789-09"}, false, ""},
		{"bad cpf", onboardingInput{CNPJ: "12345678000190", CPF: "123"}, true, "cpf"},
		{"lower case uf", onboardingInput{CNPJ: "12345678000190", UF: "sp"}, false, ""},
		{"unknown uf", onboardingInput{CNPJ: "12345678000190", UF: "XX"}, true, "oab_uf"},
		{"bad colour", onboardingInput{CNPJ: "12345678000190", Color: "blue"}, true, "cor_primaria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Details, tt.wantField)
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678000190", DigitsOnly("12.345.678/0001-90"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@lexdoc.ai", MaskEmail("ana@lexdoc.ai"))
	assert.Equal(t, "***", MaskEmail("invalid"))
	assert.Equal(t, "b***@lexdoc.ai", MaskEmail("b@lexdoc.ai"))
}

func TestMaskEmails(t *testing.T) {
	assert.Equal(t,
		[]string{"a***@lexdoc.ai", "***"},
		MaskEmails([]string{"ana@lexdoc.ai", "invalid"}))
	assert.Empty(t, MaskEmails(nil))
}
