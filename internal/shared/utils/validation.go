package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterValidators(validate)
}

// RegisterValidators installs the JSON tag name function and the custom
// tags (cnpj, cpf, uf, hexcolor6) on v.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return len(DigitsOnly(fl.Field().String())) == 14
	})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || len(DigitsOnly(s)) == 11
	})
	_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || brazilianStates[strings.ToUpper(s)]
	})
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 7 || s[0] != '#' {
			return false
		}
		for _, r := range s[1:] {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return false
			}
		}
		return true
	})
}

// RegisterGinValidators installs the custom tags on gin's binding engine.
func RegisterGinValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

var brazilianStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true, "DF": true,
	"ES": true, "GO": true, "MA": true, "MT": true, "MS": true, "MG": true, "PA": true,
	"PB": true, "PR": true, "PE": true, "PI": true, "RJ": true, "RN": true, "RS": true,
	"RO": true, "RR": true, "SC": true, "SP": true, "SE": true, "TO": true,
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s any) error {
	return BindingError(validate.Struct(s))
}

// BindingError converts binding and validation failures into AppErrors so
// handlers can pass them straight to ErrorResponseWithError.
func BindingError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fieldErrorMessage(fe))
		}
		return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) {
		return errors.NewBadRequestError("Invalid JSON body", err.Error())
	}

	if errors.IsAppError(err) {
		return err
	}

	return errors.NewBadRequestError("Invalid request", err.Error())
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "cnpj":
		return fmt.Sprintf("%s must contain 14 digits", field)
	case "cpf":
		return fmt.Sprintf("%s must contain 11 digits", field)
	case "uf":
		return fmt.Sprintf("%s must be a Brazilian state code", field)
	case "hexcolor6":
		return fmt.Sprintf("%s must be a #rrggbb colour", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
