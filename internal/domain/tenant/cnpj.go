package tenant

import (
	"fmt"
	"strings"
)

// NormalizeCNPJ strips punctuation and requires exactly 14 digits.
func NormalizeCNPJ(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cnpj := b.String()
	if len(cnpj) != 14 {
		return "", fmt.Errorf("CNPJ must contain 14 digits, got %d", len(cnpj))
	}
	return cnpj, nil
}

// FormatCNPJ renders 12345678000190 as 12.345.678/0001-90.
func FormatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[0:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:14])
}

// DeriveSigla takes the first letter of up to three words longer than two
// characters and appends DOC: "Silva Pereira Advogados" becomes "SPADOC".
func DeriveSigla(companyName string) string {
	var b strings.Builder
	taken := 0
	for _, word := range strings.Split(companyName, " ") {
		if taken == 3 {
			break
		}
		runes := []rune(word)
		if len(runes) <= 2 {
			continue
		}
		b.WriteString(strings.ToUpper(string(runes[0])))
		taken++
	}
	return b.String() + "DOC"
}

// CustomDomain is the per-office address derived from the sigla.
func CustomDomain(sigla string) string {
	return "https://" + strings.ToLower(sigla) + ".lexdoc.ai"
}
