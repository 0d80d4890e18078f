// Package textutil holds rune-aware helpers for the Portuguese text that
// flows through prompts, file names and folder paths.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// FoldAccents removes diacritics: "Tributário" becomes "Tributario".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug lowercases, folds accents and joins alphanumeric runs with sep.
func Slug(s string, sep string) string {
	folded := strings.ToLower(FoldAccents(s))
	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteString(sep)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// SafeFileName keeps the extension and slugs the stem with underscores.
func SafeFileName(name string) string {
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		ext = strings.ToLower(name[i:])
		name = name[:i]
	}
	stem := Slug(name, "_")
	if stem == "" {
		stem = "arquivo"
	}
	return stem + ext
}

// SafeFolderPath slugs every segment of a slash separated path while keeping
// the original capitalisation style of "Documentos/Gerais".
func SafeFolderPath(path string) string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(FoldAccents(p))
		if p == "" || p == "." || p == ".." {
			continue
		}
		out = append(out, strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
				return r
			}
			return -1
		}, p))
	}
	return strings.Join(out, "/")
}
