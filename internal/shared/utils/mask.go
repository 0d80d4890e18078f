package utils

import "strings"

// MaskEmail keeps the first letter of the local part so notification logs
// can tell members apart without recording client or lawyer addresses.
// "ana@lexdoc.ai" becomes "a***@lexdoc.ai".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}

// MaskEmails masks every recipient of a notification.
func MaskEmails(addrs []string) []string {
	masked := make([]string, len(addrs))
	for i, a := range addrs {
		masked[i] = MaskEmail(a)
	}
	return masked
}
