package sanitizer

import (
	"regexp"
	"strings"
)

var (
	dotRegex        = regexp.MustCompile(`\.+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into one
// space and trims the ends.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// NormalizeEmail trims and lowercases an address and collapses repeated
// dots in the local part. Input without exactly one "@" is only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// ExtractDigits keeps only the ASCII digits of s.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
