package validator

import (
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/kaleidos/skame/pkg/schema"
)

var (
	// Dot-atom or quoted-string local part.
	emailUserRegex = regexp.MustCompile("(?i)(^[-!#$%&'*+/=?^_`{}|~0-9A-Z]+(\\.[-!#$%&'*+/=?^_`{}|~0-9A-Z]+)*$" +
		`|^"([\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"$)`)

	// Labels of up to 63 characters followed by an alphabetic TLD or a
	// punycode-like label that does not end with a hyphen.
	emailDomainRegex = regexp.MustCompile(`(?i)^(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}|[A-Z0-9-]+[A-Z0-9])$`)
)

// Email validates an address split at its last "@" into a local part and a
// domain.
func Email(opts ...schema.Option) schema.Validator {
	return EmailWhitelist(nil, opts...)
}

// EmailWhitelist is Email that also accepts the listed domains even when
// they are not fully qualified, e.g. "localhost".
func EmailWhitelist(domains []string, opts ...schema.Option) schema.Validator {
	r := rule{name: "email", template: MsgEmail, key: KeyEmail}
	return check(r, func(value string) bool {
		at := strings.LastIndex(value, "@")
		if at < 0 {
			return false
		}
		user, domain := value[:at], value[at+1:]
		if !emailUserRegex.MatchString(user) {
			return false
		}
		return slices.Contains(domains, domain) || emailDomainRegex.MatchString(domain)
	}, opts)
}

// URL validates an absolute URL with a host. When schemes is not empty the
// URL scheme must be one of them.
func URL(schemes []string, opts ...schema.Option) schema.Validator {
	r := rule{name: "url", template: MsgURL, key: KeyURL, params: map[string]any{"schemes": strings.Join(schemes, ", ")}}
	return check(r, func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		u, err := url.ParseRequestURI(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	}, opts)
}
