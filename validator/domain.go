package validator

import (
	"regexp"

	"github.com/Dynom/mxreport/types"
)

// One or more labels of 1-63 letters, digits or hyphens, not starting or ending on a hyphen, each followed by a dot,
// then a top-level label of 2-6 letters.
var domainPattern = regexp.MustCompile(`^(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,6}$`)

// LooksLikeValidDomain is a blunt syntax check. It does not enforce the total length limit of 253 and has no notion of
// IDNA.
func LooksLikeValidDomain(domain string) bool {
	return domainPattern.MatchString(domain)
}

// ExtractDomain returns the domain of an e-mail address, when it passes LooksLikeValidDomain. Addresses without @ are
// never valid.
func ExtractDomain(email string) (string, bool) {
	parts, err := types.NewEmailParts(email)
	if err != nil {
		return "", false
	}

	if !LooksLikeValidDomain(parts.Domain) {
		return "", false
	}

	return parts.Domain, true
}
