package types

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid e-mail address, address is missing @")
)

// NewEmailParts decomposes an address at the first @. Everything after it, including any further @, becomes the
// Domain candidate. No case folding or trimming is applied.
func NewEmailParts(emailAddress string) (EmailParts, error) {
	p, err := splitLocalAndDomain(emailAddress)
	if err != nil {
		return EmailParts{}, err
	}

	return p, nil
}

type EmailParts struct {
	Address string
	Local   string
	Domain  string
}

func splitLocalAndDomain(input string) (EmailParts, error) {
	local, domain, found := strings.Cut(input, "@")
	if !found {
		return EmailParts{}, ErrInvalidEmailAddress
	}

	return EmailParts{
		Address: input,
		Local:   local,
		Domain:  domain,
	}, nil
}
