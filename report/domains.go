package report

import (
	"github.com/Dynom/mxreport/validator"
)

// DomainSet holds unique domains in the order they were first seen
type DomainSet struct {
	seen    map[string]struct{}
	domains []string
}

// NewDomainSet collects the valid domains of emails
func NewDomainSet(emails []string) *DomainSet {
	ds := &DomainSet{
		seen: make(map[string]struct{}, len(emails)),
	}

	for _, email := range emails {
		if domain, ok := validator.ExtractDomain(email); ok {
			ds.Add(domain)
		}
	}

	return ds
}

// Add inserts domain, unless it's already present. It returns true when it was added.
func (ds *DomainSet) Add(domain string) bool {
	if ds.seen == nil {
		ds.seen = make(map[string]struct{})
	}

	if _, exists := ds.seen[domain]; exists {
		return false
	}

	ds.seen[domain] = struct{}{}
	ds.domains = append(ds.domains, domain)
	return true
}

func (ds *DomainSet) Len() int {
	return len(ds.domains)
}

// Domains returns the domains in first-seen order
func (ds *DomainSet) Domains() []string {
	return append([]string(nil), ds.domains...)
}

// InvalidAddresses returns every address without a valid domain, in input order and including duplicates
func InvalidAddresses(emails []string) []string {
	var invalid []string
	for _, email := range emails {
		if _, ok := validator.ExtractDomain(email); !ok {
			invalid = append(invalid, email)
		}
	}

	return invalid
}
