package validator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"
)

var (
	ErrDomainNotFound = errors.New("domain does not exist")
)

// MXResult holds the most preferred mail exchange of a domain, or the reason why there is none
type MXResult struct {
	Domain     string
	Host       string
	Preference uint16
	Duration   time.Duration
	Err        error
}

// Resolved returns true when Host and Preference carry a value
func (r MXResult) Resolved() bool {
	return r.Err == nil
}

// Message describes the outcome of the lookup
func (r MXResult) Message() string {
	if r.Err == nil {
		return r.Host
	}

	if errors.Is(r.Err, ErrDomainNotFound) {
		return fmt.Sprintf("Domain %s does not exist", r.Domain)
	}

	return fmt.Sprintf("Error fetching MX records: %s", r.Err)
}

// ResolveLowestPreferenceMX looks up the MX records of domain and picks the one with the lowest preference value, which
// is the one mail transfer agents try first. Records sharing a preference keep the order the resolver returned them in.
func ResolveLowestPreferenceMX(ctx context.Context, resolver LookupMX, domain string) MXResult {
	result := MXResult{
		Domain: domain,
	}

	start := time.Now()
	mxs, err := resolver.LookupMX(ctx, domain)
	result.Duration = time.Since(start)

	if err != nil {
		if IsNotFound(err) {
			result.Err = fmt.Errorf("%w: %s", ErrDomainNotFound, err)
		} else {
			result.Err = err
		}

		return result
	}

	mx := lowestPreference(mxs)
	if mx == nil {
		result.Err = fmt.Errorf("%w: no MX records found", ErrDomainNotFound)
		return result
	}

	// Hosts end on a "." in most responses, the report uses the relative form
	result.Host = strings.TrimSuffix(mx.Host, ".")
	result.Preference = mx.Pref

	return result
}

// IsNotFound reports whether err means the domain, or its MX records, don't exist
func IsNotFound(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}

	return false
}

func lowestPreference(mxs []*net.MX) *net.MX {
	sorted := make([]*net.MX, 0, len(mxs))
	for _, mx := range mxs {
		if mx != nil {
			sorted = append(sorted, mx)
		}
	}

	if len(sorted) == 0 {
		return nil
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pref < sorted[j].Pref
	})

	return sorted[0]
}
