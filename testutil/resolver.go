package testutil

import (
	"context"
	"net"
	"sync"
)

// NewStubResolver returns a LookupMX implementation that answers from memory. Unknown domains produce a not-found
// *net.DNSError, like the system resolver does.
func NewStubResolver() *StubResolver {
	return &StubResolver{
		records: make(map[string][]*net.MX),
		errors:  make(map[string]error),
	}
}

type StubResolver struct {
	lock    sync.Mutex
	records map[string][]*net.MX
	errors  map[string]error
	calls   []string
}

// AddMX registers a record for domain, records are returned in the order they were added
func (r *StubResolver) AddMX(domain, host string, pref uint16) *StubResolver {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.records[domain] = append(r.records[domain], &net.MX{Host: host, Pref: pref})
	return r
}

// SetError makes every lookup of domain fail with err
func (r *StubResolver) SetError(domain string, err error) *StubResolver {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.errors[domain] = err
	return r
}

// Calls returns the domains looked up so far, in call order
func (r *StubResolver) Calls() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]string(nil), r.calls...)
}

func (r *StubResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.calls = append(r.calls, domain)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err, ok := r.errors[domain]; ok {
		return nil, err
	}

	mxs, ok := r.records[domain]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: domain, IsNotFound: true}
	}

	result := make([]*net.MX, len(mxs))
	for i, mx := range mxs {
		c := *mx
		result[i] = &c
	}

	return result, nil
}
