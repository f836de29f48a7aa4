package validator

import (
	"context"
	"net"
)

// LookupMX is satisfied by *net.Resolver and by the resolvers in the resolver package
type LookupMX interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}
