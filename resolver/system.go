package resolver

import (
	"context"
	"net"
)

// NewSystem returns the Go resolver. When address is set, every query goes to that server instead of the ones the
// system is configured with.
func NewSystem(address string) *net.Resolver {
	if address == "" {
		return net.DefaultResolver
	}

	server := serverAddress(address)
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, network, server)
		},
	}
}

// serverAddress accepts "ip" or "ip:port" and defaults to port 53
func serverAddress(address string) string {
	if _, _, err := net.SplitHostPort(address); err == nil {
		return address
	}

	return net.JoinHostPort(address, "53")
}
