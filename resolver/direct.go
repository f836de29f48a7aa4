package resolver

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/miekg/dns"
)

const resolvConf = "/etc/resolv.conf"

var (
	ErrNoServer = errors.New("no DNS server configured")
)

// Direct sends MX questions to a single DNS server and interprets the response code itself, instead of relying on the
// platform resolver. A name error (NXDOMAIN) and an answer without MX records both count as not found.
type Direct struct {
	udp    *dns.Client
	tcp    *dns.Client
	server string
}

// NewDirect creates a Direct resolver for address ("ip" or "ip:port"). An empty address selects the first nameserver
// from /etc/resolv.conf. A zero timeout keeps the dns package defaults.
func NewDirect(address string, timeout time.Duration) (*Direct, error) {
	if address == "" {
		conf, err := dns.ClientConfigFromFile(resolvConf)
		if err != nil {
			return nil, err
		}

		if len(conf.Servers) == 0 {
			return nil, ErrNoServer
		}

		address = net.JoinHostPort(conf.Servers[0], conf.Port)
	}

	return &Direct{
		udp:    &dns.Client{Net: "udp", Timeout: timeout},
		tcp:    &dns.Client{Net: "tcp", Timeout: timeout},
		server: serverAddress(address),
	}, nil
}

// Server returns the address queries are sent to
func (d *Direct) Server() string {
	return d.server
}

func (d *Direct) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeMX)

	in, _, err := d.udp.ExchangeContext(ctx, m, d.server)
	if err == nil && in.Truncated {
		in, _, err = d.tcp.ExchangeContext(ctx, m, d.server)
	}

	if err != nil {
		return nil, d.newError(domain, err.Error(), isTimeout(err), false)
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, d.newError(domain, "no such host", false, true)
	default:
		return nil, d.newError(domain, "server responded with "+dns.RcodeToString[in.Rcode], false, false)
	}

	var mxs []*net.MX
	for _, rr := range in.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			mxs = append(mxs, &net.MX{Host: mx.Mx, Pref: mx.Preference})
		}
	}

	if len(mxs) == 0 {
		return nil, d.newError(domain, "no such host", false, true)
	}

	return mxs, nil
}

func (d *Direct) newError(domain, msg string, timeout, notFound bool) *net.DNSError {
	return &net.DNSError{
		Err:        msg,
		Name:       domain,
		Server:     d.server,
		IsTimeout:  timeout,
		IsNotFound: notFound,
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return errors.Is(err, context.DeadlineExceeded)
}
