package resolver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/Dynom/mxreport/validator"
	"github.com/miekg/dns"
)

func mxRR(name string, pref uint16, host string) dns.RR {
	return &dns.MX{
		Hdr: dns.RR_Header{
			Name:   name,
			Rrtype: dns.TypeMX,
			Class:  dns.ClassINET,
			Ttl:    3600,
		},
		Preference: pref,
		Mx:         host,
	}
}

func testZone(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)

	q := r.Question[0]
	switch q.Name {
	case "example.com.":
		m.Answer = append(m.Answer,
			mxRR(q.Name, 20, "backup.example.com."),
			mxRR(q.Name, 10, "mail.example.com."),
		)
	case "nomx.example.com.":
		// Exists, but without MX records
	case "broken.example.com.":
		m.SetRcode(r, dns.RcodeServerFailure)
	default:
		m.SetRcode(r, dns.RcodeNameError)
	}

	_ = w.WriteMsg(m)
}

func startServer(t *testing.T, handler dns.HandlerFunc) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unable to listen: %s", err)
	}

	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		Handler:           handler,
		NotifyStartedFunc: func() { close(started) },
	}

	go func() {
		_ = srv.ActivateAndServe()
	}()

	<-started
	t.Cleanup(func() {
		_ = srv.Shutdown()
	})

	return pc.LocalAddr().String()
}

func TestDirect_LookupMX(t *testing.T) {
	addr := startServer(t, testZone)

	d, err := NewDirect(addr, time.Second)
	if err != nil {
		t.Fatalf("NewDirect() error = %v", err)
	}

	if d.Server() != addr {
		t.Errorf("Server() = %q, want %q", d.Server(), addr)
	}

	ctx := context.Background()

	t.Run("records", func(t *testing.T) {
		mxs, err := d.LookupMX(ctx, "example.com")
		if err != nil {
			t.Fatalf("LookupMX() error = %v", err)
		}

		if len(mxs) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(mxs))
		}

		if mxs[0].Host != "backup.example.com." || mxs[0].Pref != 20 {
			t.Errorf("Unexpected first record %+v", mxs[0])
		}
	})

	tests := []struct {
		name         string
		domain       string
		wantNotFound bool
	}{
		{name: "name error", domain: "missing.example.com", wantNotFound: true},
		{name: "no MX records", domain: "nomx.example.com", wantNotFound: true},
		{name: "server failure", domain: "broken.example.com", wantNotFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.LookupMX(ctx, tt.domain)

			var dnsErr *net.DNSError
			if !errors.As(err, &dnsErr) {
				t.Fatalf("Expected a *net.DNSError, got %v", err)
			}

			if dnsErr.IsNotFound != tt.wantNotFound {
				t.Errorf("IsNotFound = %t, want %t (%v)", dnsErr.IsNotFound, tt.wantNotFound, err)
			}

			if dnsErr.Name != tt.domain || dnsErr.Server != addr {
				t.Errorf("Unexpected Name/Server in %+v", dnsErr)
			}
		})
	}
}

func TestDirect_LookupMXTimeout(t *testing.T) {
	// A socket that never responds
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unable to listen: %s", err)
	}

	defer pc.Close()

	d, err := NewDirect(pc.LocalAddr().String(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewDirect() error = %v", err)
	}

	_, err = d.LookupMX(context.Background(), "example.com")

	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) || !dnsErr.IsTimeout {
		t.Errorf("Expected a timeout, got %v", err)
	}

	if validator.IsNotFound(err) {
		t.Errorf("A timeout should not be classified as not found")
	}
}

func TestDirect_withResolveLowestPreferenceMX(t *testing.T) {
	d, err := NewDirect(startServer(t, testZone), time.Second)
	if err != nil {
		t.Fatalf("NewDirect() error = %v", err)
	}

	got := validator.ResolveLowestPreferenceMX(context.Background(), d, "example.com")
	if !got.Resolved() || got.Host != "mail.example.com" || got.Preference != 10 {
		t.Errorf("ResolveLowestPreferenceMX() = %+v", got)
	}

	got = validator.ResolveLowestPreferenceMX(context.Background(), d, "nomx.example.com")
	if !errors.Is(got.Err, validator.ErrDomainNotFound) {
		t.Errorf("Expected ErrDomainNotFound, got %v", got.Err)
	}
}

func TestNewSystem(t *testing.T) {
	if r := NewSystem(""); r != net.DefaultResolver {
		t.Errorf("Expected the default resolver without an address")
	}

	r := NewSystem(startServer(t, testZone))
	if r == net.DefaultResolver || !r.PreferGo {
		t.Fatalf("Expected a custom Go resolver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := validator.ResolveLowestPreferenceMX(ctx, r, "example.com")
	if !got.Resolved() || got.Host != "mail.example.com" || got.Preference != 10 {
		t.Errorf("ResolveLowestPreferenceMX() = %+v", got)
	}
}

func Test_serverAddress(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{address: "192.0.2.1", want: "192.0.2.1:53"},
		{address: "192.0.2.1:5353", want: "192.0.2.1:5353"},
		{address: "2001:db8::1", want: "[2001:db8::1]:53"},
		{address: "[2001:db8::1]:5353", want: "[2001:db8::1]:5353"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := serverAddress(tt.address); got != tt.want {
				t.Errorf("serverAddress(%q) = %q, want %q", tt.address, got, tt.want)
			}
		})
	}
}
