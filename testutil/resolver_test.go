package testutil

import (
	"context"
	"errors"
	"net"
	"reflect"
	"testing"
)

func TestStubResolver_LookupMX(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewStubResolver().
		AddMX("example.org", "mx2.example.org.", 20).
		AddMX("example.org", "mx1.example.org.", 10).
		SetError("broken.org", errBoom)

	ctx := context.Background()

	t.Run("known domain", func(t *testing.T) {
		got, err := r.LookupMX(ctx, "example.org")
		if err != nil {
			t.Fatalf("LookupMX() error = %v", err)
		}

		want := []*net.MX{{Host: "mx2.example.org.", Pref: 20}, {Host: "mx1.example.org.", Pref: 10}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LookupMX() = %v, want %v", got, want)
		}
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, err := r.LookupMX(ctx, "unknown.org")

		var dnsErr *net.DNSError
		if !errors.As(err, &dnsErr) || !dnsErr.IsNotFound {
			t.Errorf("LookupMX() error = %v, expected a not-found DNS error", err)
		}
	})

	t.Run("configured error", func(t *testing.T) {
		if _, err := r.LookupMX(ctx, "broken.org"); !errors.Is(err, errBoom) {
			t.Errorf("LookupMX() error = %v, want %v", err, errBoom)
		}
	})

	t.Run("calls are recorded", func(t *testing.T) {
		want := []string{"example.org", "unknown.org", "broken.org"}
		if got := r.Calls(); !reflect.DeepEqual(got, want) {
			t.Errorf("Calls() = %v, want %v", got, want)
		}
	})
}
