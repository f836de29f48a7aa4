package types

import (
	"errors"
	"testing"
)

func TestNewEmailParts(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		wantLocal  string
		wantDomain string
		wantErr    error
	}{
		{name: "simple", email: "john@example.org", wantLocal: "john", wantDomain: "example.org"},
		{name: "case is preserved", email: "John@Example.ORG", wantLocal: "John", wantDomain: "Example.ORG"},
		{name: "first @ splits", email: "a@b@example.org", wantLocal: "a", wantDomain: "b@example.org"},
		{name: "empty local", email: "@example.org", wantLocal: "", wantDomain: "example.org"},
		{name: "empty domain", email: "john@", wantLocal: "john", wantDomain: ""},

		{name: "missing @", email: "bad-domain", wantErr: ErrInvalidEmailAddress},
		{name: "empty input", email: "", wantErr: ErrInvalidEmailAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmailParts(tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewEmailParts(%q) error = %v, want %v", tt.email, err, tt.wantErr)
			}

			if err != nil {
				return
			}

			if got.Address != tt.email {
				t.Errorf("Address = %q, want %q", got.Address, tt.email)
			}

			if got.Local != tt.wantLocal {
				t.Errorf("Local = %q, want %q", got.Local, tt.wantLocal)
			}

			if got.Domain != tt.wantDomain {
				t.Errorf("Domain = %q, want %q", got.Domain, tt.wantDomain)
			}
		})
	}
}
