package report

import (
	"reflect"
	"testing"
)

func TestNewDomainSet(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		want   []string
	}{
		{name: "deduplicated", emails: []string{"a@x.com", "b@x.com", "c@y.com"}, want: []string{"x.com", "y.com"}},
		{name: "first seen order", emails: []string{"a@y.com", "b@x.com", "c@y.com"}, want: []string{"y.com", "x.com"}},
		{name: "invalid domains are skipped", emails: []string{"bad-domain", "a@-x.com", "b@z.org"}, want: []string{"z.org"}},
		{name: "case sensitive", emails: []string{"a@X.com", "b@x.com"}, want: []string{"X.com", "x.com"}},
		{name: "nothing valid", emails: []string{"bad-domain"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := NewDomainSet(tt.emails)

			if got := ds.Domains(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Domains() = %q, want %q", got, tt.want)
			}

			if ds.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", ds.Len(), len(tt.want))
			}
		})
	}
}

func TestDomainSet_Add(t *testing.T) {
	var ds DomainSet

	if !ds.Add("example.com") {
		t.Errorf("Add() of a new domain should return true")
	}

	if ds.Add("example.com") {
		t.Errorf("Add() of a known domain should return false")
	}

	if ds.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ds.Len())
	}
}

func TestInvalidAddresses(t *testing.T) {
	emails := []string{"bad", "a@x.com", "bad", "b@x..com", "c@y.org", ""}

	want := []string{"bad", "bad", "b@x..com", ""}
	if got := InvalidAddresses(emails); !reflect.DeepEqual(got, want) {
		t.Errorf("InvalidAddresses() = %q, want %q", got, want)
	}

	if got := InvalidAddresses([]string{"a@x.com"}); got != nil {
		t.Errorf("InvalidAddresses() = %q, want nil", got)
	}
}
