package browse

import (
	"testing"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
)

func TestFindByID(t *testing.T) {
	records := repository.SampleProducts()

	tests := []struct {
		name     string
		id       string
		wantOK   bool
		wantName string
	}{
		{name: "first record", id: "1", wantOK: true, wantName: "Laptop 1"},
		{name: "tablet", id: "3", wantOK: true, wantName: "Tablet 1"},
		{name: "unknown id", id: "99", wantOK: false},
		{name: "empty id", id: "", wantOK: false},
		{name: "no substring match", id: "1 ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FindByID(records, tt.id)
			if ok != tt.wantOK {
				t.Fatalf("FindByID(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && p.ProductName != tt.wantName {
				t.Fatalf("FindByID(%q) name = %q, want %q", tt.id, p.ProductName, tt.wantName)
			}
			if !ok && p != (domain.Product{}) {
				t.Fatalf("expected zero product on miss, got %+v", p)
			}
		})
	}
}

func TestFindByIDIsCaseSensitive(t *testing.T) {
	records := []domain.Product{{ID: "abc"}, {ID: "ABC", ProductName: "upper"}}

	p, ok := FindByID(records, "ABC")
	if !ok || p.ProductName != "upper" {
		t.Fatalf("expected exact-case match, got %+v (ok=%v)", p, ok)
	}
}

func TestFindByIDReturnsFirstMatch(t *testing.T) {
	records := []domain.Product{{ID: "7", ProductName: "first"}, {ID: "7", ProductName: "second"}}

	p, _ := FindByID(records, "7")
	if p.ProductName != "first" {
		t.Fatalf("expected first match, got %q", p.ProductName)
	}
}
