package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_SOURCE", "seed")
	t.Setenv("ENVIRONMENT", "test")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no flags", args: []string{"list"}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "category", args: []string{"list", "--category", "LAPTOP"}, want: []string{"1", "2"}},
		{name: "price window", args: []string{"list", "--min-price", "1230", "--max-price", "1250"}, want: []string{"1", "2"}},
		{name: "zero rating", args: []string{"list", "--min-rating", "0"}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "malformed price", args: []string{"list", "--max-price", "cheap"}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "no matches", args: []string{"list", "--company", "Company Z"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}

			var result struct {
				Products []domain.Product `json:"products"`
				Total    int              `json:"total"`
				Matched  int              `json:"matched"`
			}
			if err := json.Unmarshal([]byte(out), &result); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if result.Total != 5 || result.Matched != len(tt.want) {
				t.Fatalf("unexpected counts: total=%d matched=%d", result.Total, result.Matched)
			}
			for i, id := range tt.want {
				if result.Products[i].ID != id {
					t.Fatalf("position %d: got %q, want %q", i, result.Products[i].ID, id)
				}
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show", "5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var product domain.Product
	if err := json.Unmarshal([]byte(out), &product); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if product.ProductName != "Headset 1" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestShowCommandNotFound(t *testing.T) {
	_, err := execute(t, "show", "6")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSeedRequiresPostgres(t *testing.T) {
	_, err := execute(t, "seed")
	if err == nil || !strings.Contains(err.Error(), "DATA_SOURCE") {
		t.Fatalf("expected data source error, got %v", err)
	}
}

func TestViewsRequiresBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	_, err := execute(t, "views")
	if err == nil || !strings.Contains(err.Error(), "KAFKA_BROKERS") {
		t.Fatalf("expected brokers error, got %v", err)
	}
}
