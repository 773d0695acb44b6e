package database

import "testing"

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "catalog",
		Password: "secret",
		DBName:   "catalogdb",
		SSLMode:  "disable",
	}

	want := "host=db port=5432 user=catalog password=secret dbname=catalogdb sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
