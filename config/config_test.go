package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  DatabaseConfig
		want bool
	}{
		{"both present", DatabaseConfig{Host: "db.example.supabase.co", Password: "secret"}, true},
		{"missing host", DatabaseConfig{Password: "secret"}, false},
		{"missing password", DatabaseConfig{Host: "db.example.supabase.co"}, false},
		{"empty", DatabaseConfig{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.BackendConfigured())
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "secret", DBName: "fivemshop", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=fivemshop sslmode=disable",
		cfg.GetDSN())
}
