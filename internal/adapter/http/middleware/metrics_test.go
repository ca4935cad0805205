package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"account by id", "/api/v1/accounts/01HXYZ", "/api/v1/accounts/:id"},
		{"account entries", "/api/v1/accounts/01HXYZ/entries", "/api/v1/accounts/:id/entries"},
		{"transaction by id", "/api/v1/transactions/01HXYZ", "/api/v1/transactions/:id"},
		{"balance by id", "/api/v1/balance/01HXYZ", "/api/v1/balance/:id"},
		{"trial balance stays literal", "/api/v1/balance/trial", "/api/v1/balance/trial"},
		{"collection root untouched", "/api/v1/accounts", "/api/v1/accounts"},
		{"health untouched", "/health", "/health"},
		{"trailing slash only", "/api/v1/accounts/", "/api/v1/accounts/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
