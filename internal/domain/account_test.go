package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        AccountType
		expectError bool
	}{
		{name: "asset", input: "asset", want: AccountTypeAsset},
		{name: "liability", input: "liability", want: AccountTypeLiability},
		{name: "equity", input: "equity", want: AccountTypeEquity},
		{name: "revenue", input: "revenue", want: AccountTypeRevenue},
		{name: "expense", input: "expense", want: AccountTypeExpense},
		{name: "unknown type", input: "banana", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "wrong case", input: "Asset", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidAccountType) {
					t.Fatalf("expected ErrInvalidAccountType, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAccountType_SignedBalance(t *testing.T) {
	tests := []struct {
		name        string
		accountType AccountType
		debitTotal  string
		creditTotal string
		want        string
	}{
		{
			name:        "asset is debit minus credit",
			accountType: AccountTypeAsset,
			debitTotal:  "1500",
			creditTotal: "500",
			want:        "1000",
		},
		{
			name:        "expense is debit minus credit",
			accountType: AccountTypeExpense,
			debitTotal:  "300",
			creditTotal: "100",
			want:        "200",
		},
		{
			name:        "liability is credit minus debit",
			accountType: AccountTypeLiability,
			debitTotal:  "200",
			creditTotal: "700",
			want:        "500",
		},
		{
			name:        "equity is credit minus debit",
			accountType: AccountTypeEquity,
			debitTotal:  "0",
			creditTotal: "1000",
			want:        "1000",
		},
		{
			name:        "revenue is credit minus debit",
			accountType: AccountTypeRevenue,
			debitTotal:  "1500",
			creditTotal: "500",
			want:        "-1000",
		},
		{
			name:        "unrecognized type falls back to debit minus credit",
			accountType: AccountType("banana"),
			debitTotal:  "80",
			creditTotal: "30",
			want:        "50",
		},
		{
			name:        "no entries is zero",
			accountType: AccountTypeAsset,
			debitTotal:  "0",
			creditTotal: "0",
			want:        "0",
		},
		{
			name:        "fractional amounts stay exact",
			accountType: AccountTypeAsset,
			debitTotal:  "0.30",
			creditTotal: "0.10",
			want:        "0.20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit := decimal.RequireFromString(tt.debitTotal)
			credit := decimal.RequireFromString(tt.creditTotal)
			want := decimal.RequireFromString(tt.want)

			got := tt.accountType.SignedBalance(debit, credit)
			if !got.Equal(want) {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestAccountPatch_IsEmpty(t *testing.T) {
	if !(AccountPatch{}).IsEmpty() {
		t.Fatalf("expected empty patch")
	}

	name := "Cash"
	if (AccountPatch{Name: &name}).IsEmpty() {
		t.Fatalf("expected non-empty patch")
	}

	active := false
	if (AccountPatch{IsActive: &active}).IsEmpty() {
		t.Fatalf("expected non-empty patch")
	}
}
