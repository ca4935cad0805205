package postgres

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"zero", "0"},
		{"integer", "1500"},
		{"fraction", "0.01"},
		{"mixed", "1234.5678"},
		{"negative", "-42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.value)
			got := numericToDecimal(decimalToNumeric(d))
			if !got.Equal(d) {
				t.Fatalf("round trip of %s produced %s", d, got)
			}
		})
	}
}

func TestNumericToDecimalInvalidValueReadsAsZero(t *testing.T) {
	tests := []struct {
		name string
		n    pgtype.Numeric
	}{
		{"null", pgtype.Numeric{}},
		{"nil int", pgtype.Numeric{Valid: true}},
		{"nan", pgtype.Numeric{Int: big.NewInt(0), NaN: true, Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numericToDecimal(tt.n)
			if !got.IsZero() {
				t.Fatalf("expected zero, got %s", got)
			}
		})
	}
}

func TestNumericToDecimalAppliesExponent(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}
	got := numericToDecimal(n)
	want := decimal.RequireFromString("123.45")
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestPgTextPtrRoundTrip(t *testing.T) {
	if got := pgTextToPtr(ptrToPgText(nil)); got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}

	s := "memo"
	got := pgTextToPtr(ptrToPgText(&s))
	if got == nil || *got != s {
		t.Fatalf("expected %q, got %v", s, got)
	}
}
