package compute

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCleanNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"1000", "1000"},
		{"1,000.50", "1000.50"},
		{"₹ 2,400", "2400"},
		{"-42", "-42"},
		{"  12 000 ", "12000"},
		{"abc", "0"},
		{"1.2.3", "0"},
		{"--", "0"},
		{".5", "0.5"},
	}
	for _, tc := range cases {
		got := CleanNumber(tc.in)
		if !got.Equal(dec(tc.want)) {
			t.Errorf("CleanNumber(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestCleanNumberOnlyKeepsNumericRunes(t *testing.T) {
	inputs := []string{"$1,234.56", "12a34", "Rs. 99", "7-", "1e5"}
	for _, in := range inputs {
		got := CleanNumber(in).String()
		for _, r := range got {
			if !((r >= '0' && r <= '9') || r == '.' || r == '-') {
				t.Errorf("CleanNumber(%q) produced %q with rune %q", in, got, r)
			}
		}
	}
}

func TestTotalsOTP(t *testing.T) {
	// base=1000 premiums=200 land=2 received=1500, OTP
	got := Totals(dec("1000"), dec("200"), dec("2"), dec("1500"), "OTP")

	if !got.TotalSalePrice.Equal(dec("2400")) {
		t.Errorf("total = %s, want 2400", got.TotalSalePrice)
	}
	if !got.BalanceAmount.Equal(dec("900")) {
		t.Errorf("balance = %s, want 900", got.BalanceAmount)
	}
	if !got.BalanceByPlan.Equal(dec("900")) {
		t.Errorf("byPlan = %s, want 900", got.BalanceByPlan)
	}
}

func TestTotalsNonOTP(t *testing.T) {
	// same inputs, type R: byPlan = 2400*0.20 - 900 = -420
	got := Totals(dec("1000"), dec("200"), dec("2"), dec("1500"), "R")

	if !got.BalanceByPlan.Equal(dec("-420")) {
		t.Errorf("byPlan = %s, want -420", got.BalanceByPlan)
	}
}

func TestTotalsBalanceIdentity(t *testing.T) {
	cases := []struct {
		base, prem, land, recv string
		tos                    string
	}{
		{"1000", "200", "2", "1500", "OTP"},
		{"0", "0", "0", "0", "R"},
		{"550.25", "49.75", "3", "100", "R"},
		{"-10", "5", "4", "0", "OTP"},
	}
	for _, tc := range cases {
		got := Totals(dec(tc.base), dec(tc.prem), dec(tc.land), dec(tc.recv), tc.tos)
		want := got.TotalSalePrice.Sub(dec(tc.recv))
		if !got.BalanceAmount.Equal(want) {
			t.Errorf("balance identity broken for %+v: %s != %s", tc, got.BalanceAmount, want)
		}
		if tc.tos == "OTP" && !got.BalanceByPlan.Equal(got.BalanceAmount) {
			t.Errorf("OTP byPlan must equal balance, got %s vs %s", got.BalanceByPlan, got.BalanceAmount)
		}
	}
}

func TestTotalsDeterministic(t *testing.T) {
	a := Totals(dec("123.45"), dec("6.55"), dec("7"), dec("400"), "R")
	b := Totals(dec("123.45"), dec("6.55"), dec("7"), dec("400"), "R")
	if !a.TotalSalePrice.Equal(b.TotalSalePrice) ||
		!a.BalanceAmount.Equal(b.BalanceAmount) ||
		!a.BalanceByPlan.Equal(b.BalanceByPlan) {
		t.Errorf("same inputs produced different results: %+v vs %+v", a, b)
	}
}
