// Package compute holds the derived-field arithmetic for sale entries.
// Create and edit paths all go through the same two functions so the
// stored figures can never drift between routes.
package compute

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SaleTypeOTP is the one sale type whose balance-due formula differs.
const SaleTypeOTP = "OTP"

var twentyPercent = decimal.RequireFromString("0.20")

// CleanNumber strips everything that is not a digit, '.' or '-' from a
// form value and parses the rest. Empty input and unparsable residue
// (e.g. "1.2.3") both come back as zero.
func CleanNumber(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Result carries the three derived figures stored on every sale row.
type Result struct {
	TotalSalePrice decimal.Decimal
	BalanceAmount  decimal.Decimal
	BalanceByPlan  decimal.Decimal
}

// Totals derives the financial figures from the raw inputs.
//
//	total   = (base + premiums) * land
//	balance = total - received
//	byPlan  = balance                  when typeOfSale == "OTP"
//	          total*0.20 - balance     otherwise
func Totals(base, premiums, land, received decimal.Decimal, typeOfSale string) Result {
	total := base.Add(premiums).Mul(land)
	balance := total.Sub(received)

	byPlan := balance
	if typeOfSale != SaleTypeOTP {
		byPlan = total.Mul(twentyPercent).Sub(balance)
	}

	return Result{
		TotalSalePrice: total,
		BalanceAmount:  balance,
		BalanceByPlan:  byPlan,
	}
}
