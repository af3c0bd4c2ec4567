package handlers

import (
	"strconv"
	"strings"

	"arcadia-sales/internal/compute"
	"arcadia-sales/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// saleForm is the parsed and sanitized sale-entry form, shared by every
// create and edit route so all of them validate and compute identically.
type saleForm struct {
	BookingDate *string
	Project     string
	SPG         string
	Token       *int
	BuyerName   string
	SOL         string
	TypeOfSale  string

	Land     decimal.Decimal
	Sbua     decimal.Decimal
	Facing   string
	Base     decimal.Decimal
	Premiums decimal.Decimal
	Received decimal.Decimal

	Notes             string
	BalanceDuringExec decimal.Decimal
	SalePerson        string

	Derived compute.Result
}

// readSaleForm parses the posted form, applies the blank-field defaults,
// validates the two enumerated fields and computes the derived figures.
// Validation failures come back as per-field messages; err is reserved
// for storage trouble.
func (h *Handler) readSaleForm(c *gin.Context) (*saleForm, []string, error) {
	f := &saleForm{}

	spg := strings.TrimSpace(c.PostForm("spg_praneeth"))
	if spg == "" {
		spg = "SPG"
	}
	tos := strings.ToUpper(strings.TrimSpace(c.PostForm("type_of_sale")))
	if tos == "" {
		tos = compute.SaleTypeOTP
	}

	var errs []string
	if ok, err := h.store.IsValidOption(models.OptionSPG, spg); err != nil {
		return nil, nil, err
	} else if !ok {
		errs = append(errs, "spg_praneeth invalid")
	}
	if ok, err := h.store.IsValidOption(models.OptionSaleType, tos); err != nil {
		return nil, nil, err
	} else if !ok {
		errs = append(errs, "type_of_sale invalid")
	}

	f.SPG = spg
	f.TypeOfSale = tos

	if bd := strings.TrimSpace(c.PostForm("booking_date")); bd != "" {
		f.BookingDate = &bd
	}
	f.Project = c.PostForm("project")
	f.BuyerName = c.PostForm("buyer_name")
	f.SOL = c.PostForm("sol")
	f.Facing = c.PostForm("facing")
	f.Notes = c.PostForm("notes")
	f.SalePerson = c.PostForm("sale_person_name")

	if tok, err := strconv.Atoi(strings.TrimSpace(c.PostForm("token"))); err == nil && tok != 0 {
		f.Token = &tok
	}

	f.Base = compute.CleanNumber(c.PostForm("base_sqft_price"))
	f.Premiums = compute.CleanNumber(c.PostForm("amenties_and_premiums"))
	f.Sbua = compute.CleanNumber(c.PostForm("sbua_sqft"))
	f.Land = compute.CleanNumber(c.PostForm("land_sqyards"))
	f.Received = compute.CleanNumber(c.PostForm("amount_received"))
	f.BalanceDuringExec = compute.CleanNumber(c.PostForm("balance_tobe_received_during_exec"))

	f.Derived = compute.Totals(f.Base, f.Premiums, f.Land, f.Received, f.TypeOfSale)

	return f, errs, nil
}

// record builds a new row owned by creator; s_no is left for the store.
func (f *saleForm) record(creator string) *models.SaleDetail {
	return &models.SaleDetail{
		BookingDate:           f.BookingDate,
		Project:               f.Project,
		SPGPraneeth:           f.SPG,
		Token:                 f.Token,
		BuyerName:             f.BuyerName,
		SOL:                   f.SOL,
		TypeOfSale:            f.TypeOfSale,
		LandSqyards:           f.Land,
		SbuaSqft:              f.Sbua,
		Facing:                f.Facing,
		BaseSqftPrice:         f.Base,
		AmentiesAndPremiums:   f.Premiums,
		TotalSalePrice:        f.Derived.TotalSalePrice,
		AmountReceived:        f.Received,
		BalanceAmount:         f.Derived.BalanceAmount,
		BalanceByPlanApproval: f.Derived.BalanceByPlan,
		Notes:                 f.Notes,
		BalanceDuringExec:     f.BalanceDuringExec,
		SalePersonName:        f.SalePerson,
		CRMName:               creator,
	}
}

// updates is the column set an edit may change: the editable raw fields
// plus the recomputed derived ones. crm_name, s_no and the
// entered-at-creation execution balance are never touched.
func (f *saleForm) updates() map[string]interface{} {
	return map[string]interface{}{
		"booking_date":          f.BookingDate,
		"project":               f.Project,
		"spg_praneeth":          f.SPG,
		"token":                 f.Token,
		"buyer_name":            f.BuyerName,
		"sol":                   f.SOL,
		"type_of_sale":          f.TypeOfSale,
		"land_sqyards":          f.Land,
		"sbua_sqft":             f.Sbua,
		"facing":                f.Facing,
		"base_sqft_price":       f.Base,
		"amenties_and_premiums": f.Premiums,
		"amount_received":       f.Received,
		"notes":                 f.Notes,
		"sale_person_name":      f.SalePerson,
		"total_sale_price":                       f.Derived.TotalSalePrice,
		"balance_amount":                         f.Derived.BalanceAmount,
		"balance_tobe_received_by_plan_approval": f.Derived.BalanceByPlan,
	}
}
