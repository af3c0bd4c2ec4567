package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetail is one sale transaction entered by a CRM or admin user.
//
// SNo is the business-visible sequence number, assigned as max+1 at
// creation; it is distinct from the primary key and not guaranteed
// gap-free. BookingDate is kept as a nullable YYYY-MM-DD string so the
// year/month report filters can match on substrings.
//
// TotalSalePrice, BalanceAmount and BalanceByPlanApproval are derived by
// the computation engine on every create and edit and are never taken
// from user input. BalanceDuringExec is entered, not derived.
type SaleDetail struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SNo         int     `gorm:"column:s_no;index"`
	BookingDate *string `gorm:"column:booking_date;size:10"`
	Project     string  `gorm:"size:255"`
	SPGPraneeth string  `gorm:"column:spg_praneeth;size:100"`
	Token       *int    `gorm:"column:token"`
	BuyerName   string  `gorm:"size:255"`
	SOL         string  `gorm:"column:sol;size:255"`
	TypeOfSale  string  `gorm:"column:type_of_sale;size:100"`

	LandSqyards         decimal.Decimal `gorm:"column:land_sqyards;type:numeric"`
	SbuaSqft            decimal.Decimal `gorm:"column:sbua_sqft;type:numeric"`
	Facing              string          `gorm:"size:100"`
	BaseSqftPrice       decimal.Decimal `gorm:"column:base_sqft_price;type:numeric"`
	AmentiesAndPremiums decimal.Decimal `gorm:"column:amenties_and_premiums;type:numeric"`

	TotalSalePrice        decimal.Decimal `gorm:"column:total_sale_price;type:numeric"`
	AmountReceived        decimal.Decimal `gorm:"column:amount_received;type:numeric"`
	BalanceAmount         decimal.Decimal `gorm:"column:balance_amount;type:numeric"`
	BalanceByPlanApproval decimal.Decimal `gorm:"column:balance_tobe_received_by_plan_approval;type:numeric"`

	Notes             string          `gorm:"type:text"`
	BalanceDuringExec decimal.Decimal `gorm:"column:balance_tobe_received_during_exec;type:numeric"`
	SalePersonName    string          `gorm:"column:sale_person_name;size:255"`

	// CRMName is the username of the creator; it never changes after
	// creation and every mutation is filtered on it.
	CRMName string `gorm:"column:crm_name;size:50;not null;index"`
}

func (SaleDetail) TableName() string { return "sale_details" }
