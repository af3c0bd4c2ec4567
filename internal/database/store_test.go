package database

import (
	"io"
	"testing"

	"arcadia-sales/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := Open(sqlite.Open(":memory:"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func seededStore(t *testing.T) *Store {
	t.Helper()

	store := newTestStore(t)
	err := store.Seed(SeedAccounts{
		AdminUsername: "admin",
		AdminPassword: "admin",
		CRMUsername:   "vasu",
		CRMPassword:   "kaka",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func testSale(creator string, bookingDate *string, total string) *models.SaleDetail {
	return &models.SaleDetail{
		BookingDate:    bookingDate,
		BuyerName:      "Buyer",
		SPGPraneeth:    "SPG",
		TypeOfSale:     "OTP",
		TotalSalePrice: dec(total),
		CRMName:        creator,
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := seededStore(t)

	// second seed must not duplicate accounts or options
	err := store.Seed(SeedAccounts{
		AdminUsername: "admin",
		AdminPassword: "admin",
		CRMUsername:   "vasu",
		CRMPassword:   "kaka",
	})
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	users, err := store.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	spg, err := store.Options(models.OptionSPG)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(spg) != 2 || spg[0] != "Praneeth" || spg[1] != "SPG" {
		t.Fatalf("unexpected spg options: %v", spg)
	}

	tos, err := store.Options(models.OptionSaleType)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(tos) != 2 || tos[0] != "OTP" || tos[1] != "R" {
		t.Fatalf("unexpected sale type options: %v", tos)
	}
}

func TestAddOptionDuplicateAndRemoveAbsent(t *testing.T) {
	store := seededStore(t)

	if err := store.AddOption(models.OptionSaleType, "Z"); err != nil {
		t.Fatalf("add option: %v", err)
	}
	if err := store.AddOption(models.OptionSaleType, "Z"); err != ErrOptionExists {
		t.Fatalf("duplicate add: got %v, want ErrOptionExists", err)
	}

	// same value is free in the other, independent set
	if err := store.AddOption(models.OptionSPG, "Z"); err != nil {
		t.Fatalf("add to other kind: %v", err)
	}

	// removing something that is not there is a no-op
	if err := store.RemoveOption(models.OptionSaleType, "nope"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}

	ok, err := store.IsValidOption(models.OptionSaleType, "Z")
	if err != nil || !ok {
		t.Fatalf("Z should validate, ok=%v err=%v", ok, err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	store := seededStore(t)

	user := models.User{Username: "vasu", PasswordHash: "x", Role: models.RoleCRM}
	if err := store.CreateUser(&user); err != ErrUsernameTaken {
		t.Fatalf("got %v, want ErrUsernameTaken", err)
	}
}

func TestCreateSaleAssignsSequence(t *testing.T) {
	store := newTestStore(t)

	next, err := store.NextSNo()
	if err != nil {
		t.Fatalf("next sno: %v", err)
	}
	if next != 1 {
		t.Fatalf("empty table next s_no = %d, want 1", next)
	}

	first := testSale("vasu", nil, "100")
	if err := store.CreateSale(first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := testSale("vasu", nil, "200")
	if err := store.CreateSale(second); err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.SNo != 1 || second.SNo != 2 {
		t.Fatalf("s_no sequence = %d, %d; want 1, 2", first.SNo, second.SNo)
	}
}

func TestOwnershipBlocksForeignMutation(t *testing.T) {
	store := newTestStore(t)

	sale := testSale("alice", strPtr("2024-03-01"), "500")
	if err := store.CreateSale(sale); err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := store.UpdateSaleFor(sale.ID, "bob", map[string]interface{}{
		"buyer_name": "Mallory",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 0 {
		t.Fatalf("foreign update affected %d rows, want 0", affected)
	}

	affected, err = store.DeleteSaleFor(sale.ID, "bob")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("foreign delete affected %d rows, want 0", affected)
	}

	// the row is untouched and still owned by alice
	got, err := store.SaleFor(sale.ID, "alice")
	if err != nil {
		t.Fatalf("owner fetch: %v", err)
	}
	if got.BuyerName != "Buyer" {
		t.Fatalf("buyer mutated to %q", got.BuyerName)
	}

	// a foreign read looks like not-found
	if _, err := store.SaleFor(sale.ID, "bob"); err == nil {
		t.Fatal("foreign fetch should fail")
	}

	affected, err = store.DeleteSaleFor(sale.ID, "alice")
	if err != nil || affected != 1 {
		t.Fatalf("owner delete affected=%d err=%v", affected, err)
	}
}

func TestSalesForSortOrders(t *testing.T) {
	store := newTestStore(t)

	// created in mixed order: null date, old date, new date
	a := testSale("vasu", nil, "300")
	b := testSale("vasu", strPtr("2023-01-15"), "100")
	c := testSale("vasu", strPtr("2024-06-01"), "200")
	for _, s := range []*models.SaleDetail{a, b, c} {
		if err := store.CreateSale(s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byDate, err := store.SalesFor("vasu", SortDateDesc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if byDate[0].ID != c.ID || byDate[1].ID != b.ID || byDate[2].ID != a.ID {
		t.Fatalf("date sort: got %d,%d,%d", byDate[0].ID, byDate[1].ID, byDate[2].ID)
	}

	bySNo, err := store.SalesFor("vasu", SortSNoDesc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if bySNo[0].SNo != 3 || bySNo[2].SNo != 1 {
		t.Fatalf("sno sort: got %d..%d", bySNo[0].SNo, bySNo[2].SNo)
	}

	byTotal, err := store.SalesFor("vasu", SortTotalDesc)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !byTotal[0].TotalSalePrice.Equal(dec("300")) {
		t.Fatalf("total sort: first total = %s", byTotal[0].TotalSalePrice)
	}
}

func TestFilteredSalesConjunctive(t *testing.T) {
	store := newTestStore(t)

	rows := []*models.SaleDetail{
		{BookingDate: strPtr("2024-03-10"), CRMName: "vasu", SalePersonName: "Ravi", SPGPraneeth: "SPG", TypeOfSale: "OTP"},
		{BookingDate: strPtr("2024-03-22"), CRMName: "asha", SalePersonName: "Ravi", SPGPraneeth: "Praneeth", TypeOfSale: "R"},
		{BookingDate: strPtr("2023-03-05"), CRMName: "vasu", SalePersonName: "Meena", SPGPraneeth: "SPG", TypeOfSale: "R"},
		{BookingDate: nil, CRMName: "vasu", SalePersonName: "Ravi", SPGPraneeth: "SPG", TypeOfSale: "OTP"},
	}
	for _, r := range rows {
		if err := store.CreateSale(r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := store.FilteredSales(SaleFilter{Year: "2024"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("year filter: %d rows, want 2", len(got))
	}

	// single-digit month is zero-padded
	got, err = store.FilteredSales(SaleFilter{Year: "2024", Month: "3", CRMName: "vasu"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].SalePersonName != "Ravi" {
		t.Fatalf("conjunctive filter: %+v", got)
	}

	got, err = store.FilteredSales(SaleFilter{TypeOfSale: "R", SPGPraneeth: "SPG"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].SalePersonName != "Meena" {
		t.Fatalf("spg+tos filter: %+v", got)
	}

	// no filters: all rows, null booking date last
	got, err = store.FilteredSales(SaleFilter{})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("unfiltered: %d rows", len(got))
	}
	if got[len(got)-1].BookingDate != nil {
		t.Fatal("null booking date should sort last")
	}
}

func TestDistinctDropdowns(t *testing.T) {
	store := newTestStore(t)

	for _, r := range []*models.SaleDetail{
		{CRMName: "vasu", SalePersonName: "Ravi"},
		{CRMName: "vasu", SalePersonName: ""},
		{CRMName: "asha", SalePersonName: "Ravi"},
	} {
		if err := store.CreateSale(r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	crms, err := store.DistinctCRMNames()
	if err != nil {
		t.Fatalf("distinct crms: %v", err)
	}
	if len(crms) != 2 || crms[0] != "asha" || crms[1] != "vasu" {
		t.Fatalf("crms = %v", crms)
	}

	sps, err := store.DistinctSalePersons()
	if err != nil {
		t.Fatalf("distinct salespersons: %v", err)
	}
	if len(sps) != 1 || sps[0] != "Ravi" {
		t.Fatalf("salespersons = %v", sps)
	}
}
