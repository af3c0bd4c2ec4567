package database

import (
	"fmt"

	"arcadia-sales/internal/models"

	"gorm.io/gorm"
)

// Sort keys accepted by the list views.
const (
	SortDateDesc  = "date_desc"
	SortSNoDesc   = "sno_desc"
	SortTotalDesc = "total_desc"
)

func orderClause(sort string) string {
	switch sort {
	case SortSNoDesc:
		return "s_no DESC"
	case SortTotalDesc:
		return "total_sale_price DESC"
	default:
		// nulls last, then newest booking first, row tiebreak
		return "(booking_date IS NULL) ASC, booking_date DESC, s_no"
	}
}

// NextSNo previews the sequence number the next created row will get.
func (s *Store) NextSNo() (int, error) {
	var next int
	err := s.db.Model(&models.SaleDetail{}).
		Select("COALESCE(MAX(s_no), 0) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// CreateSale assigns s_no as max+1 and inserts, inside one transaction.
// The max read is not serialized against concurrent creators; with a
// handful of sales staff duplicate sequence numbers are accepted rather
// than paying for a lock.
func (s *Store) CreateSale(sale *models.SaleDetail) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.SaleDetail{}).
			Select("COALESCE(MAX(s_no), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		sale.SNo = next
		return tx.Create(sale).Error
	})
}

// SalesFor lists one creator's rows under one of the three sort keys.
func (s *Store) SalesFor(creator, sort string) ([]models.SaleDetail, error) {
	var rows []models.SaleDetail
	err := s.db.
		Where("crm_name = ?", creator).
		Order(orderClause(sort)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// OwnExportRows returns a creator's rows in the fixed export order.
func (s *Store) OwnExportRows(creator string) ([]models.SaleDetail, error) {
	var rows []models.SaleDetail
	err := s.db.
		Where("crm_name = ?", creator).
		Order("booking_date DESC, s_no").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SaleFor fetches one row only when it belongs to creator; a foreign row
// is indistinguishable from a missing one.
func (s *Store) SaleFor(id uint, creator string) (*models.SaleDetail, error) {
	var sale models.SaleDetail
	err := s.db.
		Where("id = ? AND crm_name = ?", id, creator).
		First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// UpdateSaleFor applies updates only where the row is owned by creator and
// reports how many rows changed (zero for foreign or missing rows).
func (s *Store) UpdateSaleFor(id uint, creator string, updates map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.SaleDetail{}).
		Where("id = ? AND crm_name = ?", id, creator).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteSaleFor deletes under the same ownership condition as updates.
func (s *Store) DeleteSaleFor(id uint, creator string) (int64, error) {
	res := s.db.
		Where("id = ? AND crm_name = ?", id, creator).
		Delete(&models.SaleDetail{})
	return res.RowsAffected, res.Error
}

// SaleFilter is the admin aggregate filter; zero-valued fields are
// skipped and the rest combine with AND.
type SaleFilter struct {
	Year           string
	Month          string
	CRMName        string
	SalePersonName string
	SPGPraneeth    string
	TypeOfSale     string
}

// FilteredSales is the admin-only view across all creators. Year and
// month match on the YYYY-MM-DD prefix of booking_date, which works the
// same on postgres and the sqlite test store.
func (s *Store) FilteredSales(f SaleFilter) ([]models.SaleDetail, error) {
	q := s.db.Model(&models.SaleDetail{})

	if f.Year != "" {
		q = q.Where("substr(booking_date, 1, 4) = ?", f.Year)
	}
	if f.Month != "" {
		month := f.Month
		if len(month) == 1 {
			month = "0" + month
		}
		q = q.Where("substr(booking_date, 6, 2) = ?", month)
	}
	if f.CRMName != "" {
		q = q.Where("crm_name = ?", f.CRMName)
	}
	if f.SalePersonName != "" {
		q = q.Where("sale_person_name = ?", f.SalePersonName)
	}
	if f.SPGPraneeth != "" {
		q = q.Where("spg_praneeth = ?", f.SPGPraneeth)
	}
	if f.TypeOfSale != "" {
		q = q.Where("type_of_sale = ?", f.TypeOfSale)
	}

	var rows []models.SaleDetail
	err := q.Order("(booking_date IS NULL) ASC, booking_date DESC, s_no DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DistinctCRMNames feeds the dashboard creator dropdown.
func (s *Store) DistinctCRMNames() ([]string, error) {
	return s.distinctColumn("crm_name")
}

// DistinctSalePersons feeds the dashboard salesperson dropdown.
func (s *Store) DistinctSalePersons() ([]string, error) {
	return s.distinctColumn("sale_person_name")
}

func (s *Store) distinctColumn(column string) ([]string, error) {
	var values []string
	err := s.db.Model(&models.SaleDetail{}).
		Distinct(column).
		Where(fmt.Sprintf("%s <> ''", column)).
		Order(column + " asc").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
