package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func dateStr(d *string) string {
	if d == nil {
		return ""
	}
	return *d
}

func sendCSV(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// CRMExport streams the session user's own rows. The header names and
// column order are a contract with downstream spreadsheets.
func (h *Handler) CRMExport(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	rows, err := h.store.OwnExportRows(user.Username)
	if err != nil {
		h.log.WithError(err).Error("exporting sales")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"booking_date", "s_no", "buyer_name", "sale_person_name",
		"total_sale_price", "amount_received", "balance_amount",
		"balance_by_plan", "balance_during_exec",
	})
	for _, r := range rows {
		_ = w.Write([]string{
			dateStr(r.BookingDate),
			strconv.Itoa(r.SNo),
			r.BuyerName,
			r.SalePersonName,
			r.TotalSalePrice.String(),
			r.AmountReceived.String(),
			r.BalanceAmount.String(),
			r.BalanceByPlanApproval.String(),
			r.BalanceDuringExec.String(),
		})
	}
	w.Flush()

	sendCSV(c, "my_sales.csv", &buf)
}

// AdminExport serializes the dashboard's current filter result.
func (h *Handler) AdminExport(c *gin.Context) {
	rows, err := h.store.FilteredSales(filterFromQuery(c))
	if err != nil {
		h.log.WithError(err).Error("exporting filtered sales")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"booking_date", "crm_name", "sale_person_name",
		"spg_praneeth", "type_of_sale", "total_sale_price",
	})
	for _, r := range rows {
		_ = w.Write([]string{
			dateStr(r.BookingDate),
			r.CRMName,
			r.SalePersonName,
			r.SPGPraneeth,
			r.TypeOfSale,
			r.TotalSalePrice.String(),
		})
	}
	w.Flush()

	sendCSV(c, "dashboard_export.csv", &buf)
}
