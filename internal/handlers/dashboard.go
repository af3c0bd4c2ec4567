package handlers

import (
	"net/http"

	"arcadia-sales/internal/database"
	"arcadia-sales/internal/models"

	"github.com/gin-gonic/gin"
)

func filterFromQuery(c *gin.Context) database.SaleFilter {
	return database.SaleFilter{
		Year:           c.Query("year"),
		Month:          c.Query("month"),
		CRMName:        c.Query("crm_name"),
		SalePersonName: c.Query("sale_person_name"),
		SPGPraneeth:    c.Query("spg_praneeth"),
		TypeOfSale:     c.Query("type_of_sale"),
	}
}

// AdminDashboard shows the filtered aggregate across all creators.
func (h *Handler) AdminDashboard(c *gin.Context) {
	filter := filterFromQuery(c)

	rows, err := h.store.FilteredSales(filter)
	if err != nil {
		h.log.WithError(err).Error("filtering sales")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	crmOpts, err := h.store.DistinctCRMNames()
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	spOpts, err := h.store.DistinctSalePersons()
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	spgOpts, err := h.store.Options(models.OptionSPG)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	tosOpts, err := h.store.Options(models.OptionSaleType)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	h.render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Rows":    rows,
		"Filter":  filter,
		"CrmOpts": crmOpts,
		"SpOpts":  spOpts,
		"SpgOpts": spgOpts,
		"TosOpts": tosOpts,
	})
}
