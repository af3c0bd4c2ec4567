package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldRules documents the field constraints for the front-end tooltips.
func (h *Handler) FieldRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"spg_praneeth": "Allowed values: SPG or Praneeth",
		"type_of_sale": "Allowed values: OTP or R",
		"calculated":   "Calculated: total_sale_price, balance_amount, balance_tobe_received_by_plan_approval",
	})
}
