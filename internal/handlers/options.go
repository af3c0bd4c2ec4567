package handlers

import (
	"errors"
	"net/http"
	"strings"

	"arcadia-sales/internal/database"
	"arcadia-sales/internal/models"

	"github.com/gin-gonic/gin"
)

func optionKind(s string) models.OptionKind {
	if s == "spg" {
		return models.OptionSPG
	}
	return models.OptionSaleType
}

func (h *Handler) ShowOptions(c *gin.Context) {
	spg, err := h.store.Options(models.OptionSPG)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	tos, err := h.store.Options(models.OptionSaleType)
	if err != nil {
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	h.render(c, http.StatusOK, "admin_options.html", gin.H{
		"Spg": spg,
		"Tos": tos,
	})
}

// MutateOptions adds or removes one enumeration value. Adding a duplicate
// is a conflict notice, removing an absent value is a silent no-op.
func (h *Handler) MutateOptions(c *gin.Context) {
	kind := optionKind(c.PostForm("kind"))
	value := strings.TrimSpace(c.PostForm("value"))
	action := c.PostForm("action")

	if value != "" {
		switch action {
		case "add":
			switch err := h.store.AddOption(kind, value); {
			case errors.Is(err, database.ErrOptionExists):
				flash(c, "Option exists or invalid")
			case err != nil:
				h.log.WithError(err).Error("adding option")
				flash(c, "Option exists or invalid")
			default:
				flash(c, "Option added")
			}
		case "delete":
			if err := h.store.RemoveOption(kind, value); err != nil {
				h.log.WithError(err).Error("removing option")
			} else {
				flash(c, "Option deleted")
			}
		}
	}

	c.Redirect(http.StatusFound, "/admin/options")
}
