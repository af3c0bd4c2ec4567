package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"arcadia-sales/internal/models"

	"github.com/gin-gonic/gin"
)

// newEntryContext loads what the entry forms need: both dropdowns and a
// preview of the next sequence number.
func (h *Handler) newEntryContext() (gin.H, error) {
	spgOpts, err := h.store.Options(models.OptionSPG)
	if err != nil {
		return nil, err
	}
	tosOpts, err := h.store.Options(models.OptionSaleType)
	if err != nil {
		return nil, err
	}
	nextSNo, err := h.store.NextSNo()
	if err != nil {
		return nil, err
	}
	return gin.H{
		"SpgOpts": spgOpts,
		"TosOpts": tosOpts,
		"NextSNo": nextSNo,
		"Today":   time.Now().Format("2006-01-02"),
	}, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

//
// CRM routes
//

func (h *Handler) ShowCRMNew(c *gin.Context) {
	data, err := h.newEntryContext()
	if err != nil {
		h.log.WithError(err).Error("loading entry form context")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	h.render(c, http.StatusOK, "crm_new.html", data)
}

// CreateCRMSale answers a JSON payload instead of redirecting: the entry
// form submits over AJAX and renders the result inline.
func (h *Handler) CreateCRMSale(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	form, errs, err := h.readSaleForm(c)
	if err != nil {
		h.log.WithError(err).Error("reading sale form")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "errors": []string{"storage error"}})
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{"ok": false, "errors": errs})
		return
	}

	if err := h.store.CreateSale(form.record(user.Username)); err != nil {
		h.log.WithError(err).Error("creating sale")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "errors": []string{"storage error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) CRMList(c *gin.Context) {
	h.listEntries(c, "crm_list.html")
}

func (h *Handler) ShowCRMEdit(c *gin.Context) {
	h.showEdit(c, "/crm/list")
}

func (h *Handler) UpdateCRMSale(c *gin.Context) {
	h.updateEntry(c, "/crm/list", "/crm/edit/")
}

func (h *Handler) DeleteCRMSale(c *gin.Context) {
	h.deleteEntry(c, "/crm/list")
}

//
// Admin entry routes (same ownership rules, different surface)
//

func (h *Handler) ShowAdminNew(c *gin.Context) {
	data, err := h.newEntryContext()
	if err != nil {
		h.log.WithError(err).Error("loading entry form context")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	h.render(c, http.StatusOK, "admin_new.html", data)
}

// CreateAdminSale keeps the classic flash-and-redirect flow.
func (h *Handler) CreateAdminSale(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	form, errs, err := h.readSaleForm(c)
	if err != nil {
		h.log.WithError(err).Error("reading sale form")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	if len(errs) > 0 {
		flash(c, strings.Join(errs, "; "))
		c.Redirect(http.StatusFound, "/admin/new")
		return
	}

	if err := h.store.CreateSale(form.record(user.Username)); err != nil {
		h.log.WithError(err).Error("creating sale")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	flash(c, "Sale created")
	c.Redirect(http.StatusFound, "/admin/new?saved=1")
}

func (h *Handler) AdminEntries(c *gin.Context) {
	h.listEntries(c, "admin_list.html")
}

func (h *Handler) ShowAdminEdit(c *gin.Context) {
	h.showEdit(c, "/admin/entries")
}

func (h *Handler) UpdateAdminSale(c *gin.Context) {
	h.updateEntry(c, "/admin/entries", "/admin/edit/")
}

func (h *Handler) DeleteAdminSale(c *gin.Context) {
	h.deleteEntry(c, "/admin/entries")
}

//
// shared flows
//

func (h *Handler) listEntries(c *gin.Context, tmpl string) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}
	sort := c.DefaultQuery("sort", "date_desc")

	rows, err := h.store.SalesFor(user.Username, sort)
	if err != nil {
		h.log.WithError(err).Error("listing sales")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	h.render(c, http.StatusOK, tmpl, gin.H{
		"Rows": rows,
		"Sort": sort,
	})
}

func (h *Handler) showEdit(c *gin.Context, listPath string) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		flash(c, "Not found or unauthorized")
		c.Redirect(http.StatusFound, listPath)
		return
	}

	sale, err := h.store.SaleFor(id, user.Username)
	if err != nil {
		flash(c, "Not found or unauthorized")
		c.Redirect(http.StatusFound, listPath)
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

	h.render(c, http.StatusOK, "entry_edit.html", gin.H{
		"Row":      sale,
		"SpgOpts":  spgOpts,
		"TosOpts":  tosOpts,
		"ListPath": listPath,
	})
}

// updateEntry recomputes the derived fields from the submitted raw inputs
// and applies them only to a row owned by the session user; a foreign id
// changes nothing and reads as not found.
func (h *Handler) updateEntry(c *gin.Context, listPath, editPath string) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		flash(c, "Not found or unauthorized")
		c.Redirect(http.StatusFound, listPath)
		return
	}

	form, errs, err := h.readSaleForm(c)
	if err != nil {
		h.log.WithError(err).Error("reading sale form")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	if len(errs) > 0 {
		flash(c, strings.Join(errs, "; "))
		c.Redirect(http.StatusFound, editPath+c.Param("id"))
		return
	}

	affected, err := h.store.UpdateSaleFor(id, user.Username, form.updates())
	if err != nil {
		h.log.WithError(err).Error("updating sale")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	if affected == 0 {
		flash(c, "Not found or unauthorized")
	}
	c.Redirect(http.StatusFound, listPath)
}

// deleteEntry flashes the usual notice whether or not a row went away, so
// a guessed foreign id does not reveal whose it was.
func (h *Handler) deleteEntry(c *gin.Context, listPath string) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}

	if id, ok := parseID(c); ok {
		if _, err := h.store.DeleteSaleFor(id, user.Username); err != nil {
			h.log.WithError(err).Error("deleting sale")
			c.String(http.StatusInternalServerError, "storage error")
			return
		}
	}
	flash(c, "Entry deleted")
	c.Redirect(http.StatusFound, listPath)
}
