package server

import (
	"html/template"
	"net/http"
	"strconv"

	"arcadia-sales/internal/config"
	"arcadia-sales/internal/database"
	"arcadia-sales/internal/handlers"
	"arcadia-sales/internal/middleware"
	"arcadia-sales/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(cfg *config.Config, store *database.Store, log *logrus.Logger) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)

	r.SetFuncMap(template.FuncMap{
		// nullable columns are printed through these helpers instead of
		// the raw pointers
		"date": func(d *string) string {
			if d == nil {
				return ""
			}
			return *d
		},
		"intval": func(p *int) string {
			if p == nil {
				return ""
			}
			return strconv.Itoa(*p)
		},
	})
	r.LoadHTMLGlob(cfg.TemplateGlob)

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("arcadia_session", sessStore))

	r.Use(middleware.InjectUser(store))

	h := handlers.New(store, log)

	r.GET("/", h.Index)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// field constraint documentation, no session needed
	r.GET("/field-rules", h.FieldRules)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// CRM
	crm := auth.Group("/crm")
	crm.Use(middleware.RequireRole(models.RoleCRM))
	crm.GET("/new", h.ShowCRMNew)
	crm.POST("/new", h.CreateCRMSale)
	crm.GET("/list", h.CRMList)
	crm.GET("/export", h.CRMExport)
	crm.GET("/edit/:id", h.ShowCRMEdit)
	crm.POST("/edit/:id", h.UpdateCRMSale)
	crm.POST("/delete/:id", h.DeleteCRMSale)

	// ADMIN
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/dashboard", h.AdminDashboard)
	admin.GET("/export", h.AdminExport)

	// user management
	admin.GET("/crms", h.ListAccounts)
	admin.POST("/crms/new", h.CreateAccount)
	admin.POST("/crms/:id/edit", h.UpdateAccount)
	admin.POST("/crms/:id/delete", h.DeleteAccount)

	// admin's own entries, same ownership rules as CRM entries
	admin.GET("/new", h.ShowAdminNew)
	admin.POST("/new", h.CreateAdminSale)
	admin.GET("/entries", h.AdminEntries)
	admin.GET("/edit/:id", h.ShowAdminEdit)
	admin.POST("/edit/:id", h.UpdateAdminSale)
	admin.POST("/delete/:id", h.DeleteAdminSale)

	// the two enumerations
	admin.GET("/options", h.ShowOptions)
	admin.POST("/options", h.MutateOptions)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
