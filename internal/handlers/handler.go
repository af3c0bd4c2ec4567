package handlers

import (
	"net/http"

	"arcadia-sales/internal/database"
	"arcadia-sales/internal/middleware"
	"arcadia-sales/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler carries the request-scoped dependencies; there is no package
// state.
type Handler struct {
	store *database.Store
	log   *logrus.Logger
}

func New(store *database.Store, log *logrus.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// currentUser reads the user placed on the context by middleware.InjectUser.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// sessionUser returns the resolved request user, redirecting to login
// when the session no longer maps to an account (e.g. deleted mid
// session). Callers must return immediately on !ok.
func (h *Handler) sessionUser(c *gin.Context) (models.User, bool) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
	return user, ok
}

// flash queues a one-shot notice on the session.
func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

// render wraps c.HTML, draining queued flashes and exposing the session
// user to every template.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["Flashes"] = flashes
	}

	if user, ok := currentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
	}

	c.HTML(status, tmpl, data)
}
