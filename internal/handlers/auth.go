package handlers

import (
	"net/http"
	"strings"

	"arcadia-sales/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Index dispatches to the role's home view.
func (h *Handler) Index(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/crm/new")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"error": "",
		"next":  c.Query("next"),
	})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid request"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)

	user, err := h.store.UserByUsername(form.Username)
	if err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials", "next": form.Next})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials", "next": form.Next})
		return
	}

	// only the id goes into the cookie; role and existence are resolved
	// from the store on every request
	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	_ = sess.Save()

	// only same-site destinations
	if strings.HasPrefix(form.Next, "/") && !strings.HasPrefix(form.Next, "//") {
		c.Redirect(http.StatusFound, form.Next)
		return
	}
	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/crm/new")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
