package handlers

import (
	"errors"
	"net/http"
	"strings"

	"arcadia-sales/internal/database"
	"arcadia-sales/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ListAccounts shows every account for the user-management page.
func (h *Handler) ListAccounts(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		h.log.WithError(err).Error("listing users")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	h.render(c, http.StatusOK, "admin_crms.html", gin.H{"Users": users})
}

func (h *Handler) CreateAccount(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))
	role := c.DefaultPostForm("role", string(models.RoleCRM))

	if username == "" || password == "" || !models.ValidRole(role) {
		flash(c, "Provide username, password, and valid role")
		c.Redirect(http.StatusFound, "/admin/crms")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "hash error")
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.UserRole(role),
	}
	switch err := h.store.CreateUser(&user); {
	case errors.Is(err, database.ErrUsernameTaken):
		flash(c, "Username already exists")
	case err != nil:
		h.log.WithError(err).Error("creating user")
		flash(c, "Failed to create user")
	default:
		flash(c, "User created")
	}
	c.Redirect(http.StatusFound, "/admin/crms")
}

// UpdateAccount changes password (when given) and role.
func (h *Handler) UpdateAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flash(c, "User not found")
		c.Redirect(http.StatusFound, "/admin/crms")
		return
	}

	user, err := h.store.UserByID(id)
	if err != nil {
		flash(c, "User not found")
		c.Redirect(http.StatusFound, "/admin/crms")
		return
	}

	if password := strings.TrimSpace(c.PostForm("password")); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "hash error")
			return
		}
		user.PasswordHash = string(hash)
	}
	if role := c.PostForm("role"); models.ValidRole(role) {
		user.Role = models.UserRole(role)
	}

	if err := h.store.SaveUser(user); err != nil {
		h.log.WithError(err).Error("updating user")
		flash(c, "Failed to update user")
	} else {
		flash(c, "User updated")
	}
	c.Redirect(http.StatusFound, "/admin/crms")
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flash(c, "User not found")
		c.Redirect(http.StatusFound, "/admin/crms")
		return
	}

	if _, err := h.store.UserByID(id); err != nil {
		flash(c, "User not found")
		c.Redirect(http.StatusFound, "/admin/crms")
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		h.log.WithError(err).Error("deleting user")
		flash(c, "Failed to delete user")
	} else {
		flash(c, "User deleted")
	}
	c.Redirect(http.StatusFound, "/admin/crms")
}
