package middleware

import (
	"net/http"
	"net/url"

	"arcadia-sales/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionUser reads the user resolved for this request by InjectUser.
// Deciding off the resolved user rather than raw session values means a
// deleted account or a changed role takes effect on the next request,
// not at the next login.
func sessionUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// RequireAuth redirects to the login page unless the session resolves to
// an existing user, keeping the intended destination so login can return
// there.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessionUser(c); !ok {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects a user whose current role does not match with a
// non-fatal notice and a redirect to the safe default view. Ownership of
// individual rows is not decided here; the store filters every mutation
// on the creator.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if user.Role != role {
			sess := sessions.Default(c)
			sess.AddFlash("Unauthorized")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
