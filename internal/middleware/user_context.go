package middleware

import (
	"arcadia-sales/internal/database"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is where InjectUser parks the resolved session user.
const CurrentUserKey = "CurrentUser"

// InjectUser resolves the session user from the store once per request so
// handlers and templates can read it from the gin context.
func InjectUser(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := store.UserByID(uid); err == nil {
					c.Set(CurrentUserKey, *user)
				}
			}
		}

		c.Next()
	}
}
