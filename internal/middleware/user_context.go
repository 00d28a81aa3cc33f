package middleware

import (
	"reviewhub/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is where InjectUser stores the resolved user on the
// gin context.
const CurrentUserKey = "CurrentUser"

// SessionUserKey is the session entry holding the authenticated user id.
const SessionUserKey = "user_id"

// InjectUser resolves the session's user id into a models.User and
// puts it on the request context for handlers and templates.
func InjectUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get(SessionUserKey); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := users.ByID(uid); err == nil {
					c.Set(CurrentUserKey, user)
				}
			}
		}

		c.Next()
	}
}
