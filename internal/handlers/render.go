package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML so every template gets the current user and any
// pending flash messages.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := currentUser(c); ok {
		data["CurrentUser"] = user
		data["IsAuthed"] = true
	}

	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["Flashes"] = flashes
	}

	c.HTML(status, tmpl, data)
}

// flash queues a one-shot message shown on the next rendered page.
func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}
