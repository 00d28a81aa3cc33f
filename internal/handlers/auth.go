package handlers

import (
	"errors"
	"net/http"
	"strings"

	"reviewhub/internal/auth"
	"reviewhub/internal/forms"
	"reviewhub/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const rememberMaxAge = 30 * 24 * 60 * 60 // seconds

func (h *Handler) ShowRegister(c *gin.Context) {
	if _, ok := currentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "register.html", gin.H{
		"form":   forms.RegistrationForm{},
		"errors": forms.Errors{},
	})
}

func (h *Handler) Register(c *gin.Context) {
	if _, ok := currentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form forms.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	if errs := forms.Validate(form); errs != nil {
		h.render(c, http.StatusBadRequest, "register.html", gin.H{
			"form":   form,
			"errors": errs,
		})
		return
	}

	_, err := h.auth.Register(form.Username, form.Email, form.Password)
	if err != nil {
		errs := forms.Errors{}
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			errs["username"] = "That username is taken. Please choose a different one."
		case errors.Is(err, auth.ErrEmailTaken):
			errs["email"] = "That email is taken. Please choose a different one."
		default:
			h.serverError(c, err)
			return
		}
		h.render(c, http.StatusBadRequest, "register.html", gin.H{
			"form":   form,
			"errors": errs,
		})
		return
	}

	flash(c, "Account created successfully! Please log in with your credentials.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := currentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{
		"form":   forms.LoginForm{},
		"errors": forms.Errors{},
		"next":   c.Query("next"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	if _, ok := currentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if errs := forms.Validate(form); errs != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"form":   form,
			"errors": errs,
			"next":   c.Request.FormValue("next"),
		})
		return
	}

	user, err := h.auth.Authenticate(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// one message for both unknown email and wrong password
			h.render(c, http.StatusBadRequest, "login.html", gin.H{
				"form":   form,
				"errors": forms.Errors{},
				"error":  "Login Unsuccessful. Please enter correct email and password.",
				"next":   c.Request.FormValue("next"),
			})
			return
		}
		h.serverError(c, err)
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserKey, user.ID)
	if form.Remember {
		sess.Options(sessions.Options{Path: "/", MaxAge: rememberMaxAge, HttpOnly: true})
	}
	if err := sess.Save(); err != nil {
		h.serverError(c, err)
		return
	}

	if next := c.Request.FormValue("next"); strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.AddFlash("Logged out successfully!")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
