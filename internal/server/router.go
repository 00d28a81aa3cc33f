package server

import (
	"html/template"

	"reviewhub/internal/auth"
	"reviewhub/internal/config"
	"reviewhub/internal/handlers"
	"reviewhub/internal/jobs"
	"reviewhub/internal/middleware"
	"reviewhub/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger, fetcher jobs.Fetcher) *gin.Engine {
	users := store.NewUserStore(db)
	reviews := store.NewReviewStore(db)
	authSvc := auth.NewService(users)
	h := handlers.New(log, authSvc, reviews, fetcher)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Static("/static", cfg.StaticDir)

	r.SetFuncMap(template.FuncMap{
		"stars": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	// browser-session cookie by default; login extends it for "remember me"
	sessionStore.Options(sessions.Options{Path: "/", MaxAge: 0, HttpOnly: true})
	r.Use(sessions.Sessions("reviewhub_session", sessionStore))

	r.Use(middleware.InjectUser(users))

	// HOME
	r.GET("/", h.Home)
	r.GET("/home", h.Home)

	// AUTH
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// REVIEWS
	r.GET("/review/all", h.ListReviews)
	r.GET("/review/:id", h.ShowReview)

	// SEARCH
	r.GET("/pageContentPost", h.SearchReviews)
	r.POST("/pageContentPost", h.SearchReviews)

	// VACANCIES
	r.GET("/dashboard", h.Dashboard)
	r.GET("/api/jobs", h.GetJobs)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())

	authed.GET("/review/new", h.ShowNewReview)
	authed.POST("/review/new", h.CreateReview)
	authed.GET("/review/:id/update", h.ShowUpdateReview)
	authed.POST("/review/:id/update", h.UpdateReview)
	authed.POST("/review/:id/delete", h.DeleteReview)

	authed.GET("/account", h.Account)

	return r
}
