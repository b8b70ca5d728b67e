package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/handler"
	"github.com/raisultan/elj-backend/internal/middleware"
	"github.com/raisultan/elj-backend/internal/response"
	"github.com/raisultan/elj-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth           *handler.AuthHandler
	Event          *handler.EventHandler
	Lesson         *handler.LessonHandler
	Day            *handler.DayHandler
	StudyYear      *handler.StudyYearHandler
	Subject        *handler.SubjectHandler
	StudentClass   *handler.StudentClassHandler
	Student        *handler.StudentHandler
	TeacherSubject *handler.TeacherSubjectHandler
	Mark           *handler.MarkHandler
	Journal        *handler.JournalHandler
	School         *handler.SchoolHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		authed := auth.Group("")
		authed.Use(middleware.RequireTeacherJWT(authService), middleware.CheckSession(authService))
		{
			authed.POST("/logout", handlers.Auth.Logout)
			authed.GET("/me", handlers.Auth.GetProfile)
			authed.PUT("/me", handlers.Auth.UpdateProfile)
		}
	}

	// ─── Resource Group (JWT + Session) ────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireTeacherJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		// Teacher-owned resources
		api.GET("/events", handlers.Event.List)
		api.POST("/events", handlers.Event.Create)
		api.GET("/events/:id", handlers.Event.Get)
		api.PUT("/events/:id", handlers.Event.Update)
		api.PATCH("/events/:id", handlers.Event.Update)
		api.DELETE("/events/:id", handlers.Event.Delete)

		api.GET("/lessons", handlers.Lesson.List)
		api.POST("/lessons", handlers.Lesson.Create)

		api.GET("/days", handlers.Day.List)
		api.POST("/days", handlers.Day.Create)
		api.GET("/days/:id", handlers.Day.Get)
		api.PUT("/days/:id", handlers.Day.Update)
		api.PATCH("/days/:id", handlers.Day.Update)
		api.DELETE("/days/:id", handlers.Day.Delete)

		api.GET("/teacher_subjects", handlers.TeacherSubject.List)

		// Reference data (global, read-only)
		ref := api.Group("")
		ref.Use(middleware.CacheControl(60))
		{
			ref.GET("/study_years", handlers.StudyYear.List)
			ref.GET("/study_years/:id", handlers.StudyYear.Get)
			ref.GET("/subjects", handlers.Subject.List)
			ref.GET("/subjects/:id", handlers.Subject.Get)
			ref.GET("/student_classes", handlers.StudentClass.List)
			ref.GET("/student_classes/:id", handlers.StudentClass.Get)
			ref.GET("/schools", handlers.School.List)
			ref.GET("/schools/:id", handlers.School.Get)
		}

		api.GET("/students", handlers.Student.List)
		api.GET("/students/:id", handlers.Student.Get)

		// Journal data
		api.GET("/marks", handlers.Mark.List)
		api.POST("/marks", handlers.Mark.Create)
		api.GET("/marks/:id", handlers.Mark.Get)
		api.PUT("/marks/:id", handlers.Mark.Update)
		api.PATCH("/marks/:id", handlers.Mark.Update)

		api.GET("/journals", handlers.Journal.List)
		api.POST("/journals", handlers.Journal.Create)
		api.PUT("/journals/:id", handlers.Journal.Update)
		api.PATCH("/journals/:id", handlers.Journal.Update)
		api.DELETE("/journals/:id", handlers.Journal.Delete)
	}

	return router
}
