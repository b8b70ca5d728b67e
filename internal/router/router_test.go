package router

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/handler"
	"github.com/raisultan/elj-backend/internal/service"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, route := range r.Routes() {
		set[route.Method+" "+route.Path] = true
	}
	return set
}

// Handlers are never invoked here; only the route table is inspected.
func TestUpdateRoutesAcceptPutAndPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GinMode:   gin.TestMode,
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
	authService := service.NewAuthService(cfg, nil)

	handlers := &Handlers{
		Auth:           handler.NewAuthHandler(authService, nil),
		Event:          handler.NewEventHandler(nil),
		Lesson:         handler.NewLessonHandler(nil),
		Day:            handler.NewDayHandler(nil),
		StudyYear:      handler.NewStudyYearHandler(nil),
		Subject:        handler.NewSubjectHandler(nil),
		StudentClass:   handler.NewStudentClassHandler(nil),
		Student:        handler.NewStudentHandler(nil),
		TeacherSubject: handler.NewTeacherSubjectHandler(nil),
		Mark:           handler.NewMarkHandler(nil),
		Journal:        handler.NewJournalHandler(nil, nil),
		School:         handler.NewSchoolHandler(nil),
	}

	routes := routeSet(SetupRouter(authService, handlers, cfg))

	want := []string{
		"PUT /api/v1/events/:id",
		"PATCH /api/v1/events/:id",
		"PUT /api/v1/days/:id",
		"PATCH /api/v1/days/:id",
		"PUT /api/v1/marks/:id",
		"PATCH /api/v1/marks/:id",
		"PUT /api/v1/journals/:id",
		"PATCH /api/v1/journals/:id",
		"PUT /api/v1/auth/me",
	}
	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}
