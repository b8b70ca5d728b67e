package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/database"
	"github.com/raisultan/elj-backend/internal/handler"
	"github.com/raisultan/elj-backend/internal/logger"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/raisultan/elj-backend/internal/router"
	"github.com/raisultan/elj-backend/internal/service"
	"github.com/raisultan/elj-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ELJ Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	schoolRepo := repository.NewSchoolRepository(pool)
	studyYearRepo := repository.NewStudyYearRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentClassRepo := repository.NewStudentClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherSubjectRepo := repository.NewTeacherSubjectRepository(pool)
	markRepo := repository.NewMarkRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	dayRepo := repository.NewDayRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	// ─── Initialize Services ───────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo, authService, log)
	schoolService := service.NewSchoolService(schoolRepo, rdb, cfg, log)
	studyYearService := service.NewStudyYearService(studyYearRepo, rdb, cfg, log)
	subjectService := service.NewSubjectService(subjectRepo, rdb, cfg, log)
	studentClassService := service.NewStudentClassService(studentClassRepo, rdb, cfg, log)
	studentService := service.NewStudentService(studentRepo)
	teacherSubjectService := service.NewTeacherSubjectService(teacherSubjectRepo)
	markService := service.NewMarkService(markRepo, log)
	journalService := service.NewJournalService(studentRepo, markRepo, log)
	lessonService := service.NewLessonService(lessonRepo)
	dayService := service.NewDayService(dayRepo, lessonRepo)
	eventService := service.NewEventService(eventRepo)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:           handler.NewAuthHandler(authService, userService),
		Event:          handler.NewEventHandler(eventService),
		Lesson:         handler.NewLessonHandler(lessonService),
		Day:            handler.NewDayHandler(dayService),
		StudyYear:      handler.NewStudyYearHandler(studyYearService),
		Subject:        handler.NewSubjectHandler(subjectService),
		StudentClass:   handler.NewStudentClassHandler(studentClassService),
		Student:        handler.NewStudentHandler(studentService),
		TeacherSubject: handler.NewTeacherSubjectHandler(teacherSubjectService),
		Mark:           handler.NewMarkHandler(markService),
		Journal:        handler.NewJournalHandler(journalService, markService),
		School:         handler.NewSchoolHandler(schoolService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
