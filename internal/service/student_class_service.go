package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type StudentClassService struct {
	repo *repository.StudentClassRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

func NewStudentClassService(repo *repository.StudentClassRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *StudentClassService {
	return &StudentClassService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "student_class_service").Logger(),
	}
}

func (s *StudentClassService) GetAll(ctx context.Context) ([]model.StudentClass, error) {
	return listThroughCache(ctx, s.rdb, s.log, config.CacheKey.StudentClassListKey(), s.cfg.RefCacheTTL, s.repo.GetAll)
}

func (s *StudentClassService) Get(ctx context.Context, id int) (*model.StudentClass, error) {
	return s.repo.GetByID(ctx, id)
}
