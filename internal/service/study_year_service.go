package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type StudyYearService struct {
	repo *repository.StudyYearRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

func NewStudyYearService(repo *repository.StudyYearRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *StudyYearService {
	return &StudyYearService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "study_year_service").Logger(),
	}
}

func (s *StudyYearService) GetAll(ctx context.Context) ([]model.StudyYear, error) {
	return listThroughCache(ctx, s.rdb, s.log, config.CacheKey.StudyYearListKey(), s.cfg.RefCacheTTL, s.repo.GetAll)
}

func (s *StudyYearService) Get(ctx context.Context, id int) (*model.StudyYear, error) {
	return s.repo.GetByID(ctx, id)
}
