package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type SchoolService struct {
	repo *repository.SchoolRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

func NewSchoolService(repo *repository.SchoolRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *SchoolService {
	return &SchoolService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "school_service").Logger(),
	}
}

func (s *SchoolService) GetAll(ctx context.Context) ([]model.School, error) {
	return listThroughCache(ctx, s.rdb, s.log, config.CacheKey.SchoolListKey(), s.cfg.RefCacheTTL, s.repo.GetAll)
}

func (s *SchoolService) Get(ctx context.Context, id int) (*model.School, error) {
	return s.repo.GetByID(ctx, id)
}
