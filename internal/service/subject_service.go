package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/config"
	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type SubjectService struct {
	repo *repository.SubjectRepository
	rdb  *redis.Client
	cfg  *config.Config
	log  zerolog.Logger
}

func NewSubjectService(repo *repository.SubjectRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		repo: repo,
		rdb:  rdb,
		cfg:  cfg,
		log:  log.With().Str("component", "subject_service").Logger(),
	}
}

func (s *SubjectService) GetAll(ctx context.Context) ([]model.Subject, error) {
	return listThroughCache(ctx, s.rdb, s.log, config.CacheKey.SubjectListKey(), s.cfg.RefCacheTTL, s.repo.GetAll)
}

func (s *SubjectService) Get(ctx context.Context, id int) (*model.Subject, error) {
	return s.repo.GetByID(ctx, id)
}
