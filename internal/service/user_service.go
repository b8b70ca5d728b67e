package service

import (
	"context"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/raisultan/elj-backend/internal/repository"
	"github.com/rs/zerolog"
)

// UserService manages teacher accounts.
type UserService struct {
	userRepo    *repository.UserRepository
	authService *AuthService
	log         zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, authService *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
		log:         log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates a new teacher account with a hashed password.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		Surname:      req.Surname,
		Lastname:     req.Lastname,
		Address:      req.Address,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if req.BirthDate != "" {
		d, err := model.ParseDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		u.BirthDate = &d
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", u.ID).Str("email", u.Email).Msg("teacher registered")
	return u, nil
}

// Authenticate verifies email+password and returns the account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := s.authService.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, err
	}
	return u, nil
}

// GetProfile returns the teacher's own account.
func (s *UserService) GetProfile(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile updates the teacher's own account; a non-empty password
// is re-hashed and stored.
func (s *UserService) UpdateProfile(ctx context.Context, id int, req *model.UpdateProfileRequest) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Name = req.Name
	u.Surname = req.Surname
	u.Lastname = req.Lastname
	u.Address = req.Address
	u.Phone = req.Phone
	if req.BirthDate != "" {
		d, err := model.ParseDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		u.BirthDate = &d
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := s.authService.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(ctx, id)
}
