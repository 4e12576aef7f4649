package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pennantrace/sandlot/internal/domain/user"
	"github.com/pennantrace/sandlot/internal/platform/id"
)

// CreateUserInput carries the fields an admin supplies for a new user.
type CreateUserInput struct {
	Name       string
	Role       user.Role
	ExternalID string
}

// UserService manages league participants. Creation is admin-only and
// identity is immutable afterwards.
type UserService struct {
	userRepo user.Repository
	idgen    id.Generator
	logger   *slog.Logger
}

func NewUserService(userRepo user.Repository, idgen id.Generator, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		userRepo: userRepo,
		idgen:    idgen,
		logger:   logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer span.End()

	items, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetByID")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	return item, nil
}

func (s *UserService) Create(ctx context.Context, principal user.Principal, input CreateUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Create")
	defer span.End()

	if !principal.IsAdmin() {
		return user.User{}, fmt.Errorf("%w: user management requires admin role", ErrForbidden)
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return user.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Role == "" {
		input.Role = user.RoleUser
	}

	newID, err := s.idgen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:         newID,
		Name:       input.Name,
		Role:       input.Role,
		ExternalID: strings.TrimSpace(input.ExternalID),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, item); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created", "user_id", item.ID, "role", string(item.Role))

	return item, nil
}
