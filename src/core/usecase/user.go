package usecase

import (
	"context"
	"log/slog"
	"time"

	"storefront/src/core/codegen"
	"storefront/src/core/domain"
	"storefront/src/core/format"
	"storefront/src/core/ports"
	"storefront/src/core/validate"
)

// UserProjection is the display-ready representation of a user.
type UserProjection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// UserService handles user registration and lookups.
type UserService struct {
	resourceService[domain.User, UserProjection]
	generator *codegen.Generator
	formatter *format.Formatter
	log       *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(store ports.RecordStore[domain.User], generator *codegen.Generator, formatter *format.Formatter, log *slog.Logger) *UserService {
	s := &UserService{
		generator: generator,
		formatter: formatter,
		log:       log,
	}
	s.resourceService = resourceService[domain.User, UserProjection]{
		store:   store,
		project: s.projectUser,
		log:     log,
	}
	return s
}

// Create validates the input, registers a new user, and returns its
// projection. Checks run in a fixed order and short-circuit on the first
// failure; nothing is stored when validation fails.
func (s *UserService) Create(ctx context.Context, name, email, phone string) (*UserProjection, error) {
	if !validate.NotEmpty(name) {
		return nil, domain.NewValidationError("name", "Name is required")
	}
	if !validate.Email(email) {
		return nil, domain.NewValidationError("email", "Invalid email format")
	}
	if !validate.Phone(phone) {
		return nil, domain.NewValidationError("phone", "Invalid phone format")
	}

	now := time.Now()
	user := domain.User{
		ID:        s.generator.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Append(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID)

	projection := s.projectUser(user)
	return &projection, nil
}

func (s *UserService) projectUser(u domain.User) UserProjection {
	return UserProjection{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: s.formatter.FormatTime(&u.CreatedAt),
		UpdatedAt: s.formatter.FormatTime(&u.UpdatedAt),
	}
}
