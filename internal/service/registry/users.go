package registry

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/auth"
	"github.com/Domenick1991/busbooking/internal/domain"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SearchUsers(ctx context.Context, username, email string, role domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *domain.Role
}

func (s *RegistryService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCommuter
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "must be admin, operator or commuter")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *RegistryService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user, s.now())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *RegistryService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *RegistryService) SearchUsers(ctx context.Context, username, email string, role domain.Role) ([]domain.User, error) {
	return s.users.Search(ctx, username, email, role)
}

func (s *RegistryService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&user.Username, input.Username)
	apply(&user.Email, input.Email)
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.NewValidationError("role", "must be admin, operator or commuter")
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *RegistryService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
