package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

const defaultBcryptCost = 12

// AuthService implements registration, login, and profile management.
type AuthService struct {
	repo       ports.AuthRepository
	tokens     ports.TokenService
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = defaultBcryptCost
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// Register creates an account and returns a fresh token alongside it. The
// username/email uniqueness guarantee comes from the store's constraints, not
// from a lookup here, so concurrent registrations cannot slip through.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return token, created, nil
}

// Login authenticates by username or email. A wrong password yields
// ErrInvalidCredentials without revealing anything about the stored record.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile changes username and/or email. Empty fields keep their
// stored values; tokens issued before the change keep carrying the old ones.
func (s *AuthService) UpdateProfile(ctx context.Context, id int64, username, email string) (*domain.User, error) {
	if username == "" && email == "" {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.repo.UpdateProfile(ctx, id, username, email)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", id).Msg("profile updated")
	return updated, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrMissingFields
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Msg("password changed")
	return nil
}
