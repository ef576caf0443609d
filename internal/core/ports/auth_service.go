package ports

import (
	"context"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	Profile(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
}

// TokenService issues and verifies stateless bearer tokens. Verify never
// consults the user store, so a token returns the identity exactly as it was
// encoded at issuance time.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.Identity, error)
}
