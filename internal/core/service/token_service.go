package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// identityClaims is the JWT claim set: the public identity fields plus the
// registered expiry claim.
type identityClaims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TokenService signs and verifies stateless HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, email, and username. Claims
// mirror the record at issuance time and are never refreshed.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Malformed, tampered, and expired
// tokens all collapse into domain.ErrInvalidToken so the caller cannot tell
// the cases apart.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{
		ID:       claims.ID,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
