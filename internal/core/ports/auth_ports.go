package ports

import (
	"context"

	"github.com/nthusa/voting/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

// TokenPayload is the identity yielded by the external provider: a stable
// student id plus a display name.
type TokenPayload struct {
	StudentID string
	Name      string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type AuthService interface {
	// LoginWithGoogle exchanges a verified Google credential for an access
	// token and a refresh token.
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

// AdminChecker reports whether a student id belongs to the admin roster.
type AdminChecker interface {
	IsAdmin(ctx context.Context, studentID string) (bool, error)
}
