package google

import (
	"context"
	"errors"
	"strings"

	"github.com/nthusa/voting/internal/core/ports"
	"google.golang.org/api/idtoken"
)

type GoogleVerifier struct{}

func NewVerifier() ports.TokenVerifier {
	return &GoogleVerifier{}
}

// Verify validates a Google ID token issued for the campus workspace. The
// student id is the local part of the verified campus email address.
func (v *GoogleVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := idtoken.Validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}

	email, ok := payload.Claims["email"].(string)
	if !ok {
		return nil, errors.New("email not found in claims")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email not verified")
	}

	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return nil, errors.New("malformed email in claims")
	}

	name, _ := payload.Claims["name"].(string)

	return &ports.TokenPayload{
		StudentID: strings.ToLower(local),
		Name:      name,
	}, nil
}
